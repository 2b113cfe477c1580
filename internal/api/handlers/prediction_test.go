package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"f1-race-predictor/internal/models"
	"f1-race-predictor/internal/prediction"
	"f1-race-predictor/internal/providers"
	"f1-race-predictor/internal/reference"
	"f1-race-predictor/internal/services"
)

type stubWeatherLookup struct{}

func (stubWeatherLookup) HasCredentials() bool { return false }
func (stubWeatherLookup) GetCurrentWeather(ctx context.Context, city string) (*providers.CurrentConditions, error) {
	return nil, errors.New("not configured")
}

type stubQualifyingSource struct{}

func (stubQualifyingSource) GetQualifying(ctx context.Context, season, round int) (map[string]int, error) {
	return nil, errors.New("unreachable")
}
func (stubQualifyingSource) GetSprintQualifying(ctx context.Context, season, round int) (map[string]int, error) {
	return nil, errors.New("unreachable")
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	catalog := reference.NewCatalog()
	cache := services.NewCacheService(nil, log)
	breaker := services.NewCircuitBreakerService(5, 3*time.Second, log)
	weather := services.NewWeatherService(stubWeatherLookup{}, catalog, cache, breaker, nil, log)
	qualifying := services.NewQualifyingService(stubQualifyingSource{}, catalog, cache, breaker, nil, log)
	predictions := services.NewPredictionService(
		catalog, weather, qualifying,
		nil, prediction.NewHeuristicScorer(catalog, 2025),
		nil, log, 2025,
	)

	predictionHandler := NewPredictionHandler(predictions, catalog, log)
	healthHandler := NewHealthHandler(predictions, cache, "test", log)

	router := gin.New()
	router.POST("/api/v1/predict/qualifying", predictionHandler.PredictQualifying)
	router.GET("/api/v1/tracks", predictionHandler.ListTracks)
	router.GET("/api/v1/drivers", predictionHandler.ListDrivers)
	router.GET("/health", healthHandler.GetHealth)
	return router
}

func TestPredictQualifying_Success(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/predict/qualifying",
		strings.NewReader(`{"track_name": "Monaco Grand Prix"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.PredictionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Monaco Grand Prix", resp.Race)
	assert.Len(t, resp.PredictedDriverResults, 20)
	assert.Len(t, resp.PredictedConstructorResults, 10)
}

func TestPredictQualifying_MissingBody(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/predict/qualifying",
		strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPredictQualifying_UnknownTrack(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/predict/qualifying",
		strings.NewReader(`{"track_name": "Atlantis Grand Prix"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown track")
}

func TestListTracks(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tracks", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Tracks []models.TrackInfo `json:"tracks"`
		Total  int                `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, 24, body.Total)
	assert.Equal(t, 1, body.Tracks[0].Round)
	assert.Equal(t, 24, body.Tracks[23].Round)
}

func TestListDrivers_SortedByBaseline(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/drivers", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Drivers []models.DriverInfo `json:"drivers"`
		Total   int                 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, 20, body.Total)

	for i := 1; i < len(body.Drivers); i++ {
		assert.LessOrEqual(t, body.Drivers[i-1].BaselineQualifying, body.Drivers[i].BaselineQualifying)
	}
}

func TestGetHealth(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Contains(t, w.Body.String(), `"models_loaded":false`)
}
