package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"f1-race-predictor/internal/services"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	predictions *services.PredictionService
	cache       *services.CacheService
	environment string
	logger      *logrus.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(
	predictions *services.PredictionService,
	cache *services.CacheService,
	environment string,
	logger *logrus.Logger,
) *HealthHandler {
	return &HealthHandler{
		predictions: predictions,
		cache:       cache,
		environment: environment,
		logger:      logger,
	}
}

// GetHealth returns the basic health status. The service stays healthy
// without Redis; the check result is informational.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	checks := make(map[string]string)

	if h.cache.IsHealthy(c.Request.Context()) {
		checks["redis"] = "ok"
	} else {
		checks["redis"] = "unavailable"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"service":       "f1-race-predictor",
		"version":       h.predictions.ModelVersion(),
		"environment":   h.environment,
		"models_loaded": h.predictions.ModelLoaded(),
		"timestamp":     time.Now().UTC(),
		"checks":        checks,
	})
}
