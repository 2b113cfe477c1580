package handlers

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"f1-race-predictor/internal/models"
	"f1-race-predictor/internal/reference"
	"f1-race-predictor/internal/services"
	"f1-race-predictor/internal/utils"
)

// PredictionHandler handles prediction and reference-data endpoints
type PredictionHandler struct {
	predictions *services.PredictionService
	catalog     *reference.Catalog
	logger      *logrus.Logger
}

// NewPredictionHandler creates a new prediction handler
func NewPredictionHandler(
	predictions *services.PredictionService,
	catalog *reference.Catalog,
	logger *logrus.Logger,
) *PredictionHandler {
	return &PredictionHandler{
		predictions: predictions,
		catalog:     catalog,
		logger:      logger,
	}
}

// PredictQualifying returns the full prediction payload for a track
func (h *PredictionHandler) PredictQualifying(c *gin.Context) {
	var req models.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendBadRequest(c, "track_name is required")
		return
	}

	response, err := h.predictions.PredictQualifying(c.Request.Context(), req.TrackName)
	if err != nil {
		if errors.Is(err, models.ErrUnknownTrack) || errors.Is(err, models.ErrRoundNotInSeason) {
			utils.SendBadRequest(c, err.Error())
			return
		}
		h.logger.WithError(err).WithField("track", req.TrackName).Error("Prediction failed")
		utils.SendInternalError(c, "prediction failed")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListTracks returns the season calendar in round order
func (h *PredictionHandler) ListTracks(c *gin.Context) {
	tracks := h.catalog.Tracks()
	out := make([]models.TrackInfo, len(tracks))
	for i, t := range tracks {
		out[i] = models.TrackInfo{
			Name:  t.Name,
			Key:   t.Key,
			City:  t.City,
			Round: t.Round,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"tracks": out,
		"total":  len(out),
	})
}

// ListDrivers returns the roster sorted by baseline qualifying pace
func (h *PredictionHandler) ListDrivers(c *gin.Context) {
	drivers := h.catalog.Drivers()
	sort.SliceStable(drivers, func(i, j int) bool {
		return drivers[i].BaselineQualifying < drivers[j].BaselineQualifying
	})

	out := make([]models.DriverInfo, len(drivers))
	for i, d := range drivers {
		out[i] = models.DriverInfo{
			Name:               d.Name,
			Abbreviation:       d.Abbreviation,
			Team:               d.Team,
			BaselineQualifying: d.BaselineQualifying,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"drivers": out,
		"total":   len(out),
	})
}
