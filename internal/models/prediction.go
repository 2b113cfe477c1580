package models

import "errors"

// Caller errors: invalid input surfaced to the API layer as rejections.
// Everything upstream-related is absorbed by the resolver fallback tiers
// and never reaches the caller.
var (
	ErrUnknownTrack     = errors.New("unknown track")
	ErrRoundNotInSeason = errors.New("track not in season calendar")
)

// QualifyingSource tags the provenance of a resolved qualifying set.
type QualifyingSource string

const (
	SourceCached    QualifyingSource = "cached"
	SourcePrimary   QualifyingSource = "primary"
	SourceSecondary QualifyingSource = "secondary"
	SourceBaseline  QualifyingSource = "baseline"
)

// WeatherSnapshot is the resolved weather for one circuit at one point in
// time. Snapshots are immutable; the cache replaces whole entries.
type WeatherSnapshot struct {
	AirTemp         float64 `json:"air_temp"`
	TrackTemp       float64 `json:"track_temp"`
	Humidity        float64 `json:"humidity"`
	Condition       string  `json:"condition"`
	RainProbability float64 `json:"rain_probability"`
}

// IsWet reports whether the snapshot's condition calls for wet-weather
// scoring adjustments.
func (w WeatherSnapshot) IsWet() bool {
	switch w.Condition {
	case "Rain", "Storm", "Thunderstorm", "Drizzle":
		return true
	}
	return false
}

// DriverFormInfo summarizes a driver's recent form.
type DriverFormInfo struct {
	Driver        string  `json:"driver"`
	AvgPosition   float64 `json:"avg_position"`
	AvgQualifying float64 `json:"avg_qualifying"`
	PointsLast5   int     `json:"points_last_5"`
	DNFCount      int     `json:"dnf_count"`
	Podiums       int     `json:"podiums"`
	Trend         string  `json:"trend"`
}

// ConstructorFormInfo summarizes a constructor's recent form.
type ConstructorFormInfo struct {
	Team            string  `json:"team"`
	AvgPosition     float64 `json:"avg_position"`
	PointsLast5     int     `json:"points_last_5"`
	ReliabilityRate float64 `json:"reliability_rate"`
	BestResult      int     `json:"best_result"`
}

// DriverPrediction is the final per-driver output record.
type DriverPrediction struct {
	Driver            string          `json:"driver"`
	Team              string          `json:"team"`
	PredictedPosition int             `json:"predicted_position"`
	ProbabilityTop3   float64         `json:"probability_top3"`
	ProbabilityPoints float64         `json:"probability_points"`
	Form              *DriverFormInfo `json:"form,omitempty"`
}

// ConstructorPrediction is the final per-team output record.
type ConstructorPrediction struct {
	Team              string               `json:"team"`
	PredictedPosition int                  `json:"predicted_position"`
	PredictedPoints   int                  `json:"predicted_points"`
	AvgPosition       float64              `json:"avg_position"`
	Form              *ConstructorFormInfo `json:"form,omitempty"`
}

// PredictionMeta records how a prediction was produced.
type PredictionMeta struct {
	ModelVersion         string `json:"model_version"`
	DataSource           string `json:"data_source"`
	QualifyingDataSource string `json:"qualifying_data_source"`
	LastUpdated          string `json:"last_updated"`
}

// PredictionResponse is the complete prediction payload for one track.
type PredictionResponse struct {
	Race                        string                  `json:"race"`
	CircuitKey                  string                  `json:"circuit_key"`
	Season                      int                     `json:"season"`
	RoundNumber                 int                     `json:"round_number"`
	Weather                     WeatherSnapshot         `json:"weather"`
	PredictedDriverResults      []DriverPrediction      `json:"predicted_driver_results"`
	PredictedConstructorResults []ConstructorPrediction `json:"predicted_constructor_results"`
	FeaturesUsed                map[string]interface{}  `json:"features_used,omitempty"`
	Meta                        PredictionMeta          `json:"meta"`
}

// PredictionRequest is the request body for a qualifying prediction.
type PredictionRequest struct {
	TrackName string `json:"track_name" binding:"required"`
}

// TrackInfo describes one calendar entry in listing responses.
type TrackInfo struct {
	Name  string `json:"name"`
	Key   string `json:"key"`
	City  string `json:"city"`
	Round int    `json:"round"`
}

// DriverInfo describes one roster entry in listing responses.
type DriverInfo struct {
	Name               string  `json:"name"`
	Abbreviation       string  `json:"abbreviation"`
	Team               string  `json:"team"`
	BaselineQualifying float64 `json:"baseline_qualifying"`
}
