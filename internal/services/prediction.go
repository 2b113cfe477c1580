package services

import (
	"context"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"f1-race-predictor/internal/models"
	"f1-race-predictor/internal/prediction"
	"f1-race-predictor/internal/reference"
	"f1-race-predictor/pkg/metrics"
)

// Feature context defaults for a representative qualifying stint.
const (
	defaultTyreLife  = 10.0
	defaultLapNumber = 50.0
)

// PredictionService orchestrates one prediction request: reference
// lookup, weather and qualifying resolution, scoring, ranking,
// probability estimation, and constructor aggregation.
type PredictionService struct {
	catalog    *reference.Catalog
	weather    *WeatherService
	qualifying *QualifyingService
	model      *prediction.Model
	heuristic  *prediction.HeuristicScorer
	metrics    *metrics.Collector
	logger     *logrus.Logger
	season     int
}

// NewPredictionService creates the orchestrator. model may be nil, in
// which case every request takes the heuristic path.
func NewPredictionService(
	catalog *reference.Catalog,
	weather *WeatherService,
	qualifying *QualifyingService,
	model *prediction.Model,
	heuristic *prediction.HeuristicScorer,
	collector *metrics.Collector,
	logger *logrus.Logger,
	season int,
) *PredictionService {
	return &PredictionService{
		catalog:    catalog,
		weather:    weather,
		qualifying: qualifying,
		model:      model,
		heuristic:  heuristic,
		metrics:    collector,
		logger:     logger,
		season:     season,
	}
}

// ModelLoaded reports whether the trained model is active.
func (s *PredictionService) ModelLoaded() bool {
	return s.model != nil
}

// ModelVersion returns the active model version, or "heuristic" when no
// model is loaded.
func (s *PredictionService) ModelVersion() string {
	if s.model == nil {
		return "heuristic"
	}
	return s.model.Version
}

// PredictQualifying produces the full prediction payload for a track
// identified by its official race name. Unknown names return
// models.ErrUnknownTrack; everything upstream degrades internally.
func (s *PredictionService) PredictQualifying(ctx context.Context, trackName string) (*models.PredictionResponse, error) {
	track, ok := s.catalog.TrackByName(trackName)
	if !ok {
		if s.metrics != nil {
			s.metrics.PredictionErrorsTotal.WithLabelValues("unknown_track").Inc()
		}
		return nil, models.ErrUnknownTrack
	}
	return s.predict(ctx, track)
}

// PredictRound produces the prediction payload for a calendar round
// number. Rounds outside the calendar return models.ErrRoundNotInSeason.
func (s *PredictionService) PredictRound(ctx context.Context, round int) (*models.PredictionResponse, error) {
	for _, track := range s.catalog.Tracks() {
		if track.Round == round {
			return s.predict(ctx, track)
		}
	}
	if s.metrics != nil {
		s.metrics.PredictionErrorsTotal.WithLabelValues("round_not_in_season").Inc()
	}
	return nil, models.ErrRoundNotInSeason
}

func (s *PredictionService) predict(ctx context.Context, track reference.Track) (*models.PredictionResponse, error) {
	start := time.Now()

	weather := s.weather.GetForTrack(ctx, track.Key)
	qualiPositions, qualiSource := s.qualifying.Resolve(ctx, s.season, track.Round)

	scoringPath := "heuristic"
	if s.model != nil {
		scoringPath = "model"
	}

	entries := s.scoreField(track, weather, qualiPositions)
	ranked := prediction.Rank(entries)

	scores := make([]float64, len(ranked))
	for i, entry := range ranked {
		scores[i] = entry.Score
	}

	driverResults := make([]models.DriverPrediction, len(ranked))
	for i, entry := range ranked {
		driverResults[i] = models.DriverPrediction{
			Driver:            entry.Driver,
			Team:              entry.Team,
			PredictedPosition: entry.Position,
			ProbabilityTop3:   round2(prediction.TopNProbability(entry.Score, scores, 3)),
			ProbabilityPoints: round2(prediction.TopNProbability(entry.Score, scores, 10)),
			Form:              s.driverForm(entry.Driver),
		}
	}

	standings := prediction.AggregateConstructors(ranked)
	constructorResults := make([]models.ConstructorPrediction, len(standings))
	for i, st := range standings {
		constructorResults[i] = models.ConstructorPrediction{
			Team:              st.Team,
			PredictedPosition: st.Position,
			PredictedPoints:   st.ProjectedPoints,
			AvgPosition:       round2(st.AvgPosition),
			Form:              s.constructorForm(st.Team),
		}
	}

	if s.metrics != nil {
		s.metrics.ObservePrediction(track.Key, scoringPath, time.Since(start))
	}

	s.logger.WithFields(logrus.Fields{
		"component":         "prediction_service",
		"track":             track.Key,
		"scoring_path":      scoringPath,
		"qualifying_source": string(qualiSource),
		"weather_condition": weather.Condition,
		"duration_ms":       time.Since(start).Milliseconds(),
	}).Info("Prediction completed")

	return &models.PredictionResponse{
		Race:                        track.Name,
		CircuitKey:                  track.Key,
		Season:                      s.season,
		RoundNumber:                 track.Round,
		Weather:                     weather,
		PredictedDriverResults:      driverResults,
		PredictedConstructorResults: constructorResults,
		FeaturesUsed: map[string]interface{}{
			"scoring_path":      scoringPath,
			"qualifying_source": string(qualiSource),
			"air_temp":          weather.AirTemp,
			"track_temp":        weather.TrackTemp,
			"humidity":          weather.Humidity,
			"condition":         weather.Condition,
			"avg_lap_time":      track.AvgLapTime,
			"circuit_type":      track.CircuitType,
		},
		Meta: models.PredictionMeta{
			ModelVersion:         s.ModelVersion(),
			DataSource:           scoringPath,
			QualifyingDataSource: string(qualiSource),
			LastUpdated:          time.Now().UTC().Format(time.RFC3339),
		},
	}, nil
}

// scoreField scores every roster driver in canonical grid order, so
// downstream stable sorts break ties deterministically.
func (s *PredictionService) scoreField(
	track reference.Track,
	weather models.WeatherSnapshot,
	qualiPositions map[string]int,
) []prediction.ScoredEntry {
	drivers := s.catalog.Drivers()
	entries := make([]prediction.ScoredEntry, 0, len(drivers))

	for _, driver := range drivers {
		var score float64
		if s.model != nil {
			score = s.modelScore(driver, track, weather, qualiPositions)
		} else {
			score = s.heuristic.Score(driver.Name, driver.Team, track, weather)
		}
		entries = append(entries, prediction.ScoredEntry{
			Driver: driver.Name,
			Team:   driver.Team,
			Score:  score,
		})
	}
	return entries
}

// modelScore builds the feature vector for one driver and scores it.
// Inference failures degrade to the heuristic for that driver rather
// than failing the request.
func (s *PredictionService) modelScore(
	driver reference.Driver,
	track reference.Track,
	weather models.WeatherSnapshot,
	qualiPositions map[string]int,
) float64 {
	qualiPos := s.catalog.BaselineQualifying(driver.Name)
	if pos, ok := qualiPositions[driver.Name]; ok {
		qualiPos = float64(pos)
	}

	ctx := &prediction.FeatureContext{
		LapTime:            track.AvgLapTime,
		TyreLife:           defaultTyreLife,
		LapNumber:          defaultLapNumber,
		AirTemp:            weather.AirTemp,
		TrackTemp:          weather.TrackTemp,
		Humidity:           weather.Humidity,
		QualifyingPosition: qualiPos,
		DriverName:         driver.Name,
		TeamNormalized:     reference.NormalizeTeamName(driver.Team),
	}

	vector := prediction.BuildVector(s.model.FeatureNames, ctx)
	score, err := s.model.Predict(vector)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"component": "prediction_service",
			"driver":    driver.Name,
		}).Warn("Model inference failed, falling back to heuristic")
		return s.heuristic.Score(driver.Name, driver.Team, track, weather)
	}
	return score
}

// driverForm derives indicative recent-form numbers from the driver's
// baseline qualifying position.
func (s *PredictionService) driverForm(driverName string) *models.DriverFormInfo {
	baseline := s.catalog.BaselineQualifying(driverName)

	podiums := 0
	if baseline <= 4 {
		podiums = 1
	}

	return &models.DriverFormInfo{
		Driver:        driverName,
		AvgPosition:   round2(baseline + 1),
		AvgQualifying: round2(baseline),
		PointsLast5:   maxInt(0, (15-int(baseline))*4),
		DNFCount:      0,
		Podiums:       podiums,
		Trend:         "stable",
	}
}

// constructorForm derives indicative recent-form numbers from the team's
// power ranking.
func (s *PredictionService) constructorForm(team string) *models.ConstructorFormInfo {
	power := reference.TeamPower(team)
	estPosition := 2.0 + (1.0-power)*8.0

	return &models.ConstructorFormInfo{
		Team:            team,
		AvgPosition:     round2(estPosition),
		PointsLast5:     int((1.0 - estPosition/20.0) * 50.0),
		ReliabilityRate: round2(0.85 + power*0.1),
		BestResult:      maxInt(1, int(estPosition-2.0)),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
