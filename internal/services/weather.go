package services

import (
	"context"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"f1-race-predictor/internal/models"
	"f1-race-predictor/internal/providers"
	"f1-race-predictor/internal/reference"
	"f1-race-predictor/pkg/metrics"
)

// weatherLookup is the upstream weather source consumed by the resolver.
type weatherLookup interface {
	HasCredentials() bool
	GetCurrentWeather(ctx context.Context, city string) (*providers.CurrentConditions, error)
}

type cachedSnapshot struct {
	snapshot  models.WeatherSnapshot
	fetchedAt time.Time
}

// WeatherService resolves weather for a track with a time-boxed snapshot
// cache and a climate-based fallback when the upstream lookup is
// unavailable or fails.
type WeatherService struct {
	lookup  weatherLookup
	catalog *reference.Catalog
	cache   *CacheService
	breaker *CircuitBreakerService
	metrics *metrics.Collector
	logger  *logrus.Logger

	mu        sync.Mutex
	snapshots map[string]cachedSnapshot
	ttl       time.Duration
}

// Fallback snapshot defaults, overridden per climate below.
const (
	fallbackAirTemp   = 25.0
	fallbackTrackTemp = 30.0
	fallbackHumidity  = 50.0
)

// hotCities and coldCities pick the climate override for the fallback
// snapshot, matched exactly against the lower-cased city name.
var hotCities = map[string]bool{
	"manama": true, "jeddah": true, "singapore": true, "abu dhabi": true,
	"lusail": true, "miami": true, "las vegas": true,
}

var coldCities = map[string]bool{
	"melbourne": true, "montreal": true, "silverstone": true, "spa": true,
}

// NewWeatherService creates the weather resolver. cache may be nil when
// Redis is not configured.
func NewWeatherService(
	lookup weatherLookup,
	catalog *reference.Catalog,
	cache *CacheService,
	breaker *CircuitBreakerService,
	collector *metrics.Collector,
	logger *logrus.Logger,
) *WeatherService {
	return &WeatherService{
		lookup:    lookup,
		catalog:   catalog,
		cache:     cache,
		breaker:   breaker,
		metrics:   collector,
		logger:    logger,
		snapshots: make(map[string]cachedSnapshot),
		ttl:       30 * time.Minute,
	}
}

// GetForTrack resolves weather for a track key. It never fails: upstream
// trouble degrades to the climate fallback.
func (s *WeatherService) GetForTrack(ctx context.Context, trackKey string) models.WeatherSnapshot {
	city := s.catalog.CityForTrack(trackKey)
	return s.GetForCity(ctx, city)
}

// GetForCity resolves weather for a city, serving from the snapshot
// cache when the entry is younger than the TTL.
func (s *WeatherService) GetForCity(ctx context.Context, city string) models.WeatherSnapshot {
	cacheKey := strings.ToLower(city)

	if snapshot, ok := s.cachedFresh(cacheKey); ok {
		if s.metrics != nil {
			s.metrics.WeatherCacheHitsTotal.Inc()
		}
		return snapshot
	}

	// Shared cache saves an upstream call after a restart
	var shared models.WeatherSnapshot
	if err := s.cache.GetWeatherSnapshot(ctx, city, &shared); err == nil {
		s.store(cacheKey, shared)
		return shared
	}

	if !s.lookup.HasCredentials() {
		s.logger.WithFields(logrus.Fields{
			"component": "weather_service",
			"city":      city,
		}).Warn("No weather API key configured, using climate fallback")
		return s.fallback(cacheKey, city)
	}

	start := time.Now()
	result, err := s.breaker.Execute("openweather", func() (interface{}, error) {
		return s.lookup.GetCurrentWeather(ctx, city)
	})
	if s.metrics != nil {
		s.metrics.ObserveExternalRequest("openweather", time.Since(start))
	}
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"component": "weather_service",
			"city":      city,
		}).Warn("Weather fetch failed, using climate fallback")
		return s.fallback(cacheKey, city)
	}

	snapshot := deriveSnapshot(result.(*providers.CurrentConditions))
	s.store(cacheKey, snapshot)
	if err := s.cache.SetWeatherSnapshot(ctx, city, snapshot); err != nil {
		s.logger.WithError(err).Debug("Failed to write weather snapshot to shared cache")
	}

	return snapshot
}

func (s *WeatherService) cachedFresh(cacheKey string) (models.WeatherSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.snapshots[cacheKey]
	if !ok || time.Since(entry.fetchedAt) >= s.ttl {
		return models.WeatherSnapshot{}, false
	}
	return entry.snapshot, true
}

func (s *WeatherService) store(cacheKey string, snapshot models.WeatherSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshots[cacheKey] = cachedSnapshot{
		snapshot:  snapshot,
		fetchedAt: time.Now(),
	}
}

// fallback synthesizes a snapshot from typical circuit climate and caches
// it so repeated misses do not recompute within the TTL window.
func (s *WeatherService) fallback(cacheKey, city string) models.WeatherSnapshot {
	if s.metrics != nil {
		s.metrics.WeatherFallbackTotal.Inc()
	}

	snapshot := models.WeatherSnapshot{
		AirTemp:         fallbackAirTemp,
		TrackTemp:       fallbackTrackTemp,
		Humidity:        fallbackHumidity,
		Condition:       "Clear",
		RainProbability: 0.0,
	}

	switch {
	case hotCities[cacheKey]:
		snapshot.AirTemp = 32.0
		snapshot.TrackTemp = 42.0
		snapshot.Humidity = 60.0
	case coldCities[cacheKey]:
		snapshot.AirTemp = 18.0
		snapshot.TrackTemp = 25.0
		snapshot.Humidity = 65.0
	}

	s.logger.WithFields(logrus.Fields{
		"component": "weather_service",
		"city":      city,
		"air_temp":  snapshot.AirTemp,
	}).Debug("Synthesized climate fallback snapshot")

	s.store(cacheKey, snapshot)
	return snapshot
}

// deriveSnapshot converts raw upstream conditions to a WeatherSnapshot.
func deriveSnapshot(raw *providers.CurrentConditions) models.WeatherSnapshot {
	return models.WeatherSnapshot{
		AirTemp:         raw.AirTemp,
		TrackTemp:       estimateTrackTemp(raw.AirTemp, raw.CloudCoverPct),
		Humidity:        raw.Humidity,
		Condition:       classifyCondition(raw.ConditionText),
		RainProbability: rainProbability(raw),
	}
}

// estimateTrackTemp models that clear skies heat the track surface more
// than overcast skies: air + 8 * (1 - clouds/200), clamped to [10, 60]
// and rounded to one decimal.
func estimateTrackTemp(airTemp float64, cloudCoverPct int) float64 {
	cloudFactor := 1.0 - float64(cloudCoverPct)/200.0
	trackTemp := airTemp + 8.0*cloudFactor

	trackTemp = math.Max(10.0, math.Min(60.0, trackTemp))
	return math.Round(trackTemp*10) / 10
}

// classifyCondition maps raw condition text to one of the four condition
// tags by substring match, in priority order.
func classifyCondition(conditionText string) string {
	text := strings.ToLower(conditionText)

	switch {
	case strings.Contains(text, "rain") || strings.Contains(text, "drizzle"):
		return "Rain"
	case strings.Contains(text, "cloud"):
		return "Cloudy"
	case strings.Contains(text, "thunder") || strings.Contains(text, "storm"):
		return "Storm"
	default:
		return "Clear"
	}
}

func rainProbability(raw *providers.CurrentConditions) float64 {
	if raw.HasPrecipitation {
		return 0.8
	}
	if raw.CloudCoverPct > 80 {
		return 0.3
	}
	if raw.CloudCoverPct > 50 {
		return 0.15
	}
	return 0.05
}
