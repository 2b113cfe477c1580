package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"f1-race-predictor/internal/models"
	"f1-race-predictor/internal/reference"
	"f1-race-predictor/pkg/metrics"
)

// qualifyingSource is the external results lookup consumed by the
// resolver: a primary qualifying feed and a secondary sprint feed.
type qualifyingSource interface {
	GetQualifying(ctx context.Context, season, round int) (map[string]int, error)
	GetSprintQualifying(ctx context.Context, season, round int) (map[string]int, error)
}

// QualifyingService resolves qualifying positions for a round through a
// strict fallback cascade: memoized result, primary source, secondary
// source, static baseline. External failures are absorbed here and never
// propagate to the caller.
type QualifyingService struct {
	source  qualifyingSource
	catalog *reference.Catalog
	cache   *CacheService
	breaker *CircuitBreakerService
	metrics *metrics.Collector
	logger  *logrus.Logger

	mu   sync.RWMutex
	memo map[string]map[string]int
}

// NewQualifyingService creates the qualifying resolver. cache may be nil
// when Redis is not configured.
func NewQualifyingService(
	source qualifyingSource,
	catalog *reference.Catalog,
	cache *CacheService,
	breaker *CircuitBreakerService,
	collector *metrics.Collector,
	logger *logrus.Logger,
) *QualifyingService {
	return &QualifyingService{
		source:  source,
		catalog: catalog,
		cache:   cache,
		breaker: breaker,
		metrics: collector,
		logger:  logger,
		memo:    make(map[string]map[string]int),
	}
}

// Resolve returns driver->position for a round plus a provenance tag.
// Successful external results are memoized for the process lifetime;
// baseline results are not, so later calls retry the network.
func (s *QualifyingService) Resolve(ctx context.Context, season, round int) (map[string]int, models.QualifyingSource) {
	results, source := s.resolve(ctx, season, round)
	if s.metrics != nil {
		s.metrics.QualifyingSourceTotal.WithLabelValues(string(source)).Inc()
	}
	return results, source
}

func (s *QualifyingService) resolve(ctx context.Context, season, round int) (map[string]int, models.QualifyingSource) {
	memoKey := fmt.Sprintf("%d_%d", season, round)

	if cached, ok := s.memoized(memoKey); ok {
		return cached, models.SourceCached
	}

	// Shared cache counts as memoized: results for a finished session
	// never change
	var shared map[string]int
	if err := s.cache.GetQualifyingResults(ctx, season, round, &shared); err == nil && len(shared) > 0 {
		s.memoize(memoKey, shared)
		return copyResults(shared), models.SourceCached
	}

	if results := s.fetch(ctx, season, round, false); len(results) > 0 {
		s.memoize(memoKey, results)
		s.shareResults(ctx, season, round, results)
		return copyResults(results), models.SourcePrimary
	}

	if results := s.fetch(ctx, season, round, true); len(results) > 0 {
		s.memoize(memoKey, results)
		s.shareResults(ctx, season, round, results)
		return copyResults(results), models.SourceSecondary
	}

	s.logger.WithFields(logrus.Fields{
		"component": "qualifying_service",
		"season":    season,
		"round":     round,
	}).Info("Using baseline qualifying data")

	return s.catalog.BaselineQualifyingTable(), models.SourceBaseline
}

// fetch queries one external source, absorbing every failure into an
// empty result so the cascade moves on.
func (s *QualifyingService) fetch(ctx context.Context, season, round int, sprint bool) map[string]int {
	start := time.Now()
	result, err := s.breaker.Execute("ergast", func() (interface{}, error) {
		if sprint {
			return s.source.GetSprintQualifying(ctx, season, round)
		}
		return s.source.GetQualifying(ctx, season, round)
	})
	if s.metrics != nil {
		s.metrics.ObserveExternalRequest("ergast", time.Since(start))
	}
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"component": "qualifying_service",
			"season":    season,
			"round":     round,
			"sprint":    sprint,
		}).Warn("Qualifying fetch failed")
		return nil
	}

	return result.(map[string]int)
}

func (s *QualifyingService) memoized(memoKey string) (map[string]int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results, ok := s.memo[memoKey]
	if !ok {
		return nil, false
	}
	return copyResults(results), true
}

func (s *QualifyingService) memoize(memoKey string, results map[string]int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memo[memoKey] = results
}

func (s *QualifyingService) shareResults(ctx context.Context, season, round int, results map[string]int) {
	if err := s.cache.SetQualifyingResults(ctx, season, round, results); err != nil {
		s.logger.WithError(err).Debug("Failed to write qualifying results to shared cache")
	}
}

func copyResults(results map[string]int) map[string]int {
	out := make(map[string]int, len(results))
	for driver, pos := range results {
		out[driver] = pos
	}
	return out
}
