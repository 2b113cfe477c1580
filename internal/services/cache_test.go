package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"f1-race-predictor/internal/models"
)

func TestCacheService_NilClientIsSafe(t *testing.T) {
	cache := NewCacheService(nil, testLogger())
	ctx := context.Background()

	snapshot := models.WeatherSnapshot{AirTemp: 20}
	assert.NoError(t, cache.SetWeatherSnapshot(ctx, "Monza", snapshot))

	var dest models.WeatherSnapshot
	err := cache.GetWeatherSnapshot(ctx, "Monza", &dest)
	assert.ErrorIs(t, err, redis.Nil)

	assert.NoError(t, cache.SetQualifyingResults(ctx, 2025, 1, map[string]int{"A": 1}))
	var results map[string]int
	assert.ErrorIs(t, cache.GetQualifyingResults(ctx, 2025, 1, &results), redis.Nil)

	assert.False(t, cache.IsHealthy(ctx))
}

func TestCacheService_NilReceiverIsSafe(t *testing.T) {
	var cache *CacheService
	ctx := context.Background()

	assert.NoError(t, cache.Set(ctx, "key", "value", time.Minute))
	assert.ErrorIs(t, cache.Get(ctx, "key", nil), redis.Nil)
	assert.False(t, cache.IsHealthy(ctx))
}

func TestCircuitBreaker_PassesThroughSuccess(t *testing.T) {
	cb := NewCircuitBreakerService(5, time.Second, testLogger())

	result, err := cb.Execute("ergast", func() (interface{}, error) {
		return 42, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 42, result)
}

func TestCircuitBreaker_OpensAfterRepeatedFailures(t *testing.T) {
	cb := NewCircuitBreakerService(5, time.Minute, testLogger())
	boom := errors.New("boom")

	for i := 0; i < 5; i++ {
		cb.Execute("ergast", func() (interface{}, error) { return nil, boom })
	}

	calls := 0
	_, err := cb.Execute("ergast", func() (interface{}, error) {
		calls++
		return nil, nil
	})
	assert.Error(t, err)
	assert.Zero(t, calls)

	// The openweather breaker is independent
	_, err = cb.Execute("openweather", func() (interface{}, error) { return nil, nil })
	assert.NoError(t, err)
}

func TestCircuitBreaker_UnknownServiceExecutesDirectly(t *testing.T) {
	cb := NewCircuitBreakerService(5, time.Second, testLogger())

	result, err := cb.Execute("nonexistent", func() (interface{}, error) {
		return "direct", nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "direct", result)
}
