package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// CacheService is an optional Redis-backed second-level cache shared
// across replicas. The in-process caches in the resolvers remain
// authoritative; this layer only saves upstream calls after a restart.
// A nil CacheService (or nil client) disables it entirely.
type CacheService struct {
	client *redis.Client
	logger *logrus.Logger
}

const (
	// WeatherDataTTL mirrors the in-process snapshot TTL.
	WeatherDataTTL = 30 * time.Minute
	// QualifyingTTL is long: once a session has results they do not change.
	QualifyingTTL = 24 * time.Hour
)

// NewCacheService creates a new cache service instance
func NewCacheService(redisClient *redis.Client, logger *logrus.Logger) *CacheService {
	return &CacheService{
		client: redisClient,
		logger: logger,
	}
}

// buildCacheKey constructs consistent cache keys for prediction data
func (c *CacheService) buildCacheKey(elements ...string) string {
	return fmt.Sprintf("f1-predictor:%s", strings.Join(elements, ":"))
}

// Set stores a value in cache with TTL
func (c *CacheService) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		c.logger.WithError(err).WithField("key", key).Error("Failed to set cache value")
		return err
	}

	return nil
}

// Get retrieves a value from cache
func (c *CacheService) Get(ctx context.Context, key string, dest interface{}) error {
	if c == nil || c.client == nil {
		return redis.Nil
	}

	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return err
		}
		c.logger.WithError(err).WithField("key", key).Error("Failed to get cache value")
		return err
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		c.logger.WithError(err).WithField("key", key).Error("Failed to unmarshal cache value")
		return err
	}

	return nil
}

// SetWeatherSnapshot stores a resolved weather snapshot for a city
func (c *CacheService) SetWeatherSnapshot(ctx context.Context, city string, snapshot interface{}) error {
	key := c.buildCacheKey("weather", strings.ToLower(city))
	return c.Set(ctx, key, snapshot, WeatherDataTTL)
}

// GetWeatherSnapshot retrieves a cached weather snapshot for a city
func (c *CacheService) GetWeatherSnapshot(ctx context.Context, city string, dest interface{}) error {
	key := c.buildCacheKey("weather", strings.ToLower(city))
	return c.Get(ctx, key, dest)
}

// SetQualifyingResults stores resolved qualifying positions for a round
func (c *CacheService) SetQualifyingResults(ctx context.Context, season, round int, results interface{}) error {
	key := c.buildCacheKey("qualifying", fmt.Sprintf("%d", season), fmt.Sprintf("%d", round))
	return c.Set(ctx, key, results, QualifyingTTL)
}

// GetQualifyingResults retrieves cached qualifying positions for a round
func (c *CacheService) GetQualifyingResults(ctx context.Context, season, round int, dest interface{}) error {
	key := c.buildCacheKey("qualifying", fmt.Sprintf("%d", season), fmt.Sprintf("%d", round))
	return c.Get(ctx, key, dest)
}

// IsHealthy reports whether the Redis backend is reachable
func (c *CacheService) IsHealthy(ctx context.Context) bool {
	if c == nil || c.client == nil {
		return false
	}
	return c.client.Ping(ctx).Err() == nil
}
