package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"f1-race-predictor/internal/api/handlers"
	"f1-race-predictor/internal/config"
	"f1-race-predictor/internal/prediction"
	"f1-race-predictor/internal/providers"
	"f1-race-predictor/internal/reference"
	"f1-race-predictor/internal/services"
	"f1-race-predictor/pkg/logger"
	"f1-race-predictor/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	structuredLogger := logger.InitLogger(cfg.LogLevel, cfg.IsDevelopment())
	logger.WithService("f1-race-predictor").WithFields(logrus.Fields{
		"environment": cfg.Env,
		"port":        cfg.Port,
		"season":      cfg.CurrentSeason,
	}).Info("Starting F1 Race Predictor")

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Redis is optional: without it the in-process caches still work,
	// they just do not survive restarts or share across replicas.
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.WithService("f1-race-predictor").WithError(err).Warn("Invalid Redis URL, continuing without shared cache")
		} else {
			redisClient = redis.NewClient(opt)
			if err := redisClient.Ping(context.Background()).Err(); err != nil {
				logger.WithService("f1-race-predictor").WithError(err).Warn("Redis unreachable, continuing without shared cache")
				redisClient.Close()
				redisClient = nil
			} else {
				defer redisClient.Close()
			}
		}
	}

	catalog := reference.NewCatalog()
	collector := metrics.NewCollector("f1_predictor")
	cacheService := services.NewCacheService(redisClient, structuredLogger)
	circuitBreakerService := services.NewCircuitBreakerService(
		cfg.CircuitBreakerThreshold,
		cfg.ExternalAPITimeout,
		structuredLogger,
	)

	ergast := providers.NewErgastClient(cfg.ErgastBaseURL, cfg.ExternalAPITimeout, structuredLogger)
	openWeather := providers.NewOpenWeatherClient(cfg.OpenWeatherAPIKey, cfg.OpenWeatherBaseURL, cfg.ExternalAPITimeout, structuredLogger)

	weatherService := services.NewWeatherService(openWeather, catalog, cacheService, circuitBreakerService, collector, structuredLogger)
	qualifyingService := services.NewQualifyingService(ergast, catalog, cacheService, circuitBreakerService, collector, structuredLogger)

	// A missing or malformed artifact downgrades scoring to the
	// heuristic path for the process lifetime.
	model, err := prediction.LoadModel(cfg.DriverModelPath, cfg.DriverFeaturesPath)
	if err != nil {
		logger.WithService("f1-race-predictor").WithError(err).Warn("Driver model unavailable, using heuristic scoring")
		model = nil
	} else {
		logger.WithService("f1-race-predictor").WithField("model_version", model.Version).Info("Driver model loaded")
	}

	heuristic := prediction.NewHeuristicScorer(catalog, cfg.CurrentSeason)
	predictionService := services.NewPredictionService(
		catalog,
		weatherService,
		qualifyingService,
		model,
		heuristic,
		collector,
		structuredLogger,
		cfg.CurrentSeason,
	)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	predictionHandler := handlers.NewPredictionHandler(predictionService, catalog, structuredLogger)
	healthHandler := handlers.NewHealthHandler(predictionService, cacheService, cfg.Env, structuredLogger)

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/predict/qualifying", predictionHandler.PredictQualifying)
		apiV1.GET("/tracks", predictionHandler.ListTracks)
		apiV1.GET("/drivers", predictionHandler.ListDrivers)
	}

	router.GET("/health", healthHandler.GetHealth)
	router.HEAD("/health", healthHandler.GetHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Optional background warm-up keeps the upcoming round's weather and
	// qualifying data fresh between requests.
	var scheduler *cron.Cron
	if cfg.EnableBackgroundRefresh {
		scheduler = cron.New()
		_, err := scheduler.AddFunc(cfg.RefreshInterval, func() {
			refreshUpcomingRound(catalog, weatherService, qualifyingService, cfg.CurrentSeason, structuredLogger)
		})
		if err != nil {
			logger.WithService("f1-race-predictor").WithError(err).Warn("Invalid refresh interval, background refresh disabled")
		} else {
			scheduler.Start()
			logger.WithService("f1-race-predictor").WithField("interval", cfg.RefreshInterval).Info("Background refresh scheduled")
		}
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	go func() {
		logger.WithService("f1-race-predictor").WithField("port", cfg.Port).Info("Server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithService("f1-race-predictor").Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.WithService("f1-race-predictor").Info("Shutting down server")

	if scheduler != nil {
		scheduler.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithService("f1-race-predictor").WithError(err).Error("Server forced to shutdown")
	}

	logger.WithService("f1-race-predictor").Info("Server exited")
}

// refreshUpcomingRound warms the weather and qualifying caches for the
// next round on the calendar. Rounds with a recorded race result are
// already settled, so the first round without one is "upcoming".
func refreshUpcomingRound(
	catalog *reference.Catalog,
	weather *services.WeatherService,
	qualifying *services.QualifyingService,
	season int,
	log *logrus.Logger,
) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, track := range catalog.Tracks() {
		if _, done := catalog.RaceResult(track.Key); done {
			continue
		}

		log.WithFields(logrus.Fields{
			"component": "background_refresh",
			"track":     track.Key,
			"round":     track.Round,
		}).Info("Refreshing upcoming round data")

		weather.GetForTrack(ctx, track.Key)
		qualifying.Resolve(ctx, season, track.Round)
		return
	}

	log.WithField("component", "background_refresh").Debug("No upcoming round to refresh")
}
