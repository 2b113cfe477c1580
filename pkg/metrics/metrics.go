package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector provides application metrics collection
type Collector struct {
	PredictionRequestsTotal *prometheus.CounterVec
	PredictionDuration      *prometheus.HistogramVec
	PredictionErrorsTotal   *prometheus.CounterVec

	QualifyingSourceTotal *prometheus.CounterVec
	WeatherFallbackTotal  prometheus.Counter
	WeatherCacheHitsTotal prometheus.Counter

	ExternalRequestDuration *prometheus.HistogramVec
}

// NewCollector creates a new metrics collector
func NewCollector(namespace string) *Collector {
	return &Collector{
		PredictionRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "prediction_requests_total",
				Help:      "Total number of prediction requests by track and scoring path",
			},
			[]string{"track", "path"},
		),

		PredictionDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "prediction_duration_seconds",
				Help:      "End-to-end prediction duration in seconds",
				Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 2.0, 5.0, 10.0},
			},
			[]string{"track"},
		),

		PredictionErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "prediction_errors_total",
				Help:      "Total number of prediction errors by type",
			},
			[]string{"error_type"},
		),

		QualifyingSourceTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "qualifying_source_total",
				Help:      "Qualifying data resolutions by source tag",
			},
			[]string{"source"},
		),

		WeatherFallbackTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "weather_fallback_total",
				Help:      "Number of weather requests served from climate fallback",
			},
		),

		WeatherCacheHitsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "weather_cache_hits_total",
				Help:      "Number of weather requests served from the snapshot cache",
			},
		),

		ExternalRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "external_request_duration_seconds",
				Help:      "External data source request duration in seconds",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.0, 3.0, 5.0},
			},
			[]string{"source"},
		),
	}
}

// ObservePrediction records a completed prediction request
func (c *Collector) ObservePrediction(track, path string, duration time.Duration) {
	c.PredictionRequestsTotal.WithLabelValues(track, path).Inc()
	c.PredictionDuration.WithLabelValues(track).Observe(duration.Seconds())
}

// ObserveExternalRequest records the duration of an external source call
func (c *Collector) ObserveExternalRequest(source string, duration time.Duration) {
	c.ExternalRequestDuration.WithLabelValues(source).Observe(duration.Seconds())
}
