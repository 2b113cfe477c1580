package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	// Logging
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Redis (optional, shared snapshot cache)
	RedisURL string `mapstructure:"REDIS_URL"`

	// External APIs
	OpenWeatherAPIKey  string        `mapstructure:"OPENWEATHER_API_KEY"`
	OpenWeatherBaseURL string        `mapstructure:"OPENWEATHER_BASE_URL"`
	ErgastBaseURL      string        `mapstructure:"ERGAST_BASE_URL"`
	ExternalAPITimeout time.Duration `mapstructure:"EXTERNAL_API_TIMEOUT"`

	// Circuit breaker
	CircuitBreakerThreshold int `mapstructure:"CIRCUIT_BREAKER_THRESHOLD"`

	// Model artifacts
	DriverModelPath    string `mapstructure:"DRIVER_MODEL_PATH"`
	DriverFeaturesPath string `mapstructure:"DRIVER_FEATURES_PATH"`

	// Prediction
	CurrentSeason   int    `mapstructure:"CURRENT_SEASON"`
	RefreshInterval string `mapstructure:"REFRESH_INTERVAL"`

	// Feature flags
	EnableBackgroundRefresh bool `mapstructure:"ENABLE_BACKGROUND_REFRESH"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("OPENWEATHER_API_KEY", "")
	viper.SetDefault("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5")
	viper.SetDefault("ERGAST_BASE_URL", "https://ergast.com/api/f1")
	viper.SetDefault("EXTERNAL_API_TIMEOUT", "3s")
	viper.SetDefault("CIRCUIT_BREAKER_THRESHOLD", 5)
	viper.SetDefault("DRIVER_MODEL_PATH", "driver_position_model.json")
	viper.SetDefault("DRIVER_FEATURES_PATH", "driver_model_features.json")
	viper.SetDefault("CURRENT_SEASON", 2025)
	viper.SetDefault("REFRESH_INTERVAL", "@every 30m")
	viper.SetDefault("ENABLE_BACKGROUND_REFRESH", false)

	// Read from environment
	viper.AutomaticEnv()

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
