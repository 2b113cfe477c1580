package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// OpenWeatherClient fetches current conditions from the OpenWeatherMap
// free tier API.
type OpenWeatherClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
	logger  *logrus.Logger
}

// CurrentConditions is the raw weather payload consumed by the weather
// resolver; derivation into a WeatherSnapshot happens there.
type CurrentConditions struct {
	AirTemp          float64
	FeelsLike        float64
	Humidity         float64
	CloudCoverPct    int
	ConditionText    string
	HasPrecipitation bool
}

// NewOpenWeatherClient creates a new OpenWeatherMap API client.
func NewOpenWeatherClient(apiKey, baseURL string, timeout time.Duration, logger *logrus.Logger) *OpenWeatherClient {
	return &OpenWeatherClient{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		logger:  logger,
	}
}

// HasCredentials reports whether an API key is configured.
func (c *OpenWeatherClient) HasCredentials() bool {
	return c.apiKey != ""
}

type openWeatherResponse struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Clouds struct {
		All int `json:"all"`
	} `json:"clouds"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Rain map[string]float64 `json:"rain"`
}

// GetCurrentWeather fetches current conditions for a city.
func (c *OpenWeatherClient) GetCurrentWeather(ctx context.Context, city string) (*CurrentConditions, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("OpenWeather API key not configured")
	}

	params := url.Values{}
	params.Add("q", city)
	params.Add("appid", c.apiKey)
	params.Add("units", "metric")

	apiURL := fmt.Sprintf("%s/weather?%s", c.baseURL, params.Encode())

	c.logger.WithFields(logrus.Fields{
		"component": "openweather_client",
		"city":      city,
	}).Debug("Fetching current weather")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create weather request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weather data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read weather response: %w", err)
	}

	var parsed openWeatherResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse weather response: %w", err)
	}

	conditionText := ""
	if len(parsed.Weather) > 0 {
		conditionText = parsed.Weather[0].Main
	}

	return &CurrentConditions{
		AirTemp:          parsed.Main.Temp,
		FeelsLike:        parsed.Main.FeelsLike,
		Humidity:         parsed.Main.Humidity,
		CloudCoverPct:    parsed.Clouds.All,
		ConditionText:    conditionText,
		HasPrecipitation: len(parsed.Rain) > 0,
	}, nil
}
