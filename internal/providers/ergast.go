package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// ErgastClient fetches qualifying results from the Ergast API. It serves
// as both the primary (qualifying) and secondary (sprint qualifying)
// results source for the resolver cascade.
type ErgastClient struct {
	client  *http.Client
	baseURL string
	logger  *logrus.Logger
}

// NewErgastClient creates a new Ergast API client. The timeout is short
// on purpose: a slow response must fail fast into the next fallback tier.
func NewErgastClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *ErgastClient {
	return &ErgastClient{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger,
	}
}

type ergastDriver struct {
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
}

type ergastQualifyingResult struct {
	Position string       `json:"position"`
	Driver   ergastDriver `json:"Driver"`
}

type ergastResponse struct {
	MRData struct {
		RaceTable struct {
			Races []struct {
				QualifyingResults       []ergastQualifyingResult `json:"QualifyingResults"`
				SprintQualifyingResults []ergastQualifyingResult `json:"SprintQualifyingResults"`
			} `json:"Races"`
		} `json:"RaceTable"`
	} `json:"MRData"`
}

// GetQualifying fetches qualifying results for a race. An empty map with
// a nil error means the session has no published results yet.
func (c *ErgastClient) GetQualifying(ctx context.Context, season, round int) (map[string]int, error) {
	url := fmt.Sprintf("%s/%d/%d/qualifying.json", c.baseURL, season, round)

	resp, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	if len(resp.MRData.RaceTable.Races) == 0 {
		return map[string]int{}, nil
	}

	return convertResults(resp.MRData.RaceTable.Races[0].QualifyingResults), nil
}

// GetSprintQualifying fetches sprint qualifying results for a race.
func (c *ErgastClient) GetSprintQualifying(ctx context.Context, season, round int) (map[string]int, error) {
	url := fmt.Sprintf("%s/%d/%d/sprint/qualifying.json", c.baseURL, season, round)

	resp, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	if len(resp.MRData.RaceTable.Races) == 0 {
		return map[string]int{}, nil
	}

	return convertResults(resp.MRData.RaceTable.Races[0].SprintQualifyingResults), nil
}

func (c *ErgastClient) fetch(ctx context.Context, url string) (*ergastResponse, error) {
	c.logger.WithFields(logrus.Fields{
		"component": "ergast_client",
		"url":       url,
	}).Debug("Fetching qualifying results")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create ergast request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ergast data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ergast API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read ergast response: %w", err)
	}

	var parsed ergastResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse ergast response: %w", err)
	}

	return &parsed, nil
}

func convertResults(results []ergastQualifyingResult) map[string]int {
	out := make(map[string]int, len(results))
	for _, r := range results {
		name := strings.TrimSpace(r.Driver.GivenName + " " + r.Driver.FamilyName)
		pos, err := strconv.Atoi(r.Position)
		if name == "" || err != nil || pos == 0 {
			continue
		}
		out[name] = pos
	}
	return out
}
