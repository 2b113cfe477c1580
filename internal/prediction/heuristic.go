package prediction

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cespare/xxhash/v2"

	"f1-race-predictor/internal/models"
	"f1-race-predictor/internal/reference"
)

// HeuristicScorer computes a driver's score from recorded results and
// reference data when no trained model is available. Tiers are evaluated
// in strict priority order; the first applicable tier fixes the base
// score, then championship, team-strength, and weather adjustments are
// added on top.
type HeuristicScorer struct {
	catalog *reference.Catalog
	season  int
}

// Wet-weather and tire-management allow-lists for the weather adjustment.
var (
	rainMasters = map[string]bool{
		"Max Verstappen": true, "Lewis Hamilton": true,
	}
	rainStrong = map[string]bool{
		"Lando Norris": true, "Fernando Alonso": true, "George Russell": true,
	}
	rainRookies = map[string]bool{
		"Andrea Kimi Antonelli": true, "Gabriel Bortoleto": true,
		"Jack Doohan": true, "Isack Hadjar": true,
	}
	tireManagers = map[string]bool{
		"Lewis Hamilton": true, "Fernando Alonso": true, "Max Verstappen": true,
	}
)

func NewHeuristicScorer(catalog *reference.Catalog, season int) *HeuristicScorer {
	return &HeuristicScorer{
		catalog: catalog,
		season:  season,
	}
}

// baseTier resolves a base score for one driver on one track, or reports
// that it does not apply. Tiers run in order; the first applicable one
// wins, which keeps the cascade a data change rather than a code change.
type baseTier func(h *HeuristicScorer, driverName string, track reference.Track) (float64, bool)

var baseTiers = []baseTier{
	actualResultTier,
	actualQualifyingTier,
	trackSpecialtyTier,
	baselineTier,
}

// actualResultTier applies whenever the track has a recorded race result.
// Podium finishers score off their finish rank; everyone else falls back
// within the tier to recorded qualifying, then to the baseline.
func actualResultTier(h *HeuristicScorer, driverName string, track reference.Track) (float64, bool) {
	podium, ok := h.catalog.RaceResult(track.Key)
	if !ok {
		return 0, false
	}

	for i, name := range podium {
		if name == driverName {
			finishRank := float64(i + 1)
			return 100 - finishRank*5 + 90, true
		}
	}

	if quali, ok := h.actualQualifying(track.Key, driverName); ok {
		return 100 - quali*4 + 20, true
	}
	return h.baselineScore(driverName), true
}

// actualQualifyingTier applies when the track has recorded qualifying but
// no race result.
func actualQualifyingTier(h *HeuristicScorer, driverName string, track reference.Track) (float64, bool) {
	if _, ok := h.catalog.ActualQualifying(track.Key); !ok {
		return 0, false
	}

	if quali, ok := h.actualQualifying(track.Key, driverName); ok {
		return 100 - quali*4 + 30, true
	}
	return h.baselineScore(driverName), true
}

// trackSpecialtyTier applies when the circuit type has a specialty table.
func trackSpecialtyTier(h *HeuristicScorer, driverName string, track reference.Track) (float64, bool) {
	avgFinish, ok := h.catalog.SpecialtyAverage(track.CircuitType, driverName)
	if !ok {
		return 0, false
	}
	return 100 - avgFinish*5 + 25, true
}

// baselineTier is the final fallback and always applies.
func baselineTier(h *HeuristicScorer, driverName string, track reference.Track) (float64, bool) {
	return h.baselineScore(driverName), true
}

func (h *HeuristicScorer) actualQualifying(trackKey, driverName string) (float64, bool) {
	table, ok := h.catalog.ActualQualifying(trackKey)
	if !ok {
		return 0, false
	}
	pos, ok := table[driverName]
	if !ok {
		return 0, false
	}
	return float64(pos), true
}

func (h *HeuristicScorer) baselineScore(driverName string) float64 {
	return 100 - h.catalog.BaselineQualifying(driverName)*3.5
}

// BaseScore runs the tier cascade without adjustments. Exposed so each
// tier's arithmetic stays independently verifiable.
func (h *HeuristicScorer) BaseScore(driverName string, track reference.Track) float64 {
	for _, tier := range baseTiers {
		if score, ok := tier(h, driverName, track); ok {
			return score
		}
	}
	// baselineTier always applies; unreachable
	return h.baselineScore(driverName)
}

// Score computes the full heuristic score for a driver on a track under
// the given weather. Repeated calls with identical inputs are
// bit-identical: the jitter is seeded from (driver, track, season).
func (h *HeuristicScorer) Score(driverName, team string, track reference.Track, weather models.WeatherSnapshot) float64 {
	rng := h.rng(driverName, track.Key)

	score := h.BaseScore(driverName, track)

	// Championship performance bonus, normalized to the leader's points
	points := float64(h.catalog.ChampionshipPoints(driverName))
	maxPoints := float64(h.catalog.MaxChampionshipPoints())
	if maxPoints > 0 {
		score += (points / maxPoints) * 15
	}

	// Team strength bonus
	teamPower := reference.TeamPower(reference.NormalizeTeamName(team))
	score += teamPower * 10

	// Weather adjustments
	if weather.IsWet() {
		if rainMasters[driverName] {
			score += uniform(rng, 8, 15)
		} else if rainStrong[driverName] {
			score += uniform(rng, 4, 10)
		}
		if rainRookies[driverName] {
			score -= uniform(rng, 8, 15)
		}
	}
	if weather.TrackTemp > 45 && tireManagers[driverName] {
		score += uniform(rng, 2, 5)
	}

	// Small jitter for realism
	score += uniform(rng, -2, 2)

	return math.Max(0, score)
}

// rng derives a reproducible generator from the (driver, track, season)
// triple. xxhash64 over the UTF-8 bytes is pinned so the seed is stable
// across processes and platforms.
func (h *HeuristicScorer) rng(driverName, trackKey string) *rand.Rand {
	seed := xxhash.Sum64String(fmt.Sprintf("%s|%s|%d", driverName, trackKey, h.season))
	return rand.New(rand.NewSource(int64(seed)))
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
