package prediction

import (
	"math"
	"sort"
)

// ScoredEntry pairs a driver with a raw score before ranking.
type ScoredEntry struct {
	Driver string
	Team   string
	Score  float64
}

// RankedEntry carries the grid position derived from a score ordering.
type RankedEntry struct {
	ScoredEntry
	Position int
}

// Rank orders entries by descending score and assigns dense positions
// 1..N. The sort is stable, so equal scores keep their input order.
func Rank(entries []ScoredEntry) []RankedEntry {
	ranked := make([]RankedEntry, len(entries))
	for i, entry := range entries {
		ranked[i] = RankedEntry{ScoredEntry: entry}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	for i := range ranked {
		ranked[i].Position = i + 1
	}
	return ranked
}

// TopNProbability estimates the chance a score lands inside the top n of
// the field. The n-th highest score acts as the threshold; distance from
// it shifts the estimate linearly, bounded to [0.05, 0.95] so no outcome
// reads as certain.
func TopNProbability(score float64, all []float64, n int) float64 {
	if len(all) < n {
		return 1.0
	}

	sorted := make([]float64, len(all))
	copy(sorted, all)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
	threshold := sorted[n-1]

	if score >= threshold {
		return 0.5 + math.Min(0.45, (score-threshold)/50.0)
	}
	return math.Max(0.05, 0.5-(threshold-score)/50.0)
}
