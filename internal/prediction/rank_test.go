package prediction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank_DensePermutation(t *testing.T) {
	entries := []ScoredEntry{
		{Driver: "A", Score: 50},
		{Driver: "B", Score: 90},
		{Driver: "C", Score: 70},
		{Driver: "D", Score: 10},
	}

	ranked := Rank(entries)
	require.Len(t, ranked, 4)

	assert.Equal(t, "B", ranked[0].Driver)
	assert.Equal(t, "C", ranked[1].Driver)
	assert.Equal(t, "A", ranked[2].Driver)
	assert.Equal(t, "D", ranked[3].Driver)

	seen := make(map[int]bool)
	for i, entry := range ranked {
		assert.Equal(t, i+1, entry.Position)
		assert.False(t, seen[entry.Position], "duplicate position %d", entry.Position)
		seen[entry.Position] = true
	}
}

func TestRank_TiesKeepInsertionOrder(t *testing.T) {
	entries := []ScoredEntry{
		{Driver: "first", Score: 80},
		{Driver: "second", Score: 80},
		{Driver: "third", Score: 80},
	}

	ranked := Rank(entries)
	assert.Equal(t, "first", ranked[0].Driver)
	assert.Equal(t, "second", ranked[1].Driver)
	assert.Equal(t, "third", ranked[2].Driver)
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank(nil))
}

func TestTopNProbability_SmallField(t *testing.T) {
	assert.Equal(t, 1.0, TopNProbability(50, []float64{50, 40}, 3))
}

func TestTopNProbability_Bounds(t *testing.T) {
	all := []float64{200, 150, 120, 100, 80, 60, 40, 20, 10, 5}

	for _, score := range all {
		for _, n := range []int{3, 10} {
			p := TopNProbability(score, all, n)
			assert.GreaterOrEqual(t, p, 0.05)
			assert.LessOrEqual(t, p, 0.95)
		}
	}
}

func TestTopNProbability_AtThreshold(t *testing.T) {
	all := []float64{100, 90, 80, 70}

	// 80 is the third-highest score, so it sits exactly at the top-3
	// threshold
	assert.Equal(t, 0.5, TopNProbability(80, all, 3))
}

func TestTopNProbability_MonotonicInScore(t *testing.T) {
	all := []float64{180, 150, 130, 110, 90, 70, 50, 30, 20, 10, 5, 2}

	prev := -1.0
	for _, score := range []float64{0, 10, 30, 70, 110, 130, 150, 180, 250} {
		p := TopNProbability(score, all, 3)
		assert.GreaterOrEqual(t, p, prev)
		prev = p
	}
}
