package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"f1-race-predictor/internal/models"
	"f1-race-predictor/internal/reference"
)

type fakeQualifyingSource struct {
	qualifying    map[string]int
	qualifyingErr error
	sprint        map[string]int
	sprintErr     error

	qualifyingCalls int
	sprintCalls     int
}

func (f *fakeQualifyingSource) GetQualifying(ctx context.Context, season, round int) (map[string]int, error) {
	f.qualifyingCalls++
	return f.qualifying, f.qualifyingErr
}

func (f *fakeQualifyingSource) GetSprintQualifying(ctx context.Context, season, round int) (map[string]int, error) {
	f.sprintCalls++
	return f.sprint, f.sprintErr
}

func newTestQualifyingService(source *fakeQualifyingSource) *QualifyingService {
	log := testLogger()
	return NewQualifyingService(
		source,
		reference.NewCatalog(),
		NewCacheService(nil, log),
		NewCircuitBreakerService(5, 3*time.Second, log),
		nil,
		log,
	)
}

func TestQualifying_PrimarySourceWins(t *testing.T) {
	source := &fakeQualifyingSource{
		qualifying: map[string]int{"Lando Norris": 1, "Max Verstappen": 2},
	}
	svc := newTestQualifyingService(source)

	results, tag := svc.Resolve(context.Background(), 2025, 1)
	assert.Equal(t, models.SourcePrimary, tag)
	assert.Equal(t, 1, results["Lando Norris"])
	assert.Zero(t, source.sprintCalls)
}

func TestQualifying_SecondCallIsMemoized(t *testing.T) {
	source := &fakeQualifyingSource{
		qualifying: map[string]int{"Lando Norris": 1},
	}
	svc := newTestQualifyingService(source)
	ctx := context.Background()

	_, first := svc.Resolve(ctx, 2025, 1)
	results, second := svc.Resolve(ctx, 2025, 1)

	assert.Equal(t, models.SourcePrimary, first)
	assert.Equal(t, models.SourceCached, second)
	assert.Equal(t, 1, results["Lando Norris"])
	assert.Equal(t, 1, source.qualifyingCalls)
}

func TestQualifying_SecondarySourceOnPrimaryFailure(t *testing.T) {
	source := &fakeQualifyingSource{
		qualifyingErr: errors.New("no qualifying data"),
		sprint:        map[string]int{"Oscar Piastri": 1},
	}
	svc := newTestQualifyingService(source)

	results, tag := svc.Resolve(context.Background(), 2025, 6)
	assert.Equal(t, models.SourceSecondary, tag)
	assert.Equal(t, 1, results["Oscar Piastri"])
}

func TestQualifying_BaselineWhenBothSourcesFail(t *testing.T) {
	source := &fakeQualifyingSource{
		qualifyingErr: errors.New("down"),
		sprintErr:     errors.New("down"),
	}
	svc := newTestQualifyingService(source)
	ctx := context.Background()

	results, tag := svc.Resolve(ctx, 2025, 3)
	assert.Equal(t, models.SourceBaseline, tag)
	require.Len(t, results, 20)
	assert.Equal(t, 2, results["Lando Norris"])

	// Baseline results are never memoized: the next call retries
	_, tag = svc.Resolve(ctx, 2025, 3)
	assert.Equal(t, models.SourceBaseline, tag)
	assert.Equal(t, 2, source.qualifyingCalls)
}

func TestQualifying_EmptyResultTreatedAsFailure(t *testing.T) {
	source := &fakeQualifyingSource{
		qualifying: map[string]int{},
		sprint:     map[string]int{"Oscar Piastri": 1},
	}
	svc := newTestQualifyingService(source)

	_, tag := svc.Resolve(context.Background(), 2025, 2)
	assert.Equal(t, models.SourceSecondary, tag)
}

func TestQualifying_CallerCannotMutateMemo(t *testing.T) {
	source := &fakeQualifyingSource{
		qualifying: map[string]int{"Lando Norris": 1},
	}
	svc := newTestQualifyingService(source)
	ctx := context.Background()

	results, _ := svc.Resolve(ctx, 2025, 1)
	results["Lando Norris"] = 99

	fresh, _ := svc.Resolve(ctx, 2025, 1)
	assert.Equal(t, 1, fresh["Lando Norris"])
}

func TestQualifying_RoundsMemoizedIndependently(t *testing.T) {
	source := &fakeQualifyingSource{
		qualifying: map[string]int{"Lando Norris": 1},
	}
	svc := newTestQualifyingService(source)
	ctx := context.Background()

	svc.Resolve(ctx, 2025, 1)
	_, tag := svc.Resolve(ctx, 2025, 2)
	assert.Equal(t, models.SourcePrimary, tag)
	assert.Equal(t, 2, source.qualifyingCalls)
}
