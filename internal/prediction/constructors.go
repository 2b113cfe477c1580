package prediction

import (
	"sort"

	"f1-race-predictor/internal/reference"
)

// ConstructorStanding is a team's aggregate over its drivers' ranked
// predictions.
type ConstructorStanding struct {
	Team            string
	Position        int
	ProjectedPoints int
	AvgPosition     float64
}

// AggregateConstructors folds ranked driver entries into per-team
// standings. Each driver's position is converted to championship points
// and summed; teams are then ordered by points descending. Ties keep the
// order in which teams first appeared in the driver ranking.
func AggregateConstructors(ranked []RankedEntry) []ConstructorStanding {
	type teamAccum struct {
		points    int
		positions []int
	}

	accum := make(map[string]*teamAccum)
	var order []string

	for _, entry := range ranked {
		team := reference.NormalizeTeamName(entry.Team)
		acc, ok := accum[team]
		if !ok {
			acc = &teamAccum{}
			accum[team] = acc
			order = append(order, team)
		}
		acc.points += reference.F1Points(entry.Position)
		acc.positions = append(acc.positions, entry.Position)
	}

	standings := make([]ConstructorStanding, 0, len(order))
	for _, team := range order {
		acc := accum[team]
		sum := 0
		for _, pos := range acc.positions {
			sum += pos
		}
		standings = append(standings, ConstructorStanding{
			Team:            team,
			ProjectedPoints: acc.points,
			AvgPosition:     float64(sum) / float64(len(acc.positions)),
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].ProjectedPoints > standings[j].ProjectedPoints
	})
	for i := range standings {
		standings[i].Position = i + 1
	}
	return standings
}
