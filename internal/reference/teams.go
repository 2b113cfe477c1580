package reference

import "strings"

// teamNameMapping maps every raw team-name variant seen in upstream data
// to its canonical key. Unknown variants go through a deterministic
// fallback transform instead of being dropped (see NormalizeTeamName).
var teamNameMapping = map[string]string{
	"Red Bull Racing":    "Red_Bull",
	"Team_Red_Bull":      "Red_Bull",
	"Red Bull":           "Red_Bull",
	"Visa Cash App RB":   "Racing_Bulls",
	"Racing Bulls":       "Racing_Bulls",
	"RB":                 "Racing_Bulls",
	"Ferrari":            "Ferrari",
	"Scuderia Ferrari":   "Ferrari",
	"Mercedes":           "Mercedes",
	"Team_Mercedes":      "Mercedes",
	"Mercedes-AMG":       "Mercedes",
	"Aston Martin":       "Aston_Martin",
	"Aston Martin Aramco": "Aston_Martin",
	"McLaren":            "McLaren",
	"Williams":           "Williams",
	"Williams Racing":    "Williams",
	"Kick Sauber":        "Sauber",
	"Stake F1":           "Sauber",
	"Sauber":             "Sauber",
	"Haas F1 Team":       "Haas",
	"Haas":               "Haas",
	"Alpine":             "Alpine",
	"Alpine F1 Team":     "Alpine",
}

// teamPowerRanking scores each constructor in [0,1] based on 2025
// constructor standings.
var teamPowerRanking = map[string]float64{
	"McLaren":      1.0,
	"Ferrari":      0.95,
	"Red_Bull":     0.90,
	"Mercedes":     0.85,
	"Racing_Bulls": 0.55,
	"Haas":         0.50,
	"Alpine":       0.48,
	"Aston_Martin": 0.45,
	"Williams":     0.40,
	"Sauber":       0.35,
}

// DefaultTeamPower is the power ranking assumed for unknown teams.
const DefaultTeamPower = 0.35

// NormalizeTeamName resolves a raw team-name variant to its canonical key.
// Unknown names fall back to replacing spaces with underscores so upstream
// oddities never disappear from aggregation.
func NormalizeTeamName(team string) string {
	if key, ok := teamNameMapping[team]; ok {
		return key
	}
	return strings.ReplaceAll(team, " ", "_")
}

// TeamPower returns the power ranking for a canonical team key.
func TeamPower(normalized string) float64 {
	if p, ok := teamPowerRanking[normalized]; ok {
		return p
	}
	return DefaultTeamPower
}
