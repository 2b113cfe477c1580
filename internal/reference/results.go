package reference

// raceResults holds the recorded 2025 podium (P1..P3) for each completed
// race, keyed by track key.
var raceResults = map[string][]string{
	"melbourne":         {"Lando Norris", "Charles Leclerc", "Oscar Piastri"},
	"shanghai":          {"Oscar Piastri", "Lando Norris", "Charles Leclerc"},
	"suzuka":            {"Max Verstappen", "Oscar Piastri", "George Russell"},
	"sakhir":            {"Oscar Piastri", "Max Verstappen", "Charles Leclerc"},
	"jeddah":            {"Oscar Piastri", "Lando Norris", "Charles Leclerc"},
	"miami":             {"Lando Norris", "Oscar Piastri", "Charles Leclerc"},
	"imola":             {"Lando Norris", "Max Verstappen", "Lewis Hamilton"},
	"monte_carlo":       {"Charles Leclerc", "Oscar Piastri", "Carlos Sainz"},
	"barcelona":         {"Lando Norris", "Max Verstappen", "Oscar Piastri"},
	"montreal":          {"Lando Norris", "Max Verstappen", "George Russell"},
	"spielberg":         {"Oscar Piastri", "Lando Norris", "Max Verstappen"},
	"silverstone":       {"Lewis Hamilton", "Max Verstappen", "Lando Norris"},
	"spa-francorchamps": {"Lewis Hamilton", "Oscar Piastri", "Charles Leclerc"},
	"budapest":          {"Oscar Piastri", "Lando Norris", "Charles Leclerc"},
	"zandvoort":         {"Max Verstappen", "Oscar Piastri", "Lando Norris"},
	"monza":             {"Charles Leclerc", "Oscar Piastri", "Lando Norris"},
	"baku":              {"Oscar Piastri", "Charles Leclerc", "George Russell"},
	"singapore":         {"Lando Norris", "Max Verstappen", "Oscar Piastri"},
	"austin":            {"Charles Leclerc", "Max Verstappen", "Lando Norris"},
	"mexico_city":       {"Max Verstappen", "Charles Leclerc", "Carlos Sainz"},
	"sao_paulo":         {"Max Verstappen", "Lando Norris", "Charles Leclerc"},
	"las_vegas":         {"George Russell", "Lewis Hamilton", "Carlos Sainz"},
	"lusail":            {"Max Verstappen", "Charles Leclerc", "Oscar Piastri"},
	"yas_marina":        {"Lando Norris", "Carlos Sainz", "Charles Leclerc"},
}

// qualifyingResults holds the recorded 2025 qualifying positions (top six)
// for each track where the session has run.
var qualifyingResults = map[string]map[string]int{
	"melbourne": {
		"Lando Norris": 1, "Oscar Piastri": 2, "Charles Leclerc": 3,
		"Max Verstappen": 4, "George Russell": 5, "Carlos Sainz": 6,
	},
	"shanghai": {
		"Oscar Piastri": 1, "Charles Leclerc": 2, "Lando Norris": 3,
		"Max Verstappen": 4, "Lewis Hamilton": 5, "George Russell": 6,
	},
	"suzuka": {
		"Max Verstappen": 1, "Lando Norris": 2, "Oscar Piastri": 3,
		"George Russell": 4, "Charles Leclerc": 5, "Lewis Hamilton": 6,
	},
	"sakhir": {
		"Lando Norris": 1, "Max Verstappen": 2, "Charles Leclerc": 3,
		"Oscar Piastri": 4, "Carlos Sainz": 5, "George Russell": 6,
	},
	"jeddah": {
		"Oscar Piastri": 1, "Lando Norris": 2, "Max Verstappen": 3,
		"Charles Leclerc": 4, "George Russell": 5, "Lewis Hamilton": 6,
	},
	"miami": {
		"Lando Norris": 1, "Charles Leclerc": 2, "Oscar Piastri": 3,
		"Max Verstappen": 4, "Carlos Sainz": 5, "George Russell": 6,
	},
	"imola": {
		"Max Verstappen": 1, "Lando Norris": 2, "Lewis Hamilton": 3,
		"Charles Leclerc": 4, "Oscar Piastri": 5, "Carlos Sainz": 6,
	},
	"monte_carlo": {
		"Charles Leclerc": 1, "Oscar Piastri": 2, "Lando Norris": 3,
		"Max Verstappen": 4, "Carlos Sainz": 5, "Lewis Hamilton": 6,
	},
	"barcelona": {
		"Lando Norris": 1, "Oscar Piastri": 2, "Max Verstappen": 3,
		"Charles Leclerc": 4, "Carlos Sainz": 5, "George Russell": 6,
	},
	"montreal": {
		"Lando Norris": 1, "Max Verstappen": 2, "George Russell": 3,
		"Charles Leclerc": 4, "Oscar Piastri": 5, "Lewis Hamilton": 6,
	},
	"spielberg": {
		"Oscar Piastri": 1, "Max Verstappen": 2, "Lando Norris": 3,
		"Charles Leclerc": 4, "George Russell": 5, "Carlos Sainz": 6,
	},
	"silverstone": {
		"Lando Norris": 1, "Max Verstappen": 2, "Lewis Hamilton": 3,
		"George Russell": 4, "Oscar Piastri": 5, "Charles Leclerc": 6,
	},
	"spa-francorchamps": {
		"Charles Leclerc": 1, "Oscar Piastri": 2, "Lewis Hamilton": 3,
		"Lando Norris": 4, "Max Verstappen": 5, "George Russell": 6,
	},
	"budapest": {
		"Oscar Piastri": 1, "Lando Norris": 2, "Max Verstappen": 3,
		"Charles Leclerc": 4, "Carlos Sainz": 5, "Lewis Hamilton": 6,
	},
	"zandvoort": {
		"Max Verstappen": 1, "Lando Norris": 2, "Oscar Piastri": 3,
		"Charles Leclerc": 4, "George Russell": 5, "Lewis Hamilton": 6,
	},
	"monza": {
		"Charles Leclerc": 1, "Oscar Piastri": 2, "Lando Norris": 3,
		"Max Verstappen": 4, "Carlos Sainz": 5, "Lewis Hamilton": 6,
	},
	"baku": {
		"Charles Leclerc": 1, "Oscar Piastri": 2, "George Russell": 3,
		"Lando Norris": 4, "Max Verstappen": 5, "Carlos Sainz": 6,
	},
	"singapore": {
		"Lando Norris": 1, "Max Verstappen": 2, "Charles Leclerc": 3,
		"Oscar Piastri": 4, "George Russell": 5, "Lewis Hamilton": 6,
	},
	"austin": {
		"Max Verstappen": 1, "Charles Leclerc": 2, "Lando Norris": 3,
		"Oscar Piastri": 4, "Lewis Hamilton": 5, "Carlos Sainz": 6,
	},
	"mexico_city": {
		"Max Verstappen": 1, "Charles Leclerc": 2, "Carlos Sainz": 3,
		"Lando Norris": 4, "Oscar Piastri": 5, "George Russell": 6,
	},
	"sao_paulo": {
		"Lando Norris": 1, "Max Verstappen": 2, "Charles Leclerc": 3,
		"Oscar Piastri": 4, "George Russell": 5, "Carlos Sainz": 6,
	},
	"las_vegas": {
		"George Russell": 1, "Carlos Sainz": 2, "Lewis Hamilton": 3,
		"Charles Leclerc": 4, "Max Verstappen": 5, "Lando Norris": 6,
	},
	"lusail": {
		"Max Verstappen": 1, "Charles Leclerc": 2, "Lando Norris": 3,
		"Oscar Piastri": 4, "George Russell": 5, "Lewis Hamilton": 6,
	},
	"yas_marina": {
		"Lando Norris": 1, "Oscar Piastri": 2, "Charles Leclerc": 3,
		"Carlos Sainz": 4, "Max Verstappen": 5, "George Russell": 6,
	},
}

// trackSpecialties holds per-circuit-type average finishing positions for
// drivers with a recorded specialty (lower is better).
var trackSpecialties = map[string]map[string]float64{
	"power": {
		"Max Verstappen": 2.5, "Oscar Piastri": 2.8, "Lando Norris": 3.0,
		"Charles Leclerc": 3.5, "Lewis Hamilton": 4.0, "George Russell": 5.5,
		"Carlos Sainz": 6.0, "Yuki Tsunoda": 9.0, "Fernando Alonso": 10.0,
	},
	"street": {
		"Charles Leclerc": 2.0, "Oscar Piastri": 2.5, "Lando Norris": 3.0,
		"Max Verstappen": 4.0, "Carlos Sainz": 5.0, "George Russell": 6.0,
		"Lewis Hamilton": 7.0, "Fernando Alonso": 9.0, "Yuki Tsunoda": 10.0,
	},
	"technical": {
		"Lando Norris": 2.0, "Max Verstappen": 2.5, "Oscar Piastri": 3.0,
		"Charles Leclerc": 4.0, "George Russell": 5.0, "Lewis Hamilton": 5.5,
		"Carlos Sainz": 6.0, "Fernando Alonso": 9.5, "Yuki Tsunoda": 10.0,
	},
	"high_speed": {
		"Lewis Hamilton": 2.0, "Max Verstappen": 2.5, "Lando Norris": 3.0,
		"Oscar Piastri": 4.0, "George Russell": 5.0, "Charles Leclerc": 5.5,
		"Carlos Sainz": 7.0, "Yuki Tsunoda": 11.0, "Fernando Alonso": 10.0,
	},
}
