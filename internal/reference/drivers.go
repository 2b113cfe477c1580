package reference

// Driver is an immutable reference entity for one driver on the 2025 grid.
type Driver struct {
	Name               string  `json:"name"`
	Abbreviation       string  `json:"abbreviation"`
	Team               string  `json:"team"`
	BaselineQualifying float64 `json:"baseline_qualifying"`
	ChampionshipPoints int     `json:"championship_points"`
}

// drivers holds the 2025 roster. Slice order is the grid's canonical
// iteration order; ranking ties break on it, so it must stay stable.
var drivers = []Driver{
	{Name: "Max Verstappen", Abbreviation: "VER", Team: "Red Bull Racing", BaselineQualifying: 3.0, ChampionshipPoints: 437},
	{Name: "Yuki Tsunoda", Abbreviation: "TSU", Team: "Red Bull Racing", BaselineQualifying: 9.0, ChampionshipPoints: 178},
	{Name: "Charles Leclerc", Abbreviation: "LEC", Team: "Ferrari", BaselineQualifying: 3.5, ChampionshipPoints: 356},
	{Name: "Lewis Hamilton", Abbreviation: "HAM", Team: "Ferrari", BaselineQualifying: 6.0, ChampionshipPoints: 223},
	{Name: "George Russell", Abbreviation: "RUS", Team: "Mercedes", BaselineQualifying: 5.0, ChampionshipPoints: 245},
	{Name: "Andrea Kimi Antonelli", Abbreviation: "ANT", Team: "Mercedes", BaselineQualifying: 11.0, ChampionshipPoints: 4},
	{Name: "Lando Norris", Abbreviation: "NOR", Team: "McLaren", BaselineQualifying: 2.0, ChampionshipPoints: 374},
	{Name: "Oscar Piastri", Abbreviation: "PIA", Team: "McLaren", BaselineQualifying: 2.5, ChampionshipPoints: 292},
	{Name: "Fernando Alonso", Abbreviation: "ALO", Team: "Aston Martin", BaselineQualifying: 12.0, ChampionshipPoints: 70},
	{Name: "Lance Stroll", Abbreviation: "STR", Team: "Aston Martin", BaselineQualifying: 15.0, ChampionshipPoints: 3},
	{Name: "Pierre Gasly", Abbreviation: "GAS", Team: "Alpine", BaselineQualifying: 11.0, ChampionshipPoints: 42},
	{Name: "Jack Doohan", Abbreviation: "DOO", Team: "Alpine", BaselineQualifying: 16.0, ChampionshipPoints: 5},
	{Name: "Alex Albon", Abbreviation: "ALB", Team: "Williams", BaselineQualifying: 12.0, ChampionshipPoints: 22},
	{Name: "Carlos Sainz", Abbreviation: "SAI", Team: "Williams", BaselineQualifying: 5.5, ChampionshipPoints: 264},
	{Name: "Esteban Ocon", Abbreviation: "OCO", Team: "Haas F1 Team", BaselineQualifying: 13.0, ChampionshipPoints: 32},
	{Name: "Oliver Bearman", Abbreviation: "BEA", Team: "Haas F1 Team", BaselineQualifying: 14.0, ChampionshipPoints: 18},
	{Name: "Liam Lawson", Abbreviation: "LAW", Team: "Racing Bulls", BaselineQualifying: 13.0, ChampionshipPoints: 16},
	{Name: "Isack Hadjar", Abbreviation: "HAD", Team: "Racing Bulls", BaselineQualifying: 15.0, ChampionshipPoints: 2},
	{Name: "Nico Hulkenberg", Abbreviation: "HUL", Team: "Kick Sauber", BaselineQualifying: 10.0, ChampionshipPoints: 38},
	{Name: "Gabriel Bortoleto", Abbreviation: "BOR", Team: "Kick Sauber", BaselineQualifying: 18.0, ChampionshipPoints: 0},
}

// DefaultBaselineQualifying is the baseline position used for drivers
// without a baseline entry.
const DefaultBaselineQualifying = 12.0
