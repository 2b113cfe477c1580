package reference

// Track is an immutable reference entity for one circuit on the calendar.
type Track struct {
	Name        string  `json:"name"`
	Key         string  `json:"key"`
	City        string  `json:"city"`
	Round       int     `json:"round"`
	AvgLapTime  float64 `json:"avg_lap_time"`
	CircuitType string  `json:"circuit_type"`
	Corners     int     `json:"corners"`
	LengthKM    float64 `json:"length_km"`
}

// tracks holds the full 2025 calendar in round order. The name<->key
// mapping must stay bijective; Catalog verifies this at load.
var tracks = []Track{
	{Name: "Australian Grand Prix", Key: "melbourne", City: "Melbourne", Round: 1, AvgLapTime: 87.0, CircuitType: "street", Corners: 14, LengthKM: 5.278},
	{Name: "Chinese Grand Prix", Key: "shanghai", City: "Shanghai", Round: 2, AvgLapTime: 100.0, CircuitType: "mixed", Corners: 16, LengthKM: 5.451},
	{Name: "Japanese Grand Prix", Key: "suzuka", City: "Suzuka", Round: 3, AvgLapTime: 91.5, CircuitType: "technical", Corners: 18, LengthKM: 5.807},
	{Name: "Bahrain Grand Prix", Key: "sakhir", City: "Manama", Round: 4, AvgLapTime: 95.0, CircuitType: "mixed", Corners: 15, LengthKM: 5.412},
	{Name: "Saudi Arabian Grand Prix", Key: "jeddah", City: "Jeddah", Round: 5, AvgLapTime: 90.0, CircuitType: "street", Corners: 27, LengthKM: 6.174},
	{Name: "Miami Grand Prix", Key: "miami", City: "Miami", Round: 6, AvgLapTime: 91.0, CircuitType: "street", Corners: 19, LengthKM: 5.412},
	{Name: "Emilia Romagna Grand Prix (Imola)", Key: "imola", City: "Imola", Round: 7, AvgLapTime: 85.5, CircuitType: "technical", Corners: 19, LengthKM: 4.909},
	{Name: "Monaco Grand Prix", Key: "monte_carlo", City: "Monte Carlo", Round: 8, AvgLapTime: 72.0, CircuitType: "street", Corners: 19, LengthKM: 3.337},
	{Name: "Spanish Grand Prix", Key: "barcelona", City: "Barcelona", Round: 9, AvgLapTime: 87.0, CircuitType: "technical", Corners: 16, LengthKM: 4.675},
	{Name: "Canadian Grand Prix", Key: "montreal", City: "Montreal", Round: 10, AvgLapTime: 78.0, CircuitType: "stop_go", Corners: 14, LengthKM: 4.361},
	{Name: "Austrian Grand Prix", Key: "spielberg", City: "Spielberg", Round: 11, AvgLapTime: 67.5, CircuitType: "power", Corners: 10, LengthKM: 4.318},
	{Name: "British Grand Prix", Key: "silverstone", City: "Silverstone", Round: 12, AvgLapTime: 89.0, CircuitType: "high_speed", Corners: 18, LengthKM: 5.891},
	{Name: "Belgian Grand Prix", Key: "spa-francorchamps", City: "Spa", Round: 13, AvgLapTime: 105.0, CircuitType: "power", Corners: 19, LengthKM: 7.004},
	{Name: "Hungarian Grand Prix", Key: "budapest", City: "Budapest", Round: 14, AvgLapTime: 79.0, CircuitType: "technical", Corners: 14, LengthKM: 4.381},
	{Name: "Dutch Grand Prix", Key: "zandvoort", City: "Zandvoort", Round: 15, AvgLapTime: 77.0, CircuitType: "technical", Corners: 14, LengthKM: 4.259},
	{Name: "Italian Grand Prix (Monza)", Key: "monza", City: "Monza", Round: 16, AvgLapTime: 81.0, CircuitType: "power", Corners: 11, LengthKM: 5.793},
	{Name: "Azerbaijan Grand Prix", Key: "baku", City: "Baku", Round: 17, AvgLapTime: 100.0, CircuitType: "street", Corners: 20, LengthKM: 6.003},
	{Name: "Singapore Grand Prix", Key: "singapore", City: "Singapore", Round: 18, AvgLapTime: 105.0, CircuitType: "street", Corners: 19, LengthKM: 4.940},
	{Name: "United States Grand Prix (Austin)", Key: "austin", City: "Austin", Round: 19, AvgLapTime: 95.5, CircuitType: "mixed", Corners: 20, LengthKM: 5.513},
	{Name: "Mexico City Grand Prix", Key: "mexico_city", City: "Mexico City", Round: 20, AvgLapTime: 78.5, CircuitType: "mixed", Corners: 17, LengthKM: 4.304},
	{Name: "São Paulo Grand Prix", Key: "sao_paulo", City: "Sao Paulo", Round: 21, AvgLapTime: 72.0, CircuitType: "mixed", Corners: 15, LengthKM: 4.309},
	{Name: "Las Vegas Grand Prix", Key: "las_vegas", City: "Las Vegas", Round: 22, AvgLapTime: 92.0, CircuitType: "street", Corners: 17, LengthKM: 6.201},
	{Name: "Qatar Grand Prix", Key: "lusail", City: "Lusail", Round: 23, AvgLapTime: 95.0, CircuitType: "mixed", Corners: 16, LengthKM: 5.419},
	{Name: "Abu Dhabi Grand Prix", Key: "yas_marina", City: "Abu Dhabi", Round: 24, AvgLapTime: 97.0, CircuitType: "mixed", Corners: 16, LengthKM: 5.281},
}

// DefaultWeatherCity is used when a track key has no city entry.
const DefaultWeatherCity = "London"

// DefaultAvgLapTime is used when a track key has no lap-time baseline.
const DefaultAvgLapTime = 90.0
