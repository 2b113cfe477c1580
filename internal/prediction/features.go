package prediction

import "strings"

// FeatureContext supplies the typed inputs a feature vector is built
// from. The schema from training is authoritative; this context only
// answers the columns the schema asks for.
type FeatureContext struct {
	LapTime            float64
	TyreLife           float64
	LapNumber          float64
	AirTemp            float64
	TrackTemp          float64
	Humidity           float64
	QualifyingPosition float64
	DriverName         string
	TeamNormalized     string
}

// ColumnKind identifies which resolution path produced a column's value,
// so every schema column's path is enumerable and testable.
type ColumnKind string

const (
	ColumnScalar           ColumnKind = "scalar"
	ColumnDriverIndicator  ColumnKind = "driver_indicator"
	ColumnTeamIndicator    ColumnKind = "team_indicator"
	ColumnDefaultIndicator ColumnKind = "default_indicator"
	ColumnZero             ColumnKind = "zero"
)

// scalarFields maps schema column names to their context accessors.
var scalarFields = map[string]func(*FeatureContext) float64{
	"LapTime":            func(c *FeatureContext) float64 { return c.LapTime },
	"TyreLife":           func(c *FeatureContext) float64 { return c.TyreLife },
	"LapNumber":          func(c *FeatureContext) float64 { return c.LapNumber },
	"AirTemp":            func(c *FeatureContext) float64 { return c.AirTemp },
	"TrackTemp":          func(c *FeatureContext) float64 { return c.TrackTemp },
	"Humidity":           func(c *FeatureContext) float64 { return c.Humidity },
	"QualifyingPosition": func(c *FeatureContext) float64 { return c.QualifyingPosition },
}

// defaultIndicators are one-hot columns that are always active: the
// training pipeline ran on soft-compound, green-track laps.
var defaultIndicators = map[string]bool{
	"Compound_Soft": true,
	"Compound_SOFT": true,
	"TrackStatus_1": true,
}

// DriverIndicatorColumn returns the one-hot column name for a driver,
// mirroring the encoding used at training time.
func DriverIndicatorColumn(driverName string) string {
	return "Driver_" + strings.ReplaceAll(driverName, " ", "_")
}

// TeamIndicatorColumn returns the one-hot column name for a normalized
// team key.
func TeamIndicatorColumn(teamNormalized string) string {
	return "Team_" + teamNormalized
}

// ResolveColumn resolves one schema column against the context and
// reports which path produced the value.
func ResolveColumn(name string, ctx *FeatureContext) (float64, ColumnKind) {
	if accessor, ok := scalarFields[name]; ok {
		return accessor(ctx), ColumnScalar
	}
	if name == DriverIndicatorColumn(ctx.DriverName) {
		return 1.0, ColumnDriverIndicator
	}
	if name == TeamIndicatorColumn(ctx.TeamNormalized) {
		return 1.0, ColumnTeamIndicator
	}
	if defaultIndicators[name] {
		return 1.0, ColumnDefaultIndicator
	}
	return 0.0, ColumnZero
}

// BuildVector converts the context into a float vector aligned 1:1 with
// the schema's column order.
func BuildVector(schema []string, ctx *FeatureContext) []float64 {
	vector := make([]float64, len(schema))
	for i, name := range schema {
		vector[i], _ = ResolveColumn(name, ctx)
	}
	return vector
}
