package prediction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testContext() *FeatureContext {
	return &FeatureContext{
		LapTime:            87.0,
		TyreLife:           10,
		LapNumber:          50,
		AirTemp:            22.5,
		TrackTemp:          31.0,
		Humidity:           55,
		QualifyingPosition: 3,
		DriverName:         "Lando Norris",
		TeamNormalized:     "McLaren",
	}
}

func TestResolveColumn(t *testing.T) {
	ctx := testContext()

	tests := []struct {
		name     string
		column   string
		expected float64
		kind     ColumnKind
	}{
		{"lap time scalar", "LapTime", 87.0, ColumnScalar},
		{"qualifying scalar", "QualifyingPosition", 3, ColumnScalar},
		{"humidity scalar", "Humidity", 55, ColumnScalar},
		{"matching driver indicator", "Driver_Lando_Norris", 1.0, ColumnDriverIndicator},
		{"other driver indicator", "Driver_Max_Verstappen", 0.0, ColumnZero},
		{"matching team indicator", "Team_McLaren", 1.0, ColumnTeamIndicator},
		{"other team indicator", "Team_Ferrari", 0.0, ColumnZero},
		{"soft compound default", "Compound_SOFT", 1.0, ColumnDefaultIndicator},
		{"green track default", "TrackStatus_1", 1.0, ColumnDefaultIndicator},
		{"unknown column", "Sector2Time", 0.0, ColumnZero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, kind := ResolveColumn(tt.column, ctx)
			assert.Equal(t, tt.expected, value)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestBuildVector_AlignsWithSchemaOrder(t *testing.T) {
	ctx := testContext()
	schema := []string{
		"QualifyingPosition",
		"Driver_Lando_Norris",
		"Unknown_Column",
		"AirTemp",
		"Team_McLaren",
	}

	vector := BuildVector(schema, ctx)
	assert.Equal(t, []float64{3, 1, 0, 22.5, 1}, vector)
}

func TestDriverIndicatorColumn(t *testing.T) {
	assert.Equal(t, "Driver_Andrea_Kimi_Antonelli", DriverIndicatorColumn("Andrea Kimi Antonelli"))
}
