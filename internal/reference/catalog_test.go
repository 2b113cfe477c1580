package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog_TrackMappingBijective(t *testing.T) {
	catalog := NewCatalog()

	for _, track := range catalog.Tracks() {
		byName, ok := catalog.TrackByName(track.Name)
		require.True(t, ok, "track %q missing by name", track.Name)
		assert.Equal(t, track.Key, byName.Key)

		byKey, ok := catalog.TrackByKey(track.Key)
		require.True(t, ok, "track %q missing by key", track.Key)
		assert.Equal(t, track.Name, byKey.Name)
	}
}

func TestCatalog_TracksInRoundOrder(t *testing.T) {
	catalog := NewCatalog()
	tracks := catalog.Tracks()
	require.Len(t, tracks, 24)

	for i, track := range tracks {
		assert.Equal(t, i+1, track.Round)
	}
}

func TestCatalog_BaselineQualifying(t *testing.T) {
	catalog := NewCatalog()

	assert.Equal(t, 2.0, catalog.BaselineQualifying("Lando Norris"))
	assert.Equal(t, DefaultBaselineQualifying, catalog.BaselineQualifying("Nobody Atall"))
}

func TestCatalog_BaselineQualifyingTableIsACopy(t *testing.T) {
	catalog := NewCatalog()

	table := catalog.BaselineQualifyingTable()
	require.Len(t, table, 20)
	table["Lando Norris"] = 99

	fresh := catalog.BaselineQualifyingTable()
	assert.Equal(t, 2, fresh["Lando Norris"])
}

func TestCatalog_MaxChampionshipPoints(t *testing.T) {
	catalog := NewCatalog()

	max := catalog.MaxChampionshipPoints()
	assert.Positive(t, max)
	for _, d := range catalog.Drivers() {
		assert.LessOrEqual(t, d.ChampionshipPoints, max)
	}
}

func TestCatalog_CityForTrack(t *testing.T) {
	catalog := NewCatalog()

	assert.Equal(t, "Jeddah", catalog.CityForTrack("jeddah"))
	assert.Equal(t, DefaultWeatherCity, catalog.CityForTrack("atlantis"))
}

func TestNormalizeTeamName(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"Red Bull Racing", "Red_Bull"},
		{"Red Bull", "Red_Bull"},
		{"Scuderia Ferrari", "Ferrari"},
		{"Kick Sauber", "Sauber"},
		{"Visa Cash App RB", "Racing_Bulls"},
		{"Haas F1 Team", "Haas"},
		// Unknown variants survive through the fallback transform
		{"Foo Racing", "Foo_Racing"},
		{"Andretti", "Andretti"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeTeamName(tt.raw), "variant %q", tt.raw)
	}
}

func TestNormalizeTeamName_TotalOverRoster(t *testing.T) {
	catalog := NewCatalog()

	// Every roster team must resolve through the variant table, not the
	// fallback transform
	for _, d := range catalog.Drivers() {
		key, known := teamNameMapping[d.Team]
		require.True(t, known, "roster team %q not in variant table", d.Team)
		_, ranked := teamPowerRanking[key]
		assert.True(t, ranked, "canonical key %q has no power ranking", key)
	}
}

func TestTeamPower_UnknownDefault(t *testing.T) {
	assert.Equal(t, DefaultTeamPower, TeamPower("Foo_Racing"))
}

func TestPointsTables(t *testing.T) {
	assert.Equal(t, 25, F1Points(1))
	assert.Equal(t, 1, F1Points(10))
	assert.Equal(t, 0, F1Points(11))
	assert.Equal(t, 0, F1Points(0))

	assert.Equal(t, 8, SprintPoints(1))
	assert.Equal(t, 0, SprintPoints(9))
}

func TestCatalog_SpecialtyAverage(t *testing.T) {
	catalog := NewCatalog()

	avg, ok := catalog.SpecialtyAverage("street", "Charles Leclerc")
	require.True(t, ok)
	assert.Equal(t, 2.0, avg)

	_, ok = catalog.SpecialtyAverage("street", "Lance Stroll")
	assert.False(t, ok)

	_, ok = catalog.SpecialtyAverage("oval", "Charles Leclerc")
	assert.False(t, ok)
}
