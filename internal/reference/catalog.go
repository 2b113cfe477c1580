package reference

import (
	"fmt"
)

// Catalog bundles every static reference table behind one immutable
// object so services take their data by injection rather than reaching
// for package globals.
type Catalog struct {
	tracksByName map[string]Track
	tracksByKey  map[string]Track
	drivers      []Driver
	driversByName map[string]Driver
	maxPoints    int
}

// NewCatalog builds the catalog from the static tables. It panics if the
// track name<->key mapping is not bijective, since every downstream
// lookup depends on that invariant.
func NewCatalog() *Catalog {
	c := &Catalog{
		tracksByName:  make(map[string]Track, len(tracks)),
		tracksByKey:   make(map[string]Track, len(tracks)),
		drivers:       drivers,
		driversByName: make(map[string]Driver, len(drivers)),
	}

	for _, t := range tracks {
		if _, dup := c.tracksByName[t.Name]; dup {
			panic(fmt.Sprintf("reference: duplicate track name %q", t.Name))
		}
		if _, dup := c.tracksByKey[t.Key]; dup {
			panic(fmt.Sprintf("reference: duplicate track key %q", t.Key))
		}
		c.tracksByName[t.Name] = t
		c.tracksByKey[t.Key] = t
	}

	for _, d := range c.drivers {
		c.driversByName[d.Name] = d
		if d.ChampionshipPoints > c.maxPoints {
			c.maxPoints = d.ChampionshipPoints
		}
	}

	return c
}

// TrackByName returns the track for an official race name.
func (c *Catalog) TrackByName(name string) (Track, bool) {
	t, ok := c.tracksByName[name]
	return t, ok
}

// TrackByKey returns the track for an internal key.
func (c *Catalog) TrackByKey(key string) (Track, bool) {
	t, ok := c.tracksByKey[key]
	return t, ok
}

// Tracks returns the calendar in round order.
func (c *Catalog) Tracks() []Track {
	out := make([]Track, len(tracks))
	copy(out, tracks)
	return out
}

// Drivers returns the roster in canonical grid order.
func (c *Catalog) Drivers() []Driver {
	out := make([]Driver, len(c.drivers))
	copy(out, c.drivers)
	return out
}

// DriverByName returns the roster entry for a driver.
func (c *Catalog) DriverByName(name string) (Driver, bool) {
	d, ok := c.driversByName[name]
	return d, ok
}

// BaselineQualifying returns the baseline qualifying position for a
// driver, falling back to the grid default.
func (c *Catalog) BaselineQualifying(driver string) float64 {
	if d, ok := c.driversByName[driver]; ok {
		return d.BaselineQualifying
	}
	return DefaultBaselineQualifying
}

// BaselineQualifyingTable returns a fresh driver->position copy of the
// baseline table. Callers own the returned map.
func (c *Catalog) BaselineQualifyingTable() map[string]int {
	out := make(map[string]int, len(c.drivers))
	for _, d := range c.drivers {
		out[d.Name] = int(d.BaselineQualifying)
	}
	return out
}

// ChampionshipPoints returns the season points for a driver (zero for
// unknown drivers).
func (c *Catalog) ChampionshipPoints(driver string) int {
	return c.driversByName[driver].ChampionshipPoints
}

// MaxChampionshipPoints returns the points of the championship leader.
func (c *Catalog) MaxChampionshipPoints() int {
	return c.maxPoints
}

// CityForTrack returns the weather lookup city for a track key, with a
// fixed default for unmapped keys.
func (c *Catalog) CityForTrack(trackKey string) string {
	if t, ok := c.tracksByKey[trackKey]; ok && t.City != "" {
		return t.City
	}
	return DefaultWeatherCity
}

// RaceResult returns the recorded podium for a track, if the race has run.
func (c *Catalog) RaceResult(trackKey string) ([]string, bool) {
	r, ok := raceResults[trackKey]
	return r, ok
}

// ActualQualifying returns the recorded qualifying positions for a track.
func (c *Catalog) ActualQualifying(trackKey string) (map[string]int, bool) {
	q, ok := qualifyingResults[trackKey]
	return q, ok
}

// SpecialtyAverage returns a driver's recorded average finish for a
// circuit type.
func (c *Catalog) SpecialtyAverage(circuitType, driver string) (float64, bool) {
	table, ok := trackSpecialties[circuitType]
	if !ok {
		return 0, false
	}
	avg, ok := table[driver]
	return avg, ok
}
