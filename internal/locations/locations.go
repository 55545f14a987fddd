// Package locations holds the static table of supported forecast
// locations with their upstream station identifiers.
package locations

import (
	"embed"
	"sort"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

//go:embed data/locations.yaml
var dataFS embed.FS

// DefaultID is the location served when none is configured.
const DefaultID = "wrightsville-beach-nc"

// Coastline groups compass directions by their relationship to the
// beach. Winds from directions in neither set are treated as neutral.
type Coastline struct {
	Onshore  []string `yaml:"onshore"`
	Offshore []string `yaml:"offshore"`
}

func (c Coastline) IsOnshore(dir string) bool  { return contains(c.Onshore, dir) }
func (c Coastline) IsOffshore(dir string) bool { return contains(c.Offshore, dir) }

func contains(dirs []string, dir string) bool {
	for _, d := range dirs {
		if d == dir {
			return true
		}
	}
	return false
}

// Location is one supported forecast spot and the upstream stations
// that observe it.
type Location struct {
	ID       string  `yaml:"id" json:"id"`
	Name     string  `yaml:"name" json:"name"`
	State    string  `yaml:"state" json:"state"`
	Lat      float64 `yaml:"lat" json:"lat"`
	Lng      float64 `yaml:"lng" json:"lng"`
	Timezone string  `yaml:"timezone" json:"timezone"`

	CoopsStation string   `yaml:"coops_station" json:"coops_station"`
	MarineZone   string   `yaml:"marine_zone" json:"marine_zone"`
	NDBCStations []string `yaml:"ndbc_stations" json:"ndbc_stations"`

	Coastline Coastline `yaml:"coastline" json:"-"`
}

var table = mustLoad()

func mustLoad() map[string]Location {
	raw, err := dataFS.ReadFile("data/locations.yaml")
	if err != nil {
		panic(err)
	}
	var list []Location
	if err := yaml.Unmarshal(raw, &list); err != nil {
		panic(err)
	}
	m := make(map[string]Location, len(list))
	for _, loc := range list {
		m[loc.ID] = loc
	}
	return m
}

// ByID returns the location with the given id.
func ByID(id string) (Location, error) {
	loc, ok := table[id]
	if !ok {
		return Location{}, eris.Errorf("locations: unknown location %q", id)
	}
	return loc, nil
}

// All returns every supported location sorted by id.
func All() []Location {
	out := make([]Location, 0, len(table))
	for _, loc := range table {
		out = append(out, loc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
