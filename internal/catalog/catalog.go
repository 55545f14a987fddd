// Package catalog holds the static species, bait and rig reference tables.
// The tables are embedded YAML, parsed and validated once at startup, and
// treated as immutable afterwards: scoring and tackle mapping receive them
// by read-only reference and never mutate them.
package catalog

import (
	"embed"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// ConditionTag marks a species' preferred fishing conditions. Untagged
// species receive no conditions modifier during scoring.
type ConditionTag string

const (
	TagOnshoreSurf ConditionTag = "onshore-surf"
	TagCalmWater   ConditionTag = "calm-water"
	TagRoughSurf   ConditionTag = "rough-surf"
	TagLowLight    ConditionTag = "low-light"
	TagDaytime     ConditionTag = "daytime"
)

var knownTags = map[ConditionTag]bool{
	TagOnshoreSurf: true,
	TagCalmWater:   true,
	TagRoughSurf:   true,
	TagLowLight:    true,
	TagDaytime:     true,
}

// SpeciesProfile describes one species' temperature tolerance, seasonal
// activity windows, tackle and the explanation text shown to anglers.
type SpeciesProfile struct {
	Name string `yaml:"name" validate:"required"`

	// Absolute survivable range and the narrower ideal feeding range.
	TempMin       float64 `yaml:"temp_min"`
	TempMax       float64 `yaml:"temp_max"`
	TempIdealLow  float64 `yaml:"temp_ideal_low"`
	TempIdealHigh float64 `yaml:"temp_ideal_high"`

	PeakMonths []int `yaml:"peak_months" validate:"dive,min=1,max=12"`
	GoodMonths []int `yaml:"good_months" validate:"dive,min=1,max=12"`

	Bait     string `yaml:"bait" validate:"required"`
	Rig      string `yaml:"rig" validate:"required"`
	HookSize string `yaml:"hook_size" validate:"required"`
	Sinker   string `yaml:"sinker" validate:"required"`

	ExplanationCold string `yaml:"explanation_cold" validate:"required"`
	ExplanationWarm string `yaml:"explanation_warm" validate:"required"`

	// Seasonal explanation overrides keyed by meteorological season name
	// ("spring", "fall", ...). Species without an override for the current
	// season fall back to the cold/warm explanations.
	Seasonal map[string]string `yaml:"seasonal,omitempty"`

	Tags []ConditionTag `yaml:"tags,omitempty"`
}

// ShortName returns the name with any parenthetical stripped, e.g.
// "Red drum (puppy drum)" -> "Red drum". Bait target lists use short names.
func (s SpeciesProfile) ShortName() string {
	name, _, _ := strings.Cut(s.Name, "(")
	return strings.TrimSpace(name)
}

// HasTag reports whether the species carries the given condition tag.
func (s SpeciesProfile) HasTag(tag ConditionTag) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// InMonths reports whether month is in the given month set.
func InMonths(month int, months []int) bool {
	for _, m := range months {
		if m == month {
			return true
		}
	}
	return false
}

// BaitEntry describes a natural bait, the species it targets (by short
// name) and when it is practical to obtain.
type BaitEntry struct {
	Name string `yaml:"bait" validate:"required"`

	// AvailableMonths is the seasonal availability window; empty means
	// available year-round. Out-of-season baits are demoted, not dropped.
	AvailableMonths []int `yaml:"available_months,omitempty" validate:"dive,min=1,max=12"`

	Notes         string            `yaml:"notes" validate:"required"`
	SeasonalNotes map[string]string `yaml:"notes_seasonal,omitempty"`
	Targets       []string          `yaml:"targets" validate:"required,min=1"`
}

// RigCategory is a canonical tackle setup that species' free-text rig
// descriptions are normalized into.
type RigCategory struct {
	Name        string `yaml:"name" validate:"required"`
	Description string `yaml:"description" validate:"required"`
	Mainline    string `yaml:"mainline" validate:"required"`
	Leader      string `yaml:"leader" validate:"required"`
}

// Catalog is the full set of reference tables.
type Catalog struct {
	Species []SpeciesProfile
	Baits   []BaitEntry
	Rigs    map[string]RigCategory
}

var validate = validator.New()

// Load parses and validates the embedded reference tables.
func Load() (*Catalog, error) {
	c := &Catalog{}

	if err := loadYAML("data/species.yaml", &c.Species); err != nil {
		return nil, err
	}
	if err := loadYAML("data/baits.yaml", &c.Baits); err != nil {
		return nil, err
	}
	if err := loadYAML("data/rigs.yaml", &c.Rigs); err != nil {
		return nil, err
	}

	for i, sp := range c.Species {
		if err := validate.Struct(sp); err != nil {
			return nil, eris.Wrapf(err, "catalog: species %d (%s)", i, sp.Name)
		}
		if err := checkTemps(sp); err != nil {
			return nil, err
		}
		for _, tag := range sp.Tags {
			if !knownTags[tag] {
				return nil, eris.Errorf("catalog: species %s: unknown tag %q", sp.Name, tag)
			}
		}
	}
	for i, b := range c.Baits {
		if err := validate.Struct(b); err != nil {
			return nil, eris.Wrapf(err, "catalog: bait %d (%s)", i, b.Name)
		}
	}
	for key, rig := range c.Rigs {
		if err := validate.Struct(rig); err != nil {
			return nil, eris.Wrapf(err, "catalog: rig %s", key)
		}
	}

	return c, nil
}

func loadYAML(path string, out any) error {
	raw, err := dataFS.ReadFile(path)
	if err != nil {
		return eris.Wrapf(err, "catalog: read %s", path)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return eris.Wrapf(err, "catalog: parse %s", path)
	}
	return nil
}

// checkTemps enforces temp_min <= temp_ideal_low <= temp_ideal_high <= temp_max.
func checkTemps(sp SpeciesProfile) error {
	if sp.TempMin > sp.TempIdealLow || sp.TempIdealLow > sp.TempIdealHigh || sp.TempIdealHigh > sp.TempMax {
		return eris.Errorf("catalog: species %s: temperature bounds out of order (%.0f/%.0f/%.0f/%.0f)",
			sp.Name, sp.TempMin, sp.TempIdealLow, sp.TempIdealHigh, sp.TempMax)
	}
	return nil
}
