package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, c.Species)
	assert.NotEmpty(t, c.Baits)
	assert.NotEmpty(t, c.Rigs)
}

func TestLoadTemperatureOrdering(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	for _, sp := range c.Species {
		assert.LessOrEqual(t, sp.TempMin, sp.TempIdealLow, sp.Name)
		assert.LessOrEqual(t, sp.TempIdealLow, sp.TempIdealHigh, sp.Name)
		assert.LessOrEqual(t, sp.TempIdealHigh, sp.TempMax, sp.Name)
	}
}

func TestTagsAreExclusive(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	// A species cannot prefer both onshore churn and calm water; the
	// scoring modifier treats these as mutually exclusive branches.
	for _, sp := range c.Species {
		if sp.HasTag(TagOnshoreSurf) {
			assert.False(t, sp.HasTag(TagCalmWater), sp.Name)
		}
		if sp.HasTag(TagLowLight) {
			assert.False(t, sp.HasTag(TagDaytime), sp.Name)
		}
	}
}

func TestShortName(t *testing.T) {
	tests := []struct {
		full, short string
	}{
		{"Red drum (puppy drum)", "Red drum"},
		{"Sheepshead", "Sheepshead"},
		{"Whiting (sea mullet, kingfish)", "Whiting"},
	}
	for _, tt := range tests {
		sp := SpeciesProfile{Name: tt.full}
		assert.Equal(t, tt.short, sp.ShortName())
	}
}

func TestBaitTargetsResolve(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	short := make(map[string]bool, len(c.Species))
	for _, sp := range c.Species {
		short[sp.ShortName()] = true
	}
	for _, b := range c.Baits {
		for _, target := range b.Targets {
			assert.True(t, short[target], "bait %q targets unknown species %q", b.Name, target)
		}
	}
}

func TestRigTableHasCoreCategories(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	for _, key := range []string{"fishfinder", "hi-lo", "knocker", "pompano", "float", "popping-cork", "kingfish-stinger", "shark", "sabiki", "deep-drop", "trolling", "tandem-jig"} {
		_, ok := c.Rigs[key]
		assert.True(t, ok, "missing rig category %q", key)
	}
}
