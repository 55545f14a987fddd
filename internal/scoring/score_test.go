package scoring

import (
	"testing"
	"time"

	"github.com/saltline/surfcast/internal/catalog"
	"github.com/saltline/surfcast/internal/conditions"
	"github.com/saltline/surfcast/internal/locations"
	"github.com/stretchr/testify/assert"
)

var testCoast = locations.Coastline{
	Onshore:  []string{"S", "SE", "E", "SSE", "ESE", "SSW", "ENE"},
	Offshore: []string{"N", "NW", "W", "NNW", "WNW", "NNE", "NE"},
}

func baseSpecies() catalog.SpeciesProfile {
	return catalog.SpeciesProfile{
		Name:          "Testfish",
		TempMin:       50,
		TempMax:       90,
		TempIdealLow:  60,
		TempIdealHigh: 80,
		PeakMonths:    []int{6, 7},
		GoodMonths:    []int{5, 8},
	}
}

func TestScoreSurvivabilityGate(t *testing.T) {
	sp := baseSpecies()

	assert.Equal(t, ExclusionSentinel, Score(sp, Conditions{Month: time.June, WaterTempF: 49.9, Hour: 12}))
	assert.Equal(t, ExclusionSentinel, Score(sp, Conditions{Month: time.June, WaterTempF: 90.1, Hour: 12}))

	// Boundary temps survive.
	assert.NotEqual(t, ExclusionSentinel, Score(sp, Conditions{Month: time.June, WaterTempF: 50, Hour: 12}))
	assert.NotEqual(t, ExclusionSentinel, Score(sp, Conditions{Month: time.June, WaterTempF: 90, Hour: 12}))
}

func TestScoreIdealTempPeakMonth(t *testing.T) {
	sp := baseSpecies()

	// Full temp fit plus peak month bonus, no conditions data.
	got := Score(sp, Conditions{Month: time.June, WaterTempF: 70, Hour: 12})
	assert.Equal(t, 80.0, got)

	// Good month instead.
	got = Score(sp, Conditions{Month: time.May, WaterTempF: 70, Hour: 12})
	assert.Equal(t, 65.0, got)

	// Off month.
	got = Score(sp, Conditions{Month: time.January, WaterTempF: 70, Hour: 12})
	assert.Equal(t, 50.0, got)
}

func TestTempFitLinearDecay(t *testing.T) {
	sp := baseSpecies()

	// Halfway between temp_min 50 and ideal_low 60.
	assert.Equal(t, 25.0, tempFit(sp, 55))
	// At the survivable bound the fit reaches zero.
	assert.Equal(t, 0.0, tempFit(sp, 50))
	// Above ideal: halfway between ideal_high 80 and temp_max 90.
	assert.Equal(t, 25.0, tempFit(sp, 85))
}

func TestTempFitZeroSpan(t *testing.T) {
	sp := baseSpecies()
	sp.TempMin = 60 // ideal_low == temp_min

	assert.Equal(t, 25.0, tempFit(sp, 59.9))
}

func TestModifierWindDirection(t *testing.T) {
	surf := baseSpecies()
	surf.Tags = []catalog.ConditionTag{catalog.TagOnshoreSurf}

	calm := baseSpecies()
	calm.Tags = []catalog.ConditionTag{catalog.TagCalmWater}

	onshore := Conditions{Month: time.June, WaterTempF: 70, WindDir: "SE", Hour: 12, Coastline: testCoast}
	offshore := Conditions{Month: time.June, WaterTempF: 70, WindDir: "NW", Hour: 12, Coastline: testCoast}
	neutral := Conditions{Month: time.June, WaterTempF: 70, WindDir: "SW", Hour: 12, Coastline: testCoast}

	assert.Equal(t, 5.0, conditionsModifier(surf, onshore))
	assert.Equal(t, -3.0, conditionsModifier(surf, offshore))
	assert.Equal(t, 0.0, conditionsModifier(surf, neutral))

	assert.Equal(t, -3.0, conditionsModifier(calm, onshore))
	assert.Equal(t, 5.0, conditionsModifier(calm, offshore))
}

func TestModifierWindSpeedBands(t *testing.T) {
	rough := baseSpecies()
	rough.Tags = []catalog.ConditionTag{catalog.TagRoughSurf}

	calm := baseSpecies()
	calm.Tags = []catalog.ConditionTag{catalog.TagCalmWater}

	moderate := Conditions{Wind: &conditions.Range{Low: 10, High: 18}, Hour: 12}
	light := Conditions{Wind: &conditions.Range{Low: 2, High: 4}, Hour: 12}
	heavy := Conditions{Wind: &conditions.Range{Low: 15, High: 25}, Hour: 12}

	assert.Equal(t, 3.0, conditionsModifier(rough, moderate))
	assert.Equal(t, -2.0, conditionsModifier(rough, light))
	assert.Equal(t, 0.0, conditionsModifier(rough, heavy))

	assert.Equal(t, 3.0, conditionsModifier(calm, light))
	assert.Equal(t, -2.0, conditionsModifier(calm, heavy))
}

func TestModifierWaveBands(t *testing.T) {
	rough := baseSpecies()
	rough.Tags = []catalog.ConditionTag{catalog.TagRoughSurf}

	calm := baseSpecies()
	calm.Tags = []catalog.ConditionTag{catalog.TagCalmWater}

	moderate := Conditions{Waves: &conditions.Range{Low: 2, High: 4}, Hour: 12}
	flat := Conditions{Waves: &conditions.Range{Low: 0.5, High: 0.5}, Hour: 12}
	big := Conditions{Waves: &conditions.Range{Low: 4, High: 6}, Hour: 12}

	assert.Equal(t, 4.0, conditionsModifier(rough, moderate))
	assert.Equal(t, -1.0, conditionsModifier(rough, flat))

	assert.Equal(t, 4.0, conditionsModifier(calm, flat))
	assert.Equal(t, -2.0, conditionsModifier(calm, big))
}

func TestModifierTimeOfDay(t *testing.T) {
	dawn := baseSpecies()
	dawn.Tags = []catalog.ConditionTag{catalog.TagLowLight}

	noon := baseSpecies()
	noon.Tags = []catalog.ConditionTag{catalog.TagDaytime}

	early := Conditions{Hour: 6}
	midday := Conditions{Hour: 12}
	evening := Conditions{Hour: 17}

	assert.Equal(t, 3.0, conditionsModifier(dawn, early))
	assert.Equal(t, -1.0, conditionsModifier(dawn, midday))
	assert.Equal(t, 0.0, conditionsModifier(dawn, evening))

	assert.Equal(t, 3.0, conditionsModifier(noon, midday))
	assert.Equal(t, -1.0, conditionsModifier(noon, early))
	assert.Equal(t, 0.0, conditionsModifier(noon, evening))
}

func TestModifierUntaggedSpecies(t *testing.T) {
	sp := baseSpecies()

	c := Conditions{
		WindDir:   "SE",
		Wind:      &conditions.Range{Low: 10, High: 18},
		Waves:     &conditions.Range{Low: 2, High: 4},
		Hour:      6,
		Coastline: testCoast,
	}
	assert.Equal(t, 0.0, conditionsModifier(sp, c))
}

func TestExplanationSelection(t *testing.T) {
	sp := baseSpecies()
	sp.ExplanationCold = "cold text"
	sp.ExplanationWarm = "warm text"
	sp.Seasonal = map[string]string{"fall": "fall run text"}

	assert.Equal(t, "fall run text", Explanation(sp, time.October, 70))
	assert.Equal(t, "cold text", Explanation(sp, time.January, 64.9))
	assert.Equal(t, "warm text", Explanation(sp, time.July, 65))
}

func TestSeasonOf(t *testing.T) {
	assert.Equal(t, Winter, SeasonOf(time.December))
	assert.Equal(t, Winter, SeasonOf(time.February))
	assert.Equal(t, Spring, SeasonOf(time.March))
	assert.Equal(t, Summer, SeasonOf(time.August))
	assert.Equal(t, Fall, SeasonOf(time.November))
}
