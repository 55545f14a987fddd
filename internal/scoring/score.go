// Package scoring ranks species by bite likelihood given the current
// water temperature, month, conditions and time of day.
package scoring

import (
	"time"

	"github.com/saltline/surfcast/internal/catalog"
	"github.com/saltline/surfcast/internal/conditions"
	"github.com/saltline/surfcast/internal/locations"
)

// Score components: temperature fit contributes up to 50, seasonal fit
// up to 30, the conditions modifier roughly -5 to +15.
const (
	// ExclusionSentinel marks water outside the survivable range.
	ExclusionSentinel = -100.0

	// ScoreThreshold filters species that technically survive but
	// aren't really biting.
	ScoreThreshold = 30.0

	// Activity label cutoffs.
	HotCutoff    = 65.0
	ActiveCutoff = 50.0

	// ColdWaterSplitF picks the cold vs warm explanation.
	ColdWaterSplitF = 65.0
)

// Conditions carries everything the scorer needs about right now.
type Conditions struct {
	Month      time.Month
	WaterTempF float64

	// Optional live conditions; nil/empty fields skip their modifier.
	WindDir string
	Wind    *conditions.Range
	Waves   *conditions.Range

	// Hour of day in the location's timezone, 0-23.
	Hour int

	Coastline locations.Coastline
}

// Score computes the bite-likelihood score for one species. Water
// outside the survivable range returns ExclusionSentinel.
func Score(sp catalog.SpeciesProfile, c Conditions) float64 {
	if c.WaterTempF < sp.TempMin || c.WaterTempF > sp.TempMax {
		return ExclusionSentinel
	}

	score := tempFit(sp, c.WaterTempF)

	if catalog.InMonths(int(c.Month), sp.PeakMonths) {
		score += 30
	} else if catalog.InMonths(int(c.Month), sp.GoodMonths) {
		score += 15
	}

	score += conditionsModifier(sp, c)
	return score
}

// tempFit yields 0-50: full marks inside the ideal range, linear decay
// toward the survivable bound outside it.
func tempFit(sp catalog.SpeciesProfile, temp float64) float64 {
	if sp.TempIdealLow <= temp && temp <= sp.TempIdealHigh {
		return 50
	}

	var distance, span float64
	if temp < sp.TempIdealLow {
		distance = sp.TempIdealLow - temp
		span = sp.TempIdealLow - sp.TempMin
	} else {
		distance = temp - sp.TempIdealHigh
		span = sp.TempMax - sp.TempIdealHigh
	}
	if span <= 0 {
		return 25
	}
	fit := 50 * (1 - distance/span)
	if fit < 0 {
		return 0
	}
	return fit
}

// Explanation picks the display text for a species: a season-specific
// override when one exists, otherwise the cold/warm split.
func Explanation(sp catalog.SpeciesProfile, month time.Month, waterTempF float64) string {
	if text, ok := sp.Seasonal[string(SeasonOf(month))]; ok {
		return text
	}
	if waterTempF < ColdWaterSplitF {
		return sp.ExplanationCold
	}
	return sp.ExplanationWarm
}
