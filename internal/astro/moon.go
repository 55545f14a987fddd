package astro

import (
	"math"
	"time"
)

// Reference new moon and mean synodic month length.
var moonEpoch = time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)

const synodicDays = 29.530588

// MoonPhase names the eight principal phases.
type MoonPhase string

const (
	NewMoon        MoonPhase = "New Moon"
	WaxingCrescent MoonPhase = "Waxing Crescent"
	FirstQuarter   MoonPhase = "First Quarter"
	WaxingGibbous  MoonPhase = "Waxing Gibbous"
	FullMoon       MoonPhase = "Full Moon"
	WaningGibbous  MoonPhase = "Waning Gibbous"
	LastQuarter    MoonPhase = "Last Quarter"
	WaningCrescent MoonPhase = "Waning Crescent"
)

var phaseNames = [8]MoonPhase{
	NewMoon, WaxingCrescent, FirstQuarter, WaxingGibbous,
	FullMoon, WaningGibbous, LastQuarter, WaningCrescent,
}

// SolunarRating grades fishing quality by proximity to the new or full
// moon, when tidal movement is strongest.
type SolunarRating string

const (
	SolunarExcellent SolunarRating = "Excellent"
	SolunarGood      SolunarRating = "Good"
	SolunarFair      SolunarRating = "Fair"
	SolunarPoor      SolunarRating = "Poor"
)

// Moon describes the lunar state at one instant.
type Moon struct {
	Phase        MoonPhase
	Illumination float64 // 0 (new) .. 1 (full)
	Solunar      SolunarRating
}

// MoonAt computes the lunar phase, illuminated fraction and solunar
// rating for the given time.
func MoonAt(t time.Time) Moon {
	days := t.Sub(moonEpoch).Hours() / 24
	frac := days/synodicDays - math.Floor(days/synodicDays)
	angle := frac * 360

	idx := int((angle+22.5)/45) % 8

	return Moon{
		Phase:        phaseNames[idx],
		Illumination: (1 - math.Cos(angle*math.Pi/180)) / 2,
		Solunar:      solunar(angle),
	}
}

// solunar rates by angular distance to the nearest syzygy (0° or 180°).
func solunar(angle float64) SolunarRating {
	toNew := math.Min(angle, 360-angle)
	toFull := math.Abs(angle - 180)
	dist := math.Min(toNew, toFull)

	switch {
	case dist < 30:
		return SolunarExcellent
	case dist < 60:
		return SolunarGood
	case dist < 90:
		return SolunarFair
	default:
		return SolunarPoor
	}
}
