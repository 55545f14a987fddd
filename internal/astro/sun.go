// Package astro computes sunrise/sunset and moon phase from pure math,
// with no upstream calls.
package astro

import (
	"fmt"
	"math"
	"time"
)

// SunTimes computes approximate sunrise and sunset for the given
// coordinates on the day of t, returned in the supplied timezone.
//
// Uses the simplified NOAA algorithm based on day-of-year, latitude and
// an approximate equation of time. Accuracy is within a few minutes.
func SunTimes(t time.Time, lat, lng float64, tz *time.Location) (sunrise, sunset time.Time) {
	n := float64(t.YearDay())

	// Fractional year in radians.
	gamma := 2 * math.Pi / 365 * (n - 1)

	// Equation of time (minutes).
	eqtime := 229.18 * (0.000075 +
		0.001868*math.Cos(gamma) -
		0.032077*math.Sin(gamma) -
		0.014615*math.Cos(2*gamma) -
		0.040849*math.Sin(2*gamma))

	// Solar declination (radians).
	decl := 0.006918 -
		0.399912*math.Cos(gamma) +
		0.070257*math.Sin(gamma) -
		0.006758*math.Cos(2*gamma) +
		0.000907*math.Sin(2*gamma) -
		0.002697*math.Cos(3*gamma) +
		0.00148*math.Sin(3*gamma)

	latRad := lat * math.Pi / 180

	// Hour angle at sunrise/sunset (degrees), clamped for polar edge cases.
	cosHA := math.Cos(90.833*math.Pi/180)/(math.Cos(latRad)*math.Cos(decl)) -
		math.Tan(latRad)*math.Tan(decl)
	cosHA = math.Max(-1, math.Min(1, cosHA))
	ha := math.Acos(cosHA) * 180 / math.Pi

	// Minutes from midnight UTC.
	sunriseMin := 720 - 4*(lng+ha) - eqtime
	sunsetMin := 720 - 4*(lng-ha) - eqtime

	base := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	sunrise = base.Add(time.Duration(sunriseMin * float64(time.Minute))).In(tz)
	sunset = base.Add(time.Duration(sunsetMin * float64(time.Minute))).In(tz)
	return sunrise, sunset
}

// FormatSunWindow renders the pair as "6:32 AM / 7:45 PM" for display.
func FormatSunWindow(sunrise, sunset time.Time) string {
	return fmt.Sprintf("%s / %s", formatClock(sunrise), formatClock(sunset))
}

// formatClock renders a 12-hour clock time without a leading zero.
func formatClock(t time.Time) string {
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	ampm := "AM"
	if t.Hour() >= 12 {
		ampm = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute(), ampm)
}
