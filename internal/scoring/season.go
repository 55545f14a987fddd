package scoring

import "time"

// Season is a meteorological season name, used to key seasonal
// explanation overrides and bait notes.
type Season string

const (
	Winter Season = "winter"
	Spring Season = "spring"
	Summer Season = "summer"
	Fall   Season = "fall"
)

// SeasonOf maps a month to its meteorological season.
func SeasonOf(month time.Month) Season {
	switch month {
	case time.December, time.January, time.February:
		return Winter
	case time.March, time.April, time.May:
		return Spring
	case time.June, time.July, time.August:
		return Summer
	default:
		return Fall
	}
}
