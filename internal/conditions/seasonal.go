package conditions

import "time"

// Historical monthly averages for the southern NC coast, the absolute
// last resort so no Reading field is ever missing. Wind in knots
// (sustained low to gust high), waves in feet.
var monthlyAvgWind = map[time.Month]Range{
	time.January: {8, 15}, time.February: {8, 16}, time.March: {9, 16},
	time.April: {8, 15}, time.May: {7, 13}, time.June: {6, 12},
	time.July: {5, 11}, time.August: {5, 11}, time.September: {7, 14},
	time.October: {7, 14}, time.November: {7, 14}, time.December: {8, 15},
}

var monthlyAvgWaves = map[time.Month]Range{
	time.January: {2, 4}, time.February: {2, 4}, time.March: {2, 4},
	time.April: {1, 3}, time.May: {1, 3}, time.June: {1, 2},
	time.July: {1, 2}, time.August: {1, 2}, time.September: {2, 4},
	time.October: {2, 4}, time.November: {2, 4}, time.December: {2, 4},
}

var monthlyAvgWindDir = map[time.Month]string{
	time.January: "NW", time.February: "NW", time.March: "SW",
	time.April: "SW", time.May: "SW", time.June: "SW",
	time.July: "SW", time.August: "SW", time.September: "NE",
	time.October: "NE", time.November: "NW", time.December: "NW",
}

// SeasonalAverages returns the historical averages for a month. Never
// fails.
func SeasonalAverages(month time.Month) (wind, waves Range, dir string) {
	return monthlyAvgWind[month], monthlyAvgWaves[month], monthlyAvgWindDir[month]
}
