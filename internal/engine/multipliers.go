package engine

import "strings"

// Demand multipliers are fixed for the process lifetime. Lookups are
// case-insensitive and unknown labels fall back to 1.0.

var weatherMultipliers = map[string]float64{
	"sunny":  1.1,
	"rainy":  0.9,
	"snowy":  0.7,
	"stormy": 0.8,
	"normal": 1.0,
}

var holidayMultipliers = map[string]float64{
	"christmas":    1.5,
	"black_friday": 1.8,
	"cyber_monday": 1.6,
	"valentines":   1.3,
	"halloween":    1.2,
	"none":         1.0,
}

var seasonMultipliers = map[string]float64{
	"summer":  1.2,
	"winter":  0.9,
	"spring":  1.1,
	"fall":    1.0,
	"regular": 1.0,
}

// Category multipliers used by optimal inventory sizing.
var categoryMultipliers = map[string]float64{
	"electronics": 1.3,
	"clothing":    1.1,
	"food":        0.8,
	"furniture":   1.5,
}

func lookupMultiplier(table map[string]float64, label string) float64 {
	if mult, ok := table[strings.ToLower(strings.TrimSpace(label))]; ok {
		return mult
	}

	return 1.0
}

// WeatherMultiplier returns the demand multiplier for a weather label.
func WeatherMultiplier(label string) float64 {
	return lookupMultiplier(weatherMultipliers, label)
}

// HolidayMultiplier returns the demand multiplier for a holiday or
// promotion label.
func HolidayMultiplier(label string) float64 {
	return lookupMultiplier(holidayMultipliers, label)
}

// SeasonMultiplier returns the demand multiplier for a seasonality label.
func SeasonMultiplier(label string) float64 {
	return lookupMultiplier(seasonMultipliers, label)
}

// CategoryMultiplier returns the sizing multiplier for a product category.
func CategoryMultiplier(label string) float64 {
	return lookupMultiplier(categoryMultipliers, label)
}
