package registry

import (
	"math"
	"strings"
)

// massConversions maps a mass unit spelling to its factor to grams.
var massConversions = map[string]float64{
	"g":          1,
	"gram":       1,
	"grams":      1,
	"mg":         0.001,
	"milligram":  0.001,
	"milligrams": 0.001,
	"mcg":        0.000001,
	"microgram":  0.000001,
	"micrograms": 0.000001,
	"µg":         0.000001,
	"kg":         1000,
	"kilogram":   1000,
	"oz":         28.35,
	"ounce":      28.35,
	"ounces":     28.35,
	"lb":         453.592,
	"pound":      453.592,
	"pounds":     453.592,
}

// volumeConversions maps a volume unit spelling to its factor to milliliters.
// Household measures are approximated as water-density volume.
var volumeConversions = map[string]float64{
	"ml":          1,
	"milliliter":  1,
	"milliliters": 1,
	"l":           1000,
	"liter":       1000,
	"liters":      1000,
	"cup":         236.588,
	"tbsp":        14.787,
	"tsp":         4.929,
}

// baseFactor resolves a unit spelling to its base-unit factor and domain.
func baseFactor(unit string) (factor float64, volume bool, ok bool) {
	if f, ok := massConversions[unit]; ok {
		return f, false, true
	}
	if f, ok := volumeConversions[unit]; ok {
		return f, true, true
	}
	return 0, false, false
}

// Convert converts value from one unit to another via the base-unit factor
// tables. Mass and volume share no implicit conversion: a pair that straddles
// the two domains passes the value through unmodified, as do unknown units on
// either side, a nil value, and an absent unit. Downstream callers decide
// whether an unresolved unit matters. Pure and deterministic.
func Convert(value *float64, fromUnit, toUnit string) *float64 {
	if value == nil || fromUnit == "" || toUnit == "" {
		return value
	}
	if fromUnit == toUnit {
		return value
	}

	from := strings.ToLower(strings.TrimSpace(fromUnit))
	to := strings.ToLower(strings.TrimSpace(toUnit))

	fromFactor, fromVolume, fromOK := baseFactor(from)
	toFactor, toVolume, toOK := baseFactor(to)
	if !fromOK || !toOK || fromVolume != toVolume {
		return value
	}

	converted := *value * fromFactor / toFactor
	return &converted
}

// unitToGrams covers the units accepted for logged quantities. ml maps 1:1
// as an approximation for water-based foods.
var unitToGrams = map[string]float64{
	"g":        1,
	"gram":     1,
	"grams":    1,
	"oz":       28.35,
	"ounce":    28.35,
	"ounces":   28.35,
	"lb":       453.592,
	"pound":    453.592,
	"pounds":   453.592,
	"kg":       1000,
	"kilogram": 1000,
	"ml":       1,
	"cup":      236.588,
	"tbsp":     14.787,
	"tsp":      4.929,
}

// ScalingFactor converts a logged quantity into the multiplier to apply to
// per-100g nutrient values. Unknown units are treated as grams.
func ScalingFactor(quantity float64, unit string) float64 {
	normalized := strings.ToLower(strings.TrimSpace(unit))
	gramsPerUnit, ok := unitToGrams[normalized]
	if !ok {
		gramsPerUnit = 1
	}
	return quantity * gramsPerUnit / 100
}

// ScaleNutrients multiplies every value by factor, rounded to two decimals.
func ScaleNutrients(nutrients map[string]float64, factor float64) map[string]float64 {
	scaled := make(map[string]float64, len(nutrients))
	for key, value := range nutrients {
		scaled[key] = math.Round(value*factor*100) / 100
	}
	return scaled
}
