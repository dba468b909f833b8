// Package clinical computes Dietary Reference Intake (DRI) baselines from a
// user profile. Its output feeds the registry's clinical-path lookup; the
// formulas themselves (Mifflin-St Jeor, AMDR ranges, RDA tables) are standard
// reference values.
package clinical

import (
	"math"

	"github.com/nutrilens/backend/internal/domain"
)

var activityFactors = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:  1.2,
	domain.ActivityLow:        1.375,
	domain.ActivityActive:     1.55,
	domain.ActivityVeryActive: 1.725,
}

func ptr(v float64) *float64 { return &v }

func value(recommended float64, unit string) domain.NutrientValue {
	return domain.NutrientValue{Recommended: recommended, Unit: unit}
}

func valueUL(recommended float64, unit string, ul float64) domain.NutrientValue {
	return domain.NutrientValue{Recommended: recommended, Unit: unit, UL: ptr(ul)}
}

// CalculateDRI derives the full baseline record for a profile. Energy comes
// from Mifflin-St Jeor BMR scaled by activity; macro ranges follow AMDR
// (carbs 45-65%, fat 20-35%, protein 10-35% of energy; 4/4/9 kcal per gram).
func CalculateDRI(profile domain.UserProfile) *domain.DRIMetrics {
	isMale := profile.Sex == domain.SexMale
	age := profile.Age
	weight := profile.WeightKg
	height := profile.HeightCm

	heightM := height / 100
	bmi := weight / (heightM * heightM)

	bmr := 10*weight + 6.25*height - 5*float64(age)
	if isMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	factor, ok := activityFactors[profile.ActivityLevel]
	if !ok {
		factor = activityFactors[domain.ActivitySedentary]
	}
	tee := bmr * factor

	carbMin := math.Round(tee * 0.45 / 4)
	carbMax := math.Round(tee * 0.65 / 4)
	fatMin := math.Round(tee * 0.2 / 9)
	fatMax := math.Round(tee * 0.35 / 9)
	proteinRDA := math.Round(weight * 0.8)

	fiber := 25.0
	if isMale {
		fiber = 38
	}
	water := 2.7
	if isMale {
		water = 3.7
	}

	pick := func(male, female float64) float64 {
		if isMale {
			return male
		}
		return female
	}

	vitaminB6 := 1.3
	if age > 50 {
		vitaminB6 = pick(1.7, 1.5)
	}
	calcium := 1000.0
	if age > 50 {
		calcium = 1200
	}
	iron := pick(8, 18)
	if !isMale && age > 50 {
		iron = 8
	}
	magnesium := pick(400, 310)
	if age > 30 {
		magnesium = pick(420, 320)
	}

	lowAsPossible := func(unit string) domain.NutrientValue {
		return domain.NutrientValue{Recommended: 0, Unit: unit, Note: "As low as possible"}
	}

	nutrients := map[string]any{
		"carbohydrate": map[string]any{
			"total": domain.NutrientValue{
				Recommended: carbMin,
				Min:         ptr(carbMin),
				Max:         ptr(carbMax),
				Unit:        "g",
			},
			"fiber": map[string]any{
				"total": value(fiber, "g"),
			},
		},
		"protein": map[string]any{
			"total": value(proteinRDA, "g"),
		},
		"fat": map[string]any{
			"total": domain.NutrientValue{
				Recommended: fatMin,
				Min:         ptr(fatMin),
				Max:         ptr(fatMax),
				Unit:        "g",
			},
			"saturated":   lowAsPossible("g"),
			"trans":       lowAsPossible("g"),
			"omega3":      value(pick(1.6, 1.1), "g"),
			"omega6":      value(pick(17, 12), "g"),
			"cholesterol": lowAsPossible("mg"),
		},
		"water": value(water, "L"),

		// Vitamins
		"vitaminA":        valueUL(pick(900, 700), "mcg", 3000),
		"vitaminC":        valueUL(pick(90, 75), "mg", 2000),
		"vitaminD":        valueUL(15, "mcg", 100),
		"vitaminE":        valueUL(15, "mg", 1000),
		"vitaminK":        value(pick(120, 90), "mcg"),
		"thiamin":         value(pick(1.2, 1.1), "mg"),
		"riboflavin":      value(pick(1.3, 1.1), "mg"),
		"niacin":          valueUL(pick(16, 14), "mg", 35),
		"vitaminB6":       valueUL(vitaminB6, "mg", 100),
		"folate":          valueUL(400, "mcg", 1000),
		"vitaminB12":      value(2.4, "mcg"),
		"choline":         valueUL(pick(0.55, 0.425), "g", 3.5),
		"pantothenicAcid": value(5, "mg"),
		"biotin":          value(30, "mcg"),

		// Minerals
		"calcium":    valueUL(calcium, "mg", 2500),
		"chloride":   valueUL(2.3, "g", 3.6),
		"chromium":   value(pick(35, 25), "mcg"),
		"copper":     valueUL(900, "mcg", 10000),
		"fluoride":   valueUL(pick(4, 3), "mg", 10),
		"iodine":     valueUL(150, "mcg", 1100),
		"iron":       valueUL(iron, "mg", 45),
		"magnesium":  valueUL(magnesium, "mg", 350),
		"manganese":  valueUL(pick(2.3, 1.8), "mg", 11),
		"molybdenum": valueUL(45, "mcg", 2000),
		"phosphorus": valueUL(0.7, "g", 4),
		"potassium":  value(pick(3400, 2600), "mg"),
		"selenium":   valueUL(55, "mcg", 400),
		"sodium":     valueUL(1500, "mg", 2300),
		"zinc":       valueUL(pick(11, 8), "mg", 40),
	}

	return &domain.DRIMetrics{
		BMR:       math.Round(bmr),
		TEE:       math.Round(tee),
		BMI:       math.Round(bmi*10) / 10,
		Nutrients: nutrients,
	}
}
