package registry

import (
	"math"
	"testing"
)

func ptr(v float64) *float64 { return &v }

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		val  *float64
		from string
		to   string
		want *float64
	}{
		{"same unit passthrough", ptr(42), "g", "g", ptr(42)},
		{"mg to g", ptr(500), "mg", "g", ptr(0.5)},
		{"g to mg", ptr(0.5), "g", "mg", ptr(500)},
		{"kg to g", ptr(2), "kg", "g", ptr(2000)},
		{"mcg to mg", ptr(1000), "mcg", "mg", ptr(1)},
		{"micro sign spelling", ptr(1000), "µg", "mg", ptr(1)},
		{"oz to g", ptr(1), "oz", "g", ptr(28.35)},
		{"liter to ml", ptr(1.5), "l", "ml", ptr(1500)},
		{"case insensitive", ptr(500), "MG", "G", ptr(0.5)},
		{"g to ml passthrough", ptr(5), "g", "ml", ptr(5)},
		{"ml to g passthrough", ptr(5), "ml", "g", ptr(5)},
		{"kg to ml passthrough", ptr(5), "kg", "ml", ptr(5)},
		{"l to g passthrough", ptr(5), "l", "g", ptr(5)},
		{"unknown source unit passthrough", ptr(7), "IU", "mg", ptr(7)},
		{"unknown target unit passthrough", ptr(7), "g", "furlong", ptr(7)},
		{"empty from passthrough", ptr(7), "", "g", ptr(7)},
		{"empty to passthrough", ptr(7), "g", "", ptr(7)},
		{"nil value", nil, "g", "mg", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Convert(tt.val, tt.from, tt.to)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("Convert() = %v, want %v", got, tt.want)
			}
			if got != nil && math.Abs(*got-*tt.want) > 1e-9 {
				t.Errorf("Convert() = %v, want %v", *got, *tt.want)
			}
		})
	}

	t.Run("round trip preserves value", func(t *testing.T) {
		original := 123.456
		there := Convert(ptr(original), "g", "mcg")
		back := Convert(there, "mcg", "g")
		if back == nil || math.Abs(*back-original) > 1e-6 {
			t.Errorf("round trip g->mcg->g = %v, want %v", back, original)
		}
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		val := ptr(500)
		Convert(val, "mg", "g")
		if *val != 500 {
			t.Errorf("input value changed to %v, want 500", *val)
		}
	})
}

func TestScalingFactor(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		unit     string
		want     float64
	}{
		{"grams", 150, "g", 1.5},
		{"one serving of 100g", 100, "g", 1},
		{"ounces", 2, "oz", 0.567},
		{"cup", 1, "cup", 2.36588},
		{"kilogram", 0.5, "kg", 5},
		{"unknown unit treated as grams", 50, "serving", 0.5},
		{"zero quantity", 0, "g", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScalingFactor(tt.quantity, tt.unit)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ScalingFactor(%v, %q) = %v, want %v", tt.quantity, tt.unit, got, tt.want)
			}
		})
	}
}

func TestScaleNutrients(t *testing.T) {
	nutrients := map[string]float64{
		"energy":  250,
		"protein": 10.333,
		"fat":     0,
	}

	scaled := ScaleNutrients(nutrients, 1.5)

	if scaled["energy"] != 375 {
		t.Errorf("energy = %v, want 375", scaled["energy"])
	}
	if scaled["protein"] != 15.5 {
		t.Errorf("protein = %v, want 15.5 (two-decimal rounding)", scaled["protein"])
	}
	if scaled["fat"] != 0 {
		t.Errorf("fat = %v, want 0", scaled["fat"])
	}

	if nutrients["energy"] != 250 {
		t.Errorf("input map mutated: energy = %v, want 250", nutrients["energy"])
	}
}
