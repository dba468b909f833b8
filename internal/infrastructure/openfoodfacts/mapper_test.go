package openfoodfacts

import (
	"testing"

	"github.com/nutrilens/backend/internal/domain"
)

func TestSourceFromCreator(t *testing.T) {
	tests := []struct {
		creator string
		want    domain.FoodSource
	}{
		{"usda-ndb-import", domain.SourceUSDA},
		{"NCCDB-sync", domain.SourceNCCDB},
		{"cnf-import-bot", domain.SourceCNF},
		{"openfoodfacts-contributors", domain.SourceBranded},
		{"", domain.SourceBranded},
	}

	for _, tt := range tests {
		t.Run(tt.creator, func(t *testing.T) {
			if got := sourceFromCreator(tt.creator); got != tt.want {
				t.Errorf("sourceFromCreator(%q) = %s, want %s", tt.creator, got, tt.want)
			}
		})
	}
}

func TestParseNutriments(t *testing.T) {
	t.Run("groups suffix variants under one row", func(t *testing.T) {
		rows := parseNutriments(map[string]any{
			"sugars":          10.0,
			"sugars_100g":     9.8,
			"sugars_serving":  5.6,
			"sugars_unit":     "g",
			"sugars_value":    10.0,
			"sugars_label":    "Sugars",
			"sugars_prepared": 4.0,
		})

		if len(rows) != 1 {
			t.Fatalf("got %d rows, want 1", len(rows))
		}
		row := rows[0]
		if row.Name != "sugars" {
			t.Errorf("name = %q", row.Name)
		}
		if row.Value == nil || *row.Value != 10 {
			t.Errorf("value = %v, want 10", row.Value)
		}
		if row.Per100g == nil || *row.Per100g != 9.8 {
			t.Errorf("per100g = %v, want 9.8", row.Per100g)
		}
		if row.Serving == nil || *row.Serving != 5.6 {
			t.Errorf("serving = %v, want 5.6", row.Serving)
		}
		if row.Unit != "g" {
			t.Errorf("unit = %q, want g", row.Unit)
		}
	})

	t.Run("rows are sorted by name", func(t *testing.T) {
		rows := parseNutriments(map[string]any{
			"zinc_100g":     1.0,
			"calcium_100g":  2.0,
			"proteins_100g": 3.0,
		})

		want := []string{"calcium", "proteins", "zinc"}
		if len(rows) != len(want) {
			t.Fatalf("got %d rows, want %d", len(rows), len(want))
		}
		for i, name := range want {
			if rows[i].Name != name {
				t.Errorf("rows[%d].Name = %q, want %q", i, rows[i].Name, name)
			}
		}
	})

	t.Run("non-numeric values are skipped", func(t *testing.T) {
		rows := parseNutriments(map[string]any{
			"nova-group": "4",
			"salt_100g":  0.5,
		})

		if len(rows) != 1 || rows[0].Name != "salt" {
			t.Errorf("rows = %v, want only the salt row", rows)
		}
	})

	t.Run("empty map yields nil", func(t *testing.T) {
		if rows := parseNutriments(nil); rows != nil {
			t.Errorf("rows = %v, want nil", rows)
		}
	})
}
