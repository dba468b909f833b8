package openfoodfacts

import (
	"sort"
	"strings"

	"github.com/nutrilens/backend/internal/domain"
)

// sourceFromCreator maps the dataset creator onto the coarse provenance
// tags used for ranking. Anything unrecognized is generic branded data.
func sourceFromCreator(creator string) domain.FoodSource {
	lower := strings.ToLower(creator)
	switch {
	case strings.Contains(lower, "nccdb"):
		return domain.SourceNCCDB
	case strings.Contains(lower, "usda"):
		return domain.SourceUSDA
	case strings.Contains(lower, "cnf"):
		return domain.SourceCNF
	default:
		return domain.SourceBranded
	}
}

func (r *productRow) toSearchResult() domain.SearchResult {
	return domain.SearchResult{
		Code:         r.Code,
		Name:         r.ProductName,
		Brand:        r.Brands,
		Category:     r.Categories,
		QualityGrade: r.NutriscoreGrade,
		Popularity:   r.ScansN,
		Source:       sourceFromCreator(r.Creator),
	}
}

func (r *productRow) toBrandedFood() *domain.BrandedFood {
	return &domain.BrandedFood{
		Code:         r.Code,
		Name:         r.ProductName,
		Brand:        r.Brands,
		Category:     r.Categories,
		QualityGrade: r.NutriscoreGrade,
		ServingSize:  r.ServingSize,
		Popularity:   r.ScansN,
		Creator:      r.Creator,
		Nutrients:    parseNutriments(r.Nutriments),
	}
}

// parseNutriments flattens the API's nutriment map into raw rows. The map
// interleaves value keys with suffixed variants, e.g. "sugars": 10,
// "sugars_100g": 9.8, "sugars_unit": "g"; one row is emitted per base name.
func parseNutriments(nutriments map[string]any) []domain.RawNutrient {
	if len(nutriments) == 0 {
		return nil
	}

	byName := make(map[string]*domain.RawNutrient)
	ordered := make([]string, 0, len(nutriments))

	get := func(name string) *domain.RawNutrient {
		if row, ok := byName[name]; ok {
			return row
		}
		row := &domain.RawNutrient{Name: name}
		byName[name] = row
		ordered = append(ordered, name)
		return row
	}

	for key, raw := range nutriments {
		switch {
		case strings.HasSuffix(key, "_100g"):
			if v, ok := toFloat(raw); ok {
				get(strings.TrimSuffix(key, "_100g")).Per100g = &v
			}
		case strings.HasSuffix(key, "_serving"):
			if v, ok := toFloat(raw); ok {
				get(strings.TrimSuffix(key, "_serving")).Serving = &v
			}
		case strings.HasSuffix(key, "_unit"):
			if s, ok := raw.(string); ok {
				get(strings.TrimSuffix(key, "_unit")).Unit = s
			}
		case strings.HasSuffix(key, "_value"), strings.HasSuffix(key, "_label"), strings.HasSuffix(key, "_prepared"):
			// prepared/label variants are not consumed
		default:
			if v, ok := toFloat(raw); ok {
				get(key).Value = &v
			}
		}
	}

	// Map iteration order is random; sort so profiles render identically
	// across runs.
	sort.Strings(ordered)
	rows := make([]domain.RawNutrient, 0, len(ordered))
	for _, name := range ordered {
		rows = append(rows, *byName[name])
	}
	return rows
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
