package domain

// CanonicalKey is the single normalized identifier for one nutrient concept
// across all data sources (e.g. "fiber_soluble"). The set of valid keys is
// fixed by the registry at load time and never mutated afterwards.
type CanonicalKey string

// NutrientCategory groups registry entries for display and filtering.
type NutrientCategory string

const (
	CategoryMacro     NutrientCategory = "macro"
	CategoryVitamin   NutrientCategory = "vitamin"
	CategoryMineral   NutrientCategory = "mineral"
	CategoryAminoAcid NutrientCategory = "amino_acid"
	CategoryOther     NutrientCategory = "other"
)

// NutrientMetadata holds the registry attributes for one canonical key.
type NutrientMetadata struct {
	Label string `json:"label"`
	Unit  string `json:"unit"`

	// ClinicalPath is a dotted lookup path into the clinical metrics record.
	// The literal "tee" addresses the top-level energy expenditure field.
	ClinicalPath string `json:"clinicalPath"`

	// Aliases are raw-source spellings, matched case-insensitively.
	Aliases []string `json:"aliases"`

	Category NutrientCategory `json:"category"`

	// Parent links this key into the nutrient hierarchy (empty for roots).
	// The parent relation forms a forest; cycles are not permitted.
	Parent CanonicalKey `json:"parent,omitempty"`
}

// NormalizedNutrient is one nutrient value after name normalization and unit
// conversion. Key is empty when normalization failed; the value is retained
// rather than discarded so callers never lose source data.
type NormalizedNutrient struct {
	Key     CanonicalKey `json:"key,omitempty"`
	RawName string       `json:"rawName"`
	Value   float64      `json:"value"`
	Unit    string       `json:"unit"`
}

// NutrientProfile is the normalized nutrient list for one food at the
// 100 g/ml reference quantity.
type NutrientProfile struct {
	Code      string               `json:"code"`
	Name      string               `json:"name"`
	Source    FoodSource           `json:"source"`
	Nutrients []NormalizedNutrient `json:"nutrients"`
}
