package domain

// Sex is the biological sex used by the DRI formulas.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ActivityLevel scales BMR into total energy expenditure.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLow        ActivityLevel = "low"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// UserProfile is the input to the DRI calculator.
type UserProfile struct {
	Sex           Sex           `json:"sex" binding:"required"`
	Age           int           `json:"age" binding:"required"`
	WeightKg      float64       `json:"weight" binding:"required"`
	HeightCm      float64       `json:"height" binding:"required"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
}

// NutrientValue is one recommended baseline. UL is nil when no tolerable
// upper intake level has been determined.
type NutrientValue struct {
	Recommended float64  `json:"recommended"`
	Unit        string   `json:"unit"`
	UL          *float64 `json:"ul,omitempty"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
	Note        string   `json:"note,omitempty"`
}

// DRIMetrics is the clinical baseline record consumed by the registry's
// clinical-path lookup. Nutrients is a nested record tree addressed by the
// registry's dotted clinical paths; leaves are NutrientValue entries. Partial
// trees are valid: not every provider populates every nutrient.
type DRIMetrics struct {
	BMR       float64        `json:"bmr"`
	TEE       float64        `json:"tee"`
	BMI       float64        `json:"bmi"`
	Nutrients map[string]any `json:"nutrients"`
}
