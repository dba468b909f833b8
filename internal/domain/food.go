package domain

import "time"

// RawNutrient is one nutrient row exactly as a source reports it, before
// name normalization or unit conversion.
type RawNutrient struct {
	Name    string   `json:"name"`
	Value   *float64 `json:"value,omitempty"`
	Per100g *float64 `json:"100g,omitempty"`
	Serving *float64 `json:"serving,omitempty"`
	Unit    string   `json:"unit,omitempty"`
}

// BrandedFood is the full detail row from the bulk branded-product store.
type BrandedFood struct {
	Code         string        `json:"code"`
	Name         string        `json:"product_name"`
	Brand        string        `json:"brands,omitempty"`
	Category     string        `json:"categories,omitempty"`
	QualityGrade string        `json:"nutriscore_grade,omitempty"`
	ServingSize  string        `json:"serving_size,omitempty"`
	Popularity   int64         `json:"scans_n"`
	Creator      string        `json:"creator,omitempty"`
	Nutrients    []RawNutrient `json:"nutriments"`
}

// FoundationNutrient is one nutrient from the curated whole-food store.
type FoundationNutrient struct {
	Name   string  `json:"name"`
	Unit   string  `json:"unitName"`
	Amount float64 `json:"amount"`
}

// FoundationFood is a curated whole-food entry (USDA Foundation Foods).
type FoundationFood struct {
	FdcID          int                  `json:"fdcId"`
	Description    string               `json:"description"`
	ScientificName string               `json:"scientificName,omitempty"`
	Category       string               `json:"category,omitempty"`
	Nutrients      []FoundationNutrient `json:"foodNutrients"`
}

// CustomFood is a user-private food. Nutrient values are stored per 100 g in
// canonical units keyed by canonical nutrient key.
type CustomFood struct {
	ID        string                   `json:"id"`
	UserID    string                   `json:"-"`
	Name      string                   `json:"name"`
	Brand     string                   `json:"brand,omitempty"`
	Nutrients map[CanonicalKey]float64 `json:"nutriments"`
	CreatedAt time.Time                `json:"createdAt"`
	UpdatedAt time.Time                `json:"updatedAt"`
}

// LogEntry is one logged food for a user's day. Date is YYYY-MM-DD.
type LogEntry struct {
	ID         string     `json:"id"`
	UserID     string     `json:"-"`
	Date       string     `json:"date"`
	FoodCode   string     `json:"foodCode"`
	FoodName   string     `json:"foodName"`
	FoodBrand  string     `json:"foodBrand,omitempty"`
	DataSource DataSource `json:"dataSource"`
	Quantity   float64    `json:"quantity"`
	Unit       string     `json:"unit"`
	CreatedAt  time.Time  `json:"createdAt"`
}
