package domain

// FoodSource identifies the provenance of a food row.
//
//   - NCCDB: Nutrition Coordinating Center Food & Nutrient Database
//   - USDA: United States Department of Agriculture branded data
//   - CNF: Canadian Nutrient File
//   - IFCDB: International Food Composition Database
//   - Branded: generic commercial products
//   - User: user-created custom foods
//   - Foundation: USDA Foundation Foods (whole foods)
type FoodSource string

const (
	SourceFoundation FoodSource = "Foundation"
	SourceNCCDB      FoodSource = "NCCDB"
	SourceUSDA       FoodSource = "USDA"
	SourceCNF        FoodSource = "CNF"
	SourceIFCDB      FoodSource = "IFCDB"
	SourceBranded    FoodSource = "Branded"
	SourceUser       FoodSource = "User"
)

// DataSource selects which stores a search consults.
type DataSource string

const (
	// DataSourceFoundation searches curated whole foods only. User-private
	// results are never mixed in: branded and whole-food identifiers are
	// not comparable.
	DataSourceFoundation DataSource = "foundation"

	// DataSourceBranded searches commercial products plus the caller's
	// private foods when a session exists.
	DataSourceBranded DataSource = "branded"
)

// SearchResult is the common result shape all stores map into. Constructed
// per query, never persisted.
type SearchResult struct {
	Code         string     `json:"code"`
	Name         string     `json:"name"`
	Brand        string     `json:"brand,omitempty"`
	Category     string     `json:"category,omitempty"`
	QualityGrade string     `json:"qualityGrade,omitempty"`
	Popularity   int64      `json:"popularity"`
	Source       FoodSource `json:"source"`
}

// SearchRequest carries one search invocation.
type SearchRequest struct {
	Query      string     `json:"query" binding:"required"`
	Limit      int        `json:"limit"`
	DataSource DataSource `json:"dataSource"`

	// UserID is empty for anonymous calls; private foods are only consulted
	// when it is set.
	UserID string `json:"-"`
}
