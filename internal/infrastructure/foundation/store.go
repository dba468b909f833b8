// Package foundation implements the curated whole-food store over the USDA
// Foundation Foods JSON dataset.
package foundation

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nutrilens/backend/internal/domain"
)

const cacheKey = "foundation:dataset"

// Relevance scores for description matching, mirroring the dataset's
// original search behavior.
const (
	scoreExact    = 100
	scorePrefix   = 80
	scoreWord     = 60
	scoreContains = 40
	scoreCategory = 20
)

// fileNutrient is the dataset's nutrient wire shape.
type fileNutrient struct {
	Nutrient struct {
		Name     string `json:"name"`
		UnitName string `json:"unitName"`
	} `json:"nutrient"`
	Amount float64 `json:"amount"`
}

// fileFood is the dataset's food wire shape; converted to the domain type
// at load.
type fileFood struct {
	FdcID          int            `json:"fdcId"`
	Description    string         `json:"description"`
	ScientificName string         `json:"scientificName"`
	FoodCategory   *struct {
		Description string `json:"description"`
	} `json:"foodCategory"`
	FoodNutrients []fileNutrient `json:"foodNutrients"`
}

type dataset struct {
	foods []domain.FoundationFood
	byID  map[int]*domain.FoundationFood
}

// Store serves curated whole foods from a JSON file. The parsed dataset
// lives in the injected cache collaborator; invalidating the cache key
// forces a reload on next use.
type Store struct {
	path  string
	cache domain.Cache
}

// NewStore creates a foundation store reading from path.
func NewStore(path string, cache domain.Cache) *Store {
	return &Store{path: path, cache: cache}
}

func (s *Store) load(ctx context.Context) (*dataset, error) {
	value, err := s.cache.GetOrLoad(ctx, cacheKey, func(ctx context.Context) (any, error) {
		start := time.Now()

		raw, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrStoreFailure, s.path, err)
		}

		var file struct {
			FoundationFoods []fileFood `json:"FoundationFoods"`
		}
		if err := json.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("%w: parsing %s: %v", domain.ErrStoreFailure, s.path, err)
		}

		ds := &dataset{byID: make(map[int]*domain.FoundationFood, len(file.FoundationFoods))}
		for _, f := range file.FoundationFoods {
			food := domain.FoundationFood{
				FdcID:          f.FdcID,
				Description:    f.Description,
				ScientificName: f.ScientificName,
			}
			if f.FoodCategory != nil {
				food.Category = f.FoodCategory.Description
			}
			for _, n := range f.FoodNutrients {
				food.Nutrients = append(food.Nutrients, domain.FoundationNutrient{
					Name:   n.Nutrient.Name,
					Unit:   n.Nutrient.UnitName,
					Amount: n.Amount,
				})
			}
			ds.foods = append(ds.foods, food)
		}
		for i := range ds.foods {
			ds.byID[ds.foods[i].FdcID] = &ds.foods[i]
		}

		log.Printf("[FOUNDATION] loaded %d foods in %s", len(ds.foods), time.Since(start))
		return ds, nil
	})
	if err != nil {
		return nil, err
	}
	ds, ok := value.(*dataset)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected cache entry for %s", domain.ErrStoreFailure, cacheKey)
	}
	return ds, nil
}

// Invalidate drops the cached dataset, forcing a reload on next use.
func (s *Store) Invalidate(ctx context.Context) error {
	return s.cache.Invalidate(ctx, cacheKey)
}

// Search scores descriptions against the query: exact, prefix, word
// boundary, substring, then category, keeping the top matches.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	ds, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	lowerQuery := strings.ToLower(query)

	type match struct {
		food  *domain.FoundationFood
		score int
	}
	var matches []match
	for i := range ds.foods {
		food := &ds.foods[i]
		desc := strings.ToLower(food.Description)

		var score int
		switch {
		case desc == lowerQuery:
			score = scoreExact
		case strings.HasPrefix(desc, lowerQuery):
			score = scorePrefix
		case strings.Contains(desc, " "+lowerQuery) || strings.Contains(desc, lowerQuery+" "):
			score = scoreWord
		case strings.Contains(desc, lowerQuery):
			score = scoreContains
		case strings.Contains(strings.ToLower(food.Category), lowerQuery):
			score = scoreCategory
		}
		if score > 0 {
			matches = append(matches, match{food: food, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].food.FdcID < matches[j].food.FdcID
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}

	results := make([]domain.SearchResult, 0, len(matches))
	for _, m := range matches {
		results = append(results, domain.SearchResult{
			Code:     strconv.Itoa(m.food.FdcID),
			Name:     m.food.Description,
			Category: m.food.Category,
			Source:   domain.SourceFoundation,
		})
	}
	return results, nil
}

// GetByID looks up one food by its FDC identifier.
func (s *Store) GetByID(ctx context.Context, fdcID string) (*domain.FoundationFood, error) {
	id, err := strconv.Atoi(fdcID)
	if err != nil {
		return nil, domain.ErrFoodNotFound
	}

	ds, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	food, ok := ds.byID[id]
	if !ok {
		return nil, domain.ErrFoodNotFound
	}
	return food, nil
}
