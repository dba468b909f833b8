package foundation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nutrilens/backend/internal/domain"
	"github.com/nutrilens/backend/internal/infrastructure/cache"
)

const testDataset = `{
	"FoundationFoods": [
		{
			"fdcId": 170567,
			"description": "Apples, raw, with skin",
			"foodCategory": {"description": "Fruits and Fruit Juices"},
			"foodNutrients": [
				{"nutrient": {"name": "Energy", "unitName": "kcal"}, "amount": 52},
				{"nutrient": {"name": "Fiber, total dietary", "unitName": "g"}, "amount": 2.4}
			]
		},
		{
			"fdcId": 170568,
			"description": "Apple juice, canned",
			"foodCategory": {"description": "Fruits and Fruit Juices"},
			"foodNutrients": []
		},
		{
			"fdcId": 170569,
			"description": "Spinach, raw",
			"foodCategory": {"description": "Vegetables and Vegetable Products"},
			"foodNutrients": []
		}
	]
}`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "foundation.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(writeDataset(t, testDataset), cache.NewMemoryCache(0))
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	t.Run("exact description match ranks first", func(t *testing.T) {
		results, err := store.Search(ctx, "Spinach, raw", 10)
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(results) == 0 || results[0].Code != "170569" {
			t.Errorf("results = %v, want the exact match first", results)
		}
	})

	t.Run("prefix beats substring", func(t *testing.T) {
		results, err := store.Search(ctx, "apple", 10)
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(results) != 2 {
			t.Fatalf("got %d results, want 2", len(results))
		}
		// Both start with "apple"; the tie breaks on fdc id.
		if results[0].Code != "170567" {
			t.Errorf("first = %s, want 170567", results[0].Code)
		}
	})

	t.Run("category matches as a last resort", func(t *testing.T) {
		results, err := store.Search(ctx, "vegetable", 10)
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(results) != 1 || results[0].Code != "170569" {
			t.Errorf("results = %v, want the vegetable-category row", results)
		}
	})

	t.Run("no match yields empty results", func(t *testing.T) {
		results, err := store.Search(ctx, "pizza", 10)
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(results) != 0 {
			t.Errorf("results = %v, want none", results)
		}
	})

	t.Run("limit truncates", func(t *testing.T) {
		results, err := store.Search(ctx, "apple", 1)
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(results) != 1 {
			t.Errorf("got %d results, want 1", len(results))
		}
	})

	t.Run("results carry the foundation source", func(t *testing.T) {
		results, _ := store.Search(ctx, "apple", 10)
		for _, r := range results {
			if r.Source != domain.SourceFoundation {
				t.Errorf("source = %s, want Foundation", r.Source)
			}
		}
	})
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	t.Run("found", func(t *testing.T) {
		food, err := store.GetByID(ctx, "170567")
		if err != nil {
			t.Fatalf("GetByID() error = %v", err)
		}
		if food.Description != "Apples, raw, with skin" {
			t.Errorf("description = %q", food.Description)
		}
		if food.Category != "Fruits and Fruit Juices" {
			t.Errorf("category = %q", food.Category)
		}
		if len(food.Nutrients) != 2 || food.Nutrients[0].Name != "Energy" {
			t.Errorf("nutrients = %v", food.Nutrients)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := store.GetByID(ctx, "999999")
		if !errors.Is(err, domain.ErrFoodNotFound) {
			t.Errorf("error = %v, want ErrFoodNotFound", err)
		}
	})

	t.Run("non-numeric id", func(t *testing.T) {
		_, err := store.GetByID(ctx, "not-a-number")
		if !errors.Is(err, domain.ErrFoodNotFound) {
			t.Errorf("error = %v, want ErrFoodNotFound", err)
		}
	})
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file surfaces a store failure", func(t *testing.T) {
		store := NewStore(filepath.Join(t.TempDir(), "absent.json"), cache.NewMemoryCache(0))

		_, err := store.Search(ctx, "apple", 10)
		if !errors.Is(err, domain.ErrStoreFailure) {
			t.Errorf("error = %v, want ErrStoreFailure", err)
		}
	})

	t.Run("malformed json surfaces a store failure", func(t *testing.T) {
		store := NewStore(writeDataset(t, "{not json"), cache.NewMemoryCache(0))

		_, err := store.Search(ctx, "apple", 10)
		if !errors.Is(err, domain.ErrStoreFailure) {
			t.Errorf("error = %v, want ErrStoreFailure", err)
		}
	})

	t.Run("dataset loads once and reloads after invalidate", func(t *testing.T) {
		path := writeDataset(t, testDataset)
		store := NewStore(path, cache.NewMemoryCache(0))

		if _, err := store.GetByID(ctx, "170567"); err != nil {
			t.Fatalf("GetByID() error = %v", err)
		}

		// Rewrite the file; the cached dataset still serves the old view.
		if err := os.WriteFile(path, []byte(`{"FoundationFoods": []}`), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := store.GetByID(ctx, "170567"); err != nil {
			t.Errorf("GetByID() after rewrite error = %v, want cached hit", err)
		}

		if err := store.Invalidate(ctx); err != nil {
			t.Fatalf("Invalidate() error = %v", err)
		}
		if _, err := store.GetByID(ctx, "170567"); !errors.Is(err, domain.ErrFoodNotFound) {
			t.Errorf("error after invalidate = %v, want ErrFoodNotFound", err)
		}
	})
}
