package domain

import "context"

// BrandedStore is the bulk branded-product collaborator. Search results are
// converted to the common shape at this boundary; source-specific rows never
// travel past it.
type BrandedStore interface {
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)
	GetByCode(ctx context.Context, code string) (*BrandedFood, error)
}

// FoundationStore is the curated whole-food collaborator.
type FoundationStore interface {
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)
	GetByID(ctx context.Context, fdcID string) (*FoundationFood, error)
}

// CustomFoodStore holds user-private foods. Every call is scoped to one user.
type CustomFoodStore interface {
	Search(ctx context.Context, userID, query string, limit int) ([]SearchResult, error)
	GetByID(ctx context.Context, userID, id string) (*CustomFood, error)
	Create(ctx context.Context, food *CustomFood) error
}

// GoalRepository persists accepted goal sets. The core never persists
// directly; it hands the full accepted set to this collaborator.
type GoalRepository interface {
	Load(ctx context.Context, userID string) (GoalSet, error)
	Save(ctx context.Context, userID string, goals GoalSet) error
}

// LogRepository persists daily food log entries.
type LogRepository interface {
	Add(ctx context.Context, entries []LogEntry) error
	ListByDate(ctx context.Context, userID, date string) ([]LogEntry, error)
	Delete(ctx context.Context, userID, id string) error
}

// Cache is an injected get-or-load cache for expensive external datasets.
type Cache interface {
	Get(ctx context.Context, key string) (any, error)
	GetOrLoad(ctx context.Context, key string, load func(ctx context.Context) (any, error)) (any, error)
	Invalidate(ctx context.Context, key string) error
}
