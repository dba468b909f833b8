package usecase

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/nutrilens/backend/internal/domain"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

// sourcePriority is the fixed trust ordering among data provenances. Lower
// ranks first. Curated whole-food sources outrank generic branded data.
var sourcePriority = map[domain.FoodSource]int{
	domain.SourceFoundation: 0,
	domain.SourceNCCDB:      1,
	domain.SourceUSDA:       2,
	domain.SourceCNF:        3,
	domain.SourceIFCDB:      4,
	domain.SourceBranded:    5,
	domain.SourceUser:       6,
}

// wholeFoodPatterns rank categories that indicate minimally processed foods
// ahead of generic branded categories. Fixed ordinal ranks; unmatched
// categories get defaultCategoryRank.
var wholeFoodPatterns = []string{"raw", "fresh", "whole", "fruit", "vegetable"}

var defaultCategoryRank = len(wholeFoodPatterns)

// Relevance tiers for textual matching, best first.
const (
	relevanceExact = iota
	relevancePrefix
	relevanceSubstring
	relevanceBrandOnly
	relevanceNone
)

// SearchService merges and ranks food search results across the backing
// stores. It performs a pure in-memory merge; all I/O happens in the
// collaborators.
type SearchService struct {
	branded    domain.BrandedStore
	foundation domain.FoundationStore
	custom     domain.CustomFoodStore
}

// NewSearchService creates a search service over the three backing stores.
func NewSearchService(
	branded domain.BrandedStore,
	foundation domain.FoundationStore,
	custom domain.CustomFoodStore,
) *SearchService {
	return &SearchService{
		branded:    branded,
		foundation: foundation,
		custom:     custom,
	}
}

// Search queries the stores applicable to the request's data source, merges
// the rows and ranks them. Collaborator failures degrade to empty result
// sets: a partial answer is preferred over no answer. The final order is a
// deterministic function of the returned rows, never of arrival order.
func (s *SearchService) Search(ctx context.Context, req domain.SearchRequest) ([]domain.SearchResult, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, domain.ErrInvalidRequest
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	type fetch struct {
		name string
		run  func(ctx context.Context) ([]domain.SearchResult, error)
	}

	var fetches []fetch
	if req.DataSource == domain.DataSourceFoundation {
		// Foundation mode never mixes in private foods: branded and
		// whole-food identifiers are not comparable.
		fetches = append(fetches, fetch{"foundation", func(ctx context.Context) ([]domain.SearchResult, error) {
			return s.foundation.Search(ctx, query, limit)
		}})
	} else {
		if req.UserID != "" {
			userID := req.UserID
			fetches = append(fetches, fetch{"custom", func(ctx context.Context) ([]domain.SearchResult, error) {
				return s.custom.Search(ctx, userID, query, limit)
			}})
		}
		fetches = append(fetches, fetch{"branded", func(ctx context.Context) ([]domain.SearchResult, error) {
			return s.branded.Search(ctx, query, limit)
		}})
	}

	// Fan out, join, then rank. Ranking is not streaming: every store's
	// rows are in hand (or abandoned) before the sort.
	var (
		mu     sync.Mutex
		merged []domain.SearchResult
		wg     sync.WaitGroup
	)
	for _, f := range fetches {
		wg.Add(1)
		go func(f fetch) {
			defer wg.Done()
			rows, err := f.run(ctx)
			if err != nil {
				log.Printf("[SEARCH] %s store failed for %q: %v", f.name, query, err)
				return
			}
			mu.Lock()
			merged = append(merged, rows...)
			mu.Unlock()
		}(f)
	}
	wg.Wait()

	rankResults(merged, query)
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged, nil
}

// rankResults sorts in place: private foods first, then source priority,
// whole-food category priority, textual relevance, popularity, and finally
// code so equal rows order identically across runs.
func rankResults(results []domain.SearchResult, query string) {
	lowerQuery := strings.ToLower(strings.TrimSpace(query))

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]

		aPrivate, bPrivate := a.Source == domain.SourceUser, b.Source == domain.SourceUser
		if aPrivate != bPrivate {
			return aPrivate
		}

		aSource, bSource := sourceRank(a.Source), sourceRank(b.Source)
		if aSource != bSource {
			return aSource < bSource
		}

		aCat, bCat := categoryRank(a.Category), categoryRank(b.Category)
		if aCat != bCat {
			return aCat < bCat
		}

		aRel, bRel := relevance(lowerQuery, a), relevance(lowerQuery, b)
		if aRel != bRel {
			return aRel < bRel
		}

		if a.Popularity != b.Popularity {
			return a.Popularity > b.Popularity
		}

		return a.Code < b.Code
	})
}

func sourceRank(source domain.FoodSource) int {
	if rank, ok := sourcePriority[source]; ok {
		return rank
	}
	return len(sourcePriority)
}

func categoryRank(category string) int {
	lower := strings.ToLower(category)
	for rank, pattern := range wholeFoodPatterns {
		if strings.Contains(lower, pattern) {
			return rank
		}
	}
	return defaultCategoryRank
}

func relevance(lowerQuery string, result domain.SearchResult) int {
	name := strings.ToLower(result.Name)
	switch {
	case name == lowerQuery:
		return relevanceExact
	case strings.HasPrefix(name, lowerQuery):
		return relevancePrefix
	case strings.Contains(name, lowerQuery):
		return relevanceSubstring
	case strings.Contains(strings.ToLower(result.Brand), lowerQuery):
		return relevanceBrandOnly
	default:
		return relevanceNone
	}
}
