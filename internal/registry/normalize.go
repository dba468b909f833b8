package registry

import (
	"strings"

	"github.com/nutrilens/backend/internal/domain"
)

// fuzzyRule is one substring fallback rule. Rules run in a fixed priority
// order; the first match wins.
type fuzzyRule struct {
	contains string
	excludes []string
	key      domain.CanonicalKey
}

// Source vocabularies drift ("Energy-kcal" vs "energy_kCal" vs "Energy"), so
// exact alias matching handles known variants and these rules catch unseen
// but structurally similar ones. Best effort, not a correctness guarantee.
var fuzzyRules = []fuzzyRule{
	{contains: "fiber", key: "fiber"},
	{contains: "protein", key: "protein"},
	{contains: "fat", excludes: []string{"saturated", "trans"}, key: "fat"},
	{contains: "sugar", excludes: []string{"added", "alcohol"}, key: "sugar"},
	{contains: "carbohydrate", key: "carbohydrate"},
}

// Normalize maps an arbitrary nutrient name from any source to a canonical
// key. Exact key/alias match first (case-insensitive), then the fuzzy
// substring fallback. Returns "" when nothing matches; callers keep the raw
// value rather than discarding it.
func (r *Registry) Normalize(rawName string) domain.CanonicalKey {
	lower := strings.ToLower(strings.TrimSpace(rawName))
	if lower == "" {
		return ""
	}

	if key, ok := r.aliasIndex[lower]; ok {
		return key
	}

	for _, rule := range fuzzyRules {
		if !strings.Contains(lower, rule.contains) {
			continue
		}
		excluded := false
		for _, ex := range rule.excludes {
			if strings.Contains(lower, ex) {
				excluded = true
				break
			}
		}
		if !excluded {
			return rule.key
		}
	}

	return ""
}
