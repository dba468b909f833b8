package registry

import (
	"fmt"
	"strings"

	"github.com/nutrilens/backend/internal/domain"
)

// Entry pairs a canonical key with its metadata for ordered iteration.
type Entry struct {
	Key  domain.CanonicalKey
	Meta domain.NutrientMetadata
}

// Registry is the read-only canonical nutrient table. Built once at process
// start; safe for concurrent reads without synchronization.
type Registry struct {
	entries    map[domain.CanonicalKey]domain.NutrientMetadata
	order      []domain.CanonicalKey
	aliasIndex map[string]domain.CanonicalKey
	parents    map[domain.CanonicalKey]domain.CanonicalKey
	children   map[domain.CanonicalKey][]domain.CanonicalKey
}

// New builds the registry from the static definitions, indexes aliases and
// inverts the parent relation into the hierarchy maps.
func New() (*Registry, error) {
	r := &Registry{
		entries:    make(map[domain.CanonicalKey]domain.NutrientMetadata, len(definitions)),
		order:      make([]domain.CanonicalKey, 0, len(definitions)),
		aliasIndex: make(map[string]domain.CanonicalKey),
		parents:    make(map[domain.CanonicalKey]domain.CanonicalKey),
		children:   make(map[domain.CanonicalKey][]domain.CanonicalKey),
	}

	for _, def := range definitions {
		if _, dup := r.entries[def.Key]; dup {
			return nil, fmt.Errorf("registry: duplicate key %q", def.Key)
		}
		r.entries[def.Key] = def.Meta
		r.order = append(r.order, def.Key)

		// Key itself resolves, then aliases; first definition wins so
		// earlier entries keep priority on overlapping spellings.
		if _, ok := r.aliasIndex[string(def.Key)]; !ok {
			r.aliasIndex[string(def.Key)] = def.Key
		}
		for _, alias := range def.Meta.Aliases {
			lower := strings.ToLower(strings.TrimSpace(alias))
			if _, ok := r.aliasIndex[lower]; !ok {
				r.aliasIndex[lower] = def.Key
			}
		}
	}

	for _, def := range definitions {
		parent := def.Meta.Parent
		if parent == "" {
			continue
		}
		if _, ok := r.entries[parent]; !ok {
			return nil, fmt.Errorf("registry: %q references unknown parent %q", def.Key, parent)
		}
		r.parents[def.Key] = parent
		r.children[parent] = append(r.children[parent], def.Key)
	}

	if err := r.checkAcyclic(); err != nil {
		return nil, err
	}

	return r, nil
}

// MustNew is New for process wiring where a broken table is a programming
// error.
func MustNew() *Registry {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) checkAcyclic() error {
	for key := range r.entries {
		seen := map[domain.CanonicalKey]bool{key: true}
		for cur, ok := r.parents[key]; ok; cur, ok = r.parents[cur] {
			if seen[cur] {
				return fmt.Errorf("registry: cycle through %q", cur)
			}
			seen[cur] = true
		}
	}
	return nil
}

// Get returns the metadata for a canonical key.
func (r *Registry) Get(key domain.CanonicalKey) (domain.NutrientMetadata, bool) {
	meta, ok := r.entries[key]
	return meta, ok
}

// Entries returns all entries in insertion order. Consumers group by
// category and must render deterministically across runs.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, Entry{Key: key, Meta: r.entries[key]})
	}
	return out
}

// Parent returns the parent key, or "" for hierarchy roots.
func (r *Registry) Parent(key domain.CanonicalKey) domain.CanonicalKey {
	return r.parents[key]
}

// Children returns the direct children of a key in definition order.
func (r *Registry) Children(key domain.CanonicalKey) []domain.CanonicalKey {
	return r.children[key]
}

// ClinicalValue resolves a key's clinical path against a metrics record and
// returns the recommended baseline, or nil when any path segment is missing.
// Missing data is a valid, common case, never an error.
func (r *Registry) ClinicalValue(metrics *domain.DRIMetrics, key domain.CanonicalKey) *float64 {
	if metrics == nil {
		return nil
	}
	meta, ok := r.entries[key]
	if !ok || meta.ClinicalPath == "" {
		return nil
	}

	if meta.ClinicalPath == "tee" {
		tee := metrics.TEE
		return &tee
	}

	parts := strings.Split(meta.ClinicalPath, ".")
	if parts[0] != "nutrients" {
		return nil
	}

	var current any = metrics.Nutrients
	for _, part := range parts[1:] {
		node, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = node[part]
		if !ok {
			return nil
		}
	}

	switch leaf := current.(type) {
	case domain.NutrientValue:
		v := leaf.Recommended
		return &v
	case *domain.NutrientValue:
		if leaf == nil {
			return nil
		}
		v := leaf.Recommended
		return &v
	default:
		return nil
	}
}
