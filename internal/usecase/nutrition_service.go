package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/nutrilens/backend/internal/domain"
	"github.com/nutrilens/backend/internal/registry"
)

// NutritionService resolves foods into normalized nutrient profiles and
// aggregates daily logs. Raw source rows pass through the name normalizer
// and unit converter exactly once, at this boundary.
type NutritionService struct {
	reg        *registry.Registry
	branded    domain.BrandedStore
	foundation domain.FoundationStore
	custom     domain.CustomFoodStore
	logs       domain.LogRepository
}

// NewNutritionService wires the nutrition service to its stores.
func NewNutritionService(
	reg *registry.Registry,
	branded domain.BrandedStore,
	foundation domain.FoundationStore,
	custom domain.CustomFoodStore,
	logs domain.LogRepository,
) *NutritionService {
	return &NutritionService{
		reg:        reg,
		branded:    branded,
		foundation: foundation,
		custom:     custom,
		logs:       logs,
	}
}

// normalizeRaw turns one source nutrient row into the shared shape. A name
// that cannot be normalized keeps its raw spelling and value with an empty
// key: data is preserved, never discarded.
func (s *NutritionService) normalizeRaw(rawName string, value float64, unit string) domain.NormalizedNutrient {
	key := s.reg.Normalize(rawName)
	if key == "" {
		return domain.NormalizedNutrient{RawName: rawName, Value: value, Unit: unit}
	}

	meta, _ := s.reg.Get(key)
	converted := registry.Convert(&value, unit, meta.Unit)
	out := value
	if converted != nil {
		out = *converted
	}
	return domain.NormalizedNutrient{Key: key, RawName: rawName, Value: out, Unit: meta.Unit}
}

// ProfileFromBranded builds a 100 g profile from a branded store row,
// preferring per-100g values over as-sold values.
func (s *NutritionService) ProfileFromBranded(food *domain.BrandedFood) *domain.NutrientProfile {
	profile := &domain.NutrientProfile{
		Code:   food.Code,
		Name:   food.Name,
		Source: domain.SourceBranded,
	}
	for _, n := range food.Nutrients {
		raw := n.Per100g
		if raw == nil {
			raw = n.Value
		}
		if raw == nil {
			continue
		}
		profile.Nutrients = append(profile.Nutrients, s.normalizeRaw(n.Name, *raw, n.Unit))
	}
	return profile
}

// ProfileFromFoundation builds a 100 g profile from a curated whole-food row.
func (s *NutritionService) ProfileFromFoundation(food *domain.FoundationFood) *domain.NutrientProfile {
	profile := &domain.NutrientProfile{
		Code:   fmt.Sprintf("%d", food.FdcID),
		Name:   food.Description,
		Source: domain.SourceFoundation,
	}
	for _, n := range food.Nutrients {
		profile.Nutrients = append(profile.Nutrients, s.normalizeRaw(n.Name, n.Amount, n.Unit))
	}
	return profile
}

// ProfileFromCustom builds a profile from a user food, whose values are
// already canonical per 100 g.
func (s *NutritionService) ProfileFromCustom(food *domain.CustomFood) *domain.NutrientProfile {
	profile := &domain.NutrientProfile{
		Code:   food.ID,
		Name:   food.Name,
		Source: domain.SourceUser,
	}
	for key, value := range food.Nutrients {
		meta, ok := s.reg.Get(key)
		if !ok {
			continue
		}
		profile.Nutrients = append(profile.Nutrients, domain.NormalizedNutrient{
			Key:     key,
			RawName: string(key),
			Value:   value,
			Unit:    meta.Unit,
		})
	}
	return profile
}

// GetFood resolves one food into its normalized profile. In branded mode an
// authenticated caller's private foods are checked first.
func (s *NutritionService) GetFood(ctx context.Context, userID, id string, dataSource domain.DataSource) (*domain.NutrientProfile, error) {
	if userID != "" && dataSource == domain.DataSourceBranded {
		custom, err := s.custom.GetByID(ctx, userID, id)
		if err == nil && custom != nil {
			return s.ProfileFromCustom(custom), nil
		}
	}

	if dataSource == domain.DataSourceFoundation {
		food, err := s.foundation.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if food == nil {
			return nil, domain.ErrFoodNotFound
		}
		return s.ProfileFromFoundation(food), nil
	}

	food, err := s.branded.GetByCode(ctx, id)
	if err != nil {
		return nil, err
	}
	if food == nil {
		return nil, domain.ErrFoodNotFound
	}
	return s.ProfileFromBranded(food), nil
}

// canonicalValues flattens a profile into canonical-key totals, dropping
// rows that never normalized.
func canonicalValues(profile *domain.NutrientProfile) map[string]float64 {
	values := make(map[string]float64)
	for _, n := range profile.Nutrients {
		if n.Key == "" {
			continue
		}
		values[string(n.Key)] += n.Value
	}
	return values
}

// CreateCustomFood stores a user-private food. Nutrient keys the registry
// does not know are dropped rather than rejected.
func (s *NutritionService) CreateCustomFood(ctx context.Context, food *domain.CustomFood) error {
	if food.UserID == "" {
		return domain.ErrUnauthorized
	}
	if food.Name == "" {
		return domain.ErrInvalidRequest
	}
	for key := range food.Nutrients {
		if _, ok := s.reg.Get(key); !ok {
			delete(food.Nutrients, key)
		}
	}
	return s.custom.Create(ctx, food)
}

// LogFoods records entries against the caller's daily log.
func (s *NutritionService) LogFoods(ctx context.Context, userID string, entries []domain.LogEntry) error {
	if userID == "" {
		return domain.ErrUnauthorized
	}
	if len(entries) == 0 {
		return domain.ErrInvalidRequest
	}
	now := time.Now()
	for i := range entries {
		entries[i].UserID = userID
		if entries[i].ID == "" {
			entries[i].ID = uuid.NewString()
		}
		entries[i].CreatedAt = now
		if entries[i].Quantity <= 0 {
			return domain.ErrInvalidRequest
		}
	}
	return s.logs.Add(ctx, entries)
}

// DeleteLog removes one of the caller's log entries.
func (s *NutritionService) DeleteLog(ctx context.Context, userID, id string) error {
	if userID == "" {
		return domain.ErrUnauthorized
	}
	return s.logs.Delete(ctx, userID, id)
}

// DailyLogs lists the caller's entries for one date (YYYY-MM-DD).
func (s *NutritionService) DailyLogs(ctx context.Context, userID, date string) ([]domain.LogEntry, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	return s.logs.ListByDate(ctx, userID, date)
}

// DailyNutrition aggregates one day's logged foods into canonical-key
// totals, scaling each food's 100 g profile by the logged quantity. A food
// that can no longer be resolved contributes nothing but does not fail the
// aggregation.
func (s *NutritionService) DailyNutrition(ctx context.Context, userID, date string) (map[string]float64, error) {
	entries, err := s.DailyLogs(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64)
	for _, entry := range entries {
		profile, err := s.GetFood(ctx, userID, entry.FoodCode, entry.DataSource)
		if err != nil {
			log.Printf("[NUTRITION] skipping unresolvable food %q: %v", entry.FoodCode, err)
			continue
		}

		factor := registry.ScalingFactor(entry.Quantity, entry.Unit)
		scaled := registry.ScaleNutrients(canonicalValues(profile), factor)
		for key, value := range scaled {
			totals[key] += value
		}
	}
	return totals, nil
}
