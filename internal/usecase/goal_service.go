package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/nutrilens/backend/internal/domain"
	"github.com/nutrilens/backend/internal/registry"
)

// GoalEngine maintains one session's sparse goal overlay on top of the
// registry baselines. Updates are validated against local range rules and
// parent/child consistency; accepted increases propagate upward through the
// nutrient hierarchy. Single writer per session: a session belongs to one
// logged-in user acting serially.
type GoalEngine struct {
	reg     *registry.Registry
	metrics *domain.DRIMetrics
	goals   domain.GoalSet
}

// NewGoalEngine starts a session over an initial overlay, typically the
// persisted goal set loaded at login.
func NewGoalEngine(reg *registry.Registry, metrics *domain.DRIMetrics, initial domain.GoalSet) *GoalEngine {
	if initial == nil {
		initial = domain.GoalSet{}
	}
	return &GoalEngine{reg: reg, metrics: metrics, goals: initial.Clone()}
}

// Goals returns a copy of the current overlay.
func (e *GoalEngine) Goals() domain.GoalSet {
	return e.goals.Clone()
}

// EffectiveTarget resolves a key's current target: custom override if
// present, else the clinical baseline. Nil when neither exists.
func (e *GoalEngine) EffectiveTarget(key domain.CanonicalKey) *float64 {
	if goal, ok := e.goals[key]; ok && goal.Target != nil {
		v := *goal.Target
		return &v
	}
	return e.reg.ClinicalValue(e.metrics, key)
}

// ProposeUpdate validates and applies one goal change. On rejection the
// overlay is untouched and the returned error carries the reason. On
// acceptance the update is applied and target increases walk up the parent
// chain, raising each parent whose effective target the child now exceeds.
// The walk terminates: each step requires a strict increase and the
// hierarchy is a bounded forest.
func (e *GoalEngine) ProposeUpdate(key domain.CanonicalKey, newGoal domain.Goal) (*domain.GoalUpdateResult, error) {
	if _, ok := e.reg.Get(key); !ok {
		return nil, domain.ErrInvalidRequest
	}
	if err := e.validate(key, newGoal); err != nil {
		return nil, err
	}

	next := e.goals.Clone()
	next[key] = newGoal
	e.goals = next

	var notices []domain.PropagationNotice
	current := key
	for {
		parent := e.reg.Parent(current)
		if parent == "" {
			break
		}
		childTarget := e.goals[current].Target
		if childTarget == nil {
			break
		}

		parentTarget := e.EffectiveTarget(parent)
		if parentTarget == nil || *childTarget <= *parentTarget {
			break
		}

		raised := *childTarget
		parentGoal := e.goals[parent]
		parentGoal.Target = &raised
		e.goals[parent] = parentGoal
		notices = append(notices, domain.PropagationNotice{
			Parent: parent,
			Child:  current,
			Target: raised,
		})
		current = parent
	}

	return &domain.GoalUpdateResult{Goals: e.goals.Clone(), Notices: notices}, nil
}

// validate applies the range and consistency rules in order; the first
// failure wins. Parents without a custom target are not checked here, only
// during propagation.
func (e *GoalEngine) validate(key domain.CanonicalKey, goal domain.Goal) error {
	target, min, max := goal.Target, goal.Min, goal.Max

	if min != nil && max != nil && *min > *max && (*min > 0 || *max > 0) {
		return &domain.GoalValidationError{Key: string(key), Reason: "Minimum cannot be greater than Maximum."}
	}
	if target != nil && min != nil && *target < *min && *target > 0 {
		return &domain.GoalValidationError{Key: string(key), Reason: "Target cannot be less than Minimum."}
	}
	if target != nil && max != nil && *target > *max && *max > 0 {
		return &domain.GoalValidationError{Key: string(key), Reason: "Target cannot be greater than Maximum."}
	}

	if parent := e.reg.Parent(key); parent != "" {
		if parentGoal, ok := e.goals[parent]; ok && parentGoal.Target != nil && target != nil && *target > *parentGoal.Target {
			return &domain.GoalValidationError{
				Key:    string(key),
				Reason: fmt.Sprintf("Cannot exceed %s target (%gg).", parent, *parentGoal.Target),
			}
		}
	}

	for _, child := range e.reg.Children(key) {
		childGoal, ok := e.goals[child]
		if !ok || childGoal.Target == nil || target == nil {
			continue
		}
		if *target < *childGoal.Target {
			return &domain.GoalValidationError{
				Key:    string(key),
				Reason: fmt.Sprintf("Cannot be less than %s target (%gg).", child, *childGoal.Target),
			}
		}
	}

	return nil
}

// ApplyMacroRatios replaces the four macro targets at once, bypassing the
// hierarchy walk: the editor produces an internally consistent set.
func (e *GoalEngine) ApplyMacroRatios(energy, carbs, protein, fat float64) domain.GoalSet {
	next := e.goals.Clone()
	next["energy"] = domain.Goal{Target: &energy}
	next["carbohydrate"] = domain.Goal{Target: &carbs}
	next["protein"] = domain.Goal{Target: &protein}
	next["fat"] = domain.Goal{Target: &fat}
	e.goals = next
	return next.Clone()
}

// GoalService owns the per-user goal engines and hands accepted sets to the
// persistence collaborator. Engines are created lazily on first use with the
// user's stored overlay.
type GoalService struct {
	reg  *registry.Registry
	repo domain.GoalRepository

	mu       sync.Mutex
	sessions map[string]*GoalEngine
}

// NewGoalService creates a goal service backed by a persistence repository.
func NewGoalService(reg *registry.Registry, repo domain.GoalRepository) *GoalService {
	return &GoalService{
		reg:      reg,
		repo:     repo,
		sessions: make(map[string]*GoalEngine),
	}
}

func (s *GoalService) engine(ctx context.Context, userID string, metrics *domain.DRIMetrics) (*GoalEngine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if eng, ok := s.sessions[userID]; ok {
		eng.metrics = metrics
		return eng, nil
	}

	initial, err := s.repo.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading goals for %s: %w", userID, err)
	}
	eng := NewGoalEngine(s.reg, metrics, initial)
	s.sessions[userID] = eng
	return eng, nil
}

// Goals returns the user's current overlay.
func (s *GoalService) Goals(ctx context.Context, userID string, metrics *domain.DRIMetrics) (domain.GoalSet, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	eng, err := s.engine(ctx, userID, metrics)
	if err != nil {
		return nil, err
	}
	return eng.Goals(), nil
}

// UpdateGoal runs one validated update and persists the accepted set.
func (s *GoalService) UpdateGoal(
	ctx context.Context,
	userID string,
	metrics *domain.DRIMetrics,
	key domain.CanonicalKey,
	goal domain.Goal,
) (*domain.GoalUpdateResult, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	eng, err := s.engine(ctx, userID, metrics)
	if err != nil {
		return nil, err
	}

	result, err := eng.ProposeUpdate(key, goal)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, userID, result.Goals); err != nil {
		// The session overlay is already updated; surface the storage
		// failure so the caller can retry.
		log.Printf("[GOALS] persist failed for %s: %v", userID, err)
		return nil, fmt.Errorf("saving goals: %w", err)
	}
	return result, nil
}

// ApplyMacroRatios stores the macro editor's output for the user.
func (s *GoalService) ApplyMacroRatios(
	ctx context.Context,
	userID string,
	metrics *domain.DRIMetrics,
	energy, carbs, protein, fat float64,
) (domain.GoalSet, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	eng, err := s.engine(ctx, userID, metrics)
	if err != nil {
		return nil, err
	}

	goals := eng.ApplyMacroRatios(energy, carbs, protein, fat)
	if err := s.repo.Save(ctx, userID, goals); err != nil {
		return nil, fmt.Errorf("saving goals: %w", err)
	}
	return goals, nil
}
