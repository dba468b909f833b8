package domain

// Goal is one user override for a nutrient. All fields are optional; a goal
// with no fields set means "not customized" and falls back to the clinical
// baseline.
type Goal struct {
	Target *float64 `json:"target,omitempty"`
	Min    *float64 `json:"min,omitempty"`
	Max    *float64 `json:"max,omitempty"`
}

// GoalSet is the sparse per-user overlay of custom goals keyed by canonical
// nutrient key.
type GoalSet map[CanonicalKey]Goal

// Clone returns a shallow copy so an update can be staged without mutating
// the caller's set.
func (g GoalSet) Clone() GoalSet {
	next := make(GoalSet, len(g))
	for k, v := range g {
		next[k] = v
	}
	return next
}

// PropagationNotice describes one parent target that was auto-raised to stay
// consistent with a child's new target. Informational, never an error.
type PropagationNotice struct {
	Parent CanonicalKey `json:"parent"`
	Child  CanonicalKey `json:"child"`
	Target float64      `json:"target"`
}

// GoalUpdateResult is returned by an accepted goal update.
type GoalUpdateResult struct {
	Goals   GoalSet             `json:"goals"`
	Notices []PropagationNotice `json:"notices,omitempty"`
}
