package domain

import "errors"

var (
	// ErrFoodNotFound is returned when a food cannot be found in any store
	ErrFoodNotFound = errors.New("food not found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrStoreFailure is returned when a backing food store request fails
	ErrStoreFailure = errors.New("food store request failed")

	// ErrUnauthorized is returned when an operation requires a user session
	ErrUnauthorized = errors.New("user session required")
)

// GoalValidationError is a recoverable rejection of a proposed goal update.
// The reason is human-readable and safe to surface to the caller; the goal
// overlay is left untouched when one is returned.
type GoalValidationError struct {
	Key    string
	Reason string
}

func (e *GoalValidationError) Error() string {
	return e.Reason
}

// AsGoalValidation returns the goal validation rejection carried by err, or
// nil when err is not one.
func AsGoalValidation(err error) *GoalValidationError {
	var ve *GoalValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
