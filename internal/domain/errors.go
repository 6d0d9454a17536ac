package domain

import "fmt"

// ValidationError represents malformed, missing, or out-of-range input.
// It is raised before any storage access.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// Is enables errors.Is matching on ValidationError.
func (e ValidationError) Is(target error) bool {
	_, ok := target.(ValidationError)
	if ok {
		return true
	}
	_, ok = target.(*ValidationError)
	return ok
}

// NotFoundError represents a missing resource.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// AuthorizationError represents a caller lacking the required role or ownership.
type AuthorizationError struct {
	Reason string
}

func (e AuthorizationError) Error() string {
	if e.Reason == "" {
		return "forbidden"
	}
	return fmt.Sprintf("forbidden: %s", e.Reason)
}

// Is enables errors.Is matching on AuthorizationError.
func (e AuthorizationError) Is(target error) bool {
	_, ok := target.(AuthorizationError)
	if ok {
		return true
	}
	_, ok = target.(*AuthorizationError)
	return ok
}

// StateError represents a transition that is illegal from the entity's
// current state.
type StateError struct {
	Entity string
	Reason string
}

func (e StateError) Error() string {
	if e.Entity == "" {
		return fmt.Sprintf("illegal state transition: %s", e.Reason)
	}
	return fmt.Sprintf("illegal state transition on %s: %s", e.Entity, e.Reason)
}

// Is enables errors.Is matching on StateError.
func (e StateError) Is(target error) bool {
	_, ok := target.(StateError)
	if ok {
		return true
	}
	_, ok = target.(*StateError)
	return ok
}

// ConflictError represents a uniqueness or one-outstanding invariant that
// would be violated by the requested operation.
type ConflictError struct {
	Reason string
}

func (e ConflictError) Error() string {
	if e.Reason == "" {
		return "conflict"
	}
	return fmt.Sprintf("conflict: %s", e.Reason)
}

// Is enables errors.Is matching on ConflictError.
func (e ConflictError) Is(target error) bool {
	_, ok := target.(ConflictError)
	if ok {
		return true
	}
	_, ok = target.(*ConflictError)
	return ok
}

// Sentinel errors for errors.Is matching.
var (
	ErrValidation = ValidationError{}
	ErrNotFound   = NotFoundError{}
	ErrForbidden  = AuthorizationError{}
	ErrState      = StateError{}
	ErrConflict   = ConflictError{}
)
