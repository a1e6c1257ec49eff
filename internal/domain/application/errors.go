package application

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("application not found")
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrMissingFields     = errors.New("application is missing required fields")
	ErrMissingOutcome    = errors.New("review outcome is required")
	ErrMissingReason     = errors.New("rejection reason is required")
	ErrFeeUnpaid         = errors.New("application fee has not been paid")
)

// InvalidTransitionError carries the attempted move so callers can render an
// actionable message. errors.Is(err, ErrInvalidTransition) matches it.
type InvalidTransitionError struct {
	ApplicationID string
	From, To      Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("application %s: cannot move %s -> %s", e.ApplicationID, e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool { return target == ErrInvalidTransition }

func NewInvalidTransition(applicationID string, from, to Status) error {
	return &InvalidTransitionError{ApplicationID: applicationID, From: from, To: to}
}
