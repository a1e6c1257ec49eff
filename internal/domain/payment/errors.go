package payment

import (
	"errors"
	"fmt"
)

var (
	ErrRequestNotFound     = errors.New("payment request not found")
	ErrTransactionNotFound = errors.New("payment transaction not found")
	ErrInvalidRequestState = errors.New("payment request not in an eligible status")
	ErrNotApproved         = errors.New("application is not approved")
	ErrEmptySettlement     = errors.New("settlement requires at least one payment request")
	ErrMixedPayers         = errors.New("settlement spans more than one payer")
	ErrInvalidPurpose      = errors.New("unknown payment request purpose")
	ErrNotDue              = errors.New("payment request is not past due")
)

// RequestStateError reports which request blocked an operation and why.
// errors.Is(err, ErrInvalidRequestState) matches it.
type RequestStateError struct {
	RequestID string
	Status    RequestStatus
	Wanted    RequestStatus
}

func (e *RequestStateError) Error() string {
	return fmt.Sprintf("payment request %s is %s, want %s", e.RequestID, e.Status, e.Wanted)
}

func (e *RequestStateError) Is(target error) bool { return target == ErrInvalidRequestState }

func NewRequestState(requestID string, status, wanted RequestStatus) error {
	return &RequestStateError{RequestID: requestID, Status: status, Wanted: wanted}
}
