package reservation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus          = errors.New("invalid reservation status")
	ErrInvalidPaymentDecision = errors.New("invalid payment decision")
	ErrInvalidTimeWindow      = errors.New("start must be before end")
	ErrActorNotPermitted      = errors.New("actor is not permitted to act on this reservation")
	ErrEmptyDraft             = errors.New("draft has no items")
)

// ValidationError carries every problem found in one submission.
// Problems are *FieldError or *ResourceUnavailableError values.
type ValidationError struct {
	Problems []error
}

func (e *ValidationError) Error() string {
	return "reservation is invalid: " + strings.Join(e.Messages(), "; ")
}

func (e *ValidationError) Unwrap() []error {
	return e.Problems
}

func (e *ValidationError) Messages() []string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Error()
	}
	return msgs
}

func (e *ValidationError) add(err error) {
	e.Problems = append(e.Problems, err)
}

func (e *ValidationError) orNil() error {
	if len(e.Problems) == 0 {
		return nil
	}
	return e
}

// NewValidationError wraps problems, returning nil when there are none.
func NewValidationError(problems ...error) error {
	v := &ValidationError{}
	for _, p := range problems {
		if p != nil {
			v.add(p)
		}
	}
	return v.orNil()
}

type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

func NewFieldError(field, msg string) *FieldError {
	return &FieldError{Field: field, Message: msg}
}

type UnavailableReason string

const (
	ReasonNotBookable          UnavailableReason = "not_bookable"
	ReasonInvalidQuantity      UnavailableReason = "invalid_quantity"
	ReasonExceedsBookingCap    UnavailableReason = "exceeds_booking_cap"
	ReasonInsufficientQuantity UnavailableReason = "insufficient_quantity"
	ReasonTimeConflict         UnavailableReason = "time_conflict"
)

type ResourceUnavailableError struct {
	ResourceID uuid.UUID
	Name       string
	Reason     UnavailableReason
	Requested  int
	Available  int
	Limit      int
}

func (e *ResourceUnavailableError) Error() string {
	switch e.Reason {
	case ReasonNotBookable:
		return fmt.Sprintf("%s is not available for booking", e.Name)
	case ReasonInvalidQuantity:
		return fmt.Sprintf("%s: invalid quantity %d", e.Name, e.Requested)
	case ReasonExceedsBookingCap:
		return fmt.Sprintf("%s: at most %d per reservation (requested %d)", e.Name, e.Limit, e.Requested)
	case ReasonInsufficientQuantity:
		return fmt.Sprintf("%s: only %d available (requested %d)", e.Name, e.Available, e.Requested)
	case ReasonTimeConflict:
		return fmt.Sprintf("%s is already reserved for the selected schedule", e.Name)
	default:
		return fmt.Sprintf("%s is unavailable", e.Name)
	}
}

type InvalidTransitionError struct {
	Field string // "status" or "payment_status"
	From  string
	To    string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot change %s from %s to %s", e.Field, e.From, e.To)
}

func invalidStatusTransition(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{Field: "status", From: from.String(), To: to.String()}
}
