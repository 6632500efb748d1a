package reservation

import (
	"time"

	"github.com/google/uuid"
)

type Reservation struct {
	id            uuid.UUID
	userID        uuid.UUID
	location      Location
	window        TimeWindow
	status        Status
	paymentStatus PaymentStatus
	paymentProof  *string
	notes         string
	items         []Item
	createdAt     time.Time
	updatedAt     time.Time
}

// NewFromDraft creates the pending reservation a draft describes.
func NewFromDraft(d *Draft, paymentProof *string, now time.Time) (*Reservation, error) {
	if len(d.Items) == 0 {
		return nil, ErrEmptyDraft
	}
	window, err := d.Window()
	if err != nil {
		return nil, err
	}

	paymentStatus := PaymentNotRequired
	if d.RequiresPayment {
		paymentStatus = PaymentPending
	}

	items := make([]Item, len(d.Items))
	for i, it := range d.Items {
		items[i] = Item{ResourceID: it.ResourceID, Quantity: it.Quantity}
	}

	return &Reservation{
		id:            uuid.New(),
		userID:        d.UserID,
		location:      d.Location,
		window:        window,
		status:        StatusPending,
		paymentStatus: paymentStatus,
		paymentProof:  paymentProof,
		notes:         d.Notes,
		items:         items,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func Reconstruct(
	id, userID uuid.UUID,
	location Location,
	window TimeWindow,
	status Status,
	paymentStatus PaymentStatus,
	paymentProof *string,
	notes string,
	items []Item,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		userID:        userID,
		location:      location,
		window:        window,
		status:        status,
		paymentStatus: paymentStatus,
		paymentProof:  paymentProof,
		notes:         notes,
		items:         items,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID                { return r.id }
func (r *Reservation) UserID() uuid.UUID            { return r.userID }
func (r *Reservation) Location() Location           { return r.location }
func (r *Reservation) Window() TimeWindow           { return r.window }
func (r *Reservation) Status() Status               { return r.status }
func (r *Reservation) PaymentStatus() PaymentStatus { return r.paymentStatus }
func (r *Reservation) PaymentProof() *string        { return r.paymentProof }
func (r *Reservation) Notes() string                { return r.notes }
func (r *Reservation) Items() []Item                { return r.items }
func (r *Reservation) CreatedAt() time.Time         { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time         { return r.updatedAt }

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

// VisibleTo reports whether actor may see the reservation at all.
func (r *Reservation) VisibleTo(actor Actor) bool {
	return actor.IsAdmin() || r.IsOwnedBy(actor.ID)
}

// Transition moves the reservation to a new status on behalf of actor.
// Residents may only cancel their own pending reservation. On error the
// reservation is left unchanged.
func (r *Reservation) Transition(to Status, actor Actor, now time.Time) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	if !r.VisibleTo(actor) {
		return ErrActorNotPermitted
	}
	if !actor.IsAdmin() && (to != StatusCancelled || r.status != StatusPending) {
		return invalidStatusTransition(r.status, to)
	}
	if !CanTransition(r.status, to) {
		return invalidStatusTransition(r.status, to)
	}
	r.status = to
	r.updatedAt = now
	return nil
}

// DecidePayment records an admin decision on a pending payment. A
// rejection cancels the reservation in the same step.
func (r *Reservation) DecidePayment(decision PaymentDecision, actor Actor, now time.Time) error {
	if !actor.IsAdmin() {
		return ErrActorNotPermitted
	}
	if decision != DecisionPaid && decision != DecisionReject {
		return ErrInvalidPaymentDecision
	}
	if r.paymentStatus != PaymentPending {
		return &InvalidTransitionError{
			Field: "payment_status",
			From:  r.paymentStatus.String(),
			To:    decision.PaymentStatus().String(),
		}
	}

	status := r.status
	if decision == DecisionReject && r.status != StatusCancelled {
		if !CanTransition(r.status, StatusCancelled) {
			return invalidStatusTransition(r.status, StatusCancelled)
		}
		status = StatusCancelled
	}

	r.paymentStatus = decision.PaymentStatus()
	r.status = status
	r.updatedAt = now
	return nil
}
