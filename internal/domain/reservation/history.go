package reservation

import (
	"time"

	"github.com/google/uuid"
)

const SubmittedNote = "Reservation submitted"

// HistoryEntry is one append-only row of the status timeline. PaymentStatus
// is set only for payment decisions.
type HistoryEntry struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	Status        Status
	PaymentStatus *PaymentStatus
	Notes         string
	ByUserID      *uuid.UUID
	ByAdminID     *uuid.UUID
	CreatedAt     time.Time
}

func newHistoryEntry(r *Reservation, actor Actor, notes string, now time.Time) HistoryEntry {
	byUser, byAdmin := actor.Attribution()
	return HistoryEntry{
		ID:            uuid.New(),
		ReservationID: r.id,
		Status:        r.status,
		Notes:         notes,
		ByUserID:      byUser,
		ByAdminID:     byAdmin,
		CreatedAt:     now,
	}
}

// SubmittedEntry is the first history row, attributed to the owner.
func SubmittedEntry(r *Reservation) HistoryEntry {
	return newHistoryEntry(r, Actor{ID: r.userID}, SubmittedNote, r.createdAt)
}

// StatusEntry records the reservation's current status after a transition.
func StatusEntry(r *Reservation, actor Actor, notes string) HistoryEntry {
	return newHistoryEntry(r, actor, notes, r.updatedAt)
}

// PaymentEntry records a payment decision together with the status it left
// the reservation in, so the timeline alone shows a rejection.
func PaymentEntry(r *Reservation, actor Actor, notes string) HistoryEntry {
	e := newHistoryEntry(r, actor, notes, r.updatedAt)
	ps := r.paymentStatus
	e.PaymentStatus = &ps
	if e.Notes == "" {
		if ps == PaymentRejected {
			e.Notes = "Payment rejected"
		} else {
			e.Notes = "Payment confirmed"
		}
	}
	return e
}
