package commands

import (
	"context"
	"io"
	"time"

	"barangay-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

// DraftStore keeps drafts between the review and payment steps.
// Get returns (nil, nil) for a missing or expired draft.
type DraftStore interface {
	Save(ctx context.Context, draft *reservation.Draft, ttl time.Duration) error
	Get(ctx context.Context, id uuid.UUID) (*reservation.Draft, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

const FileCategoryPaymentProof = "payment_proofs"

// FileStore persists an upload and returns the reference to keep on record.
type FileStore interface {
	Store(ctx context.Context, file FileUpload, category string) (string, error)
}

// SMSGateway is best-effort; callers log failures and move on.
type SMSGateway interface {
	Send(ctx context.Context, contactNumber, message string) error
}

const (
	EventReservationSubmitted      = "reservation.submitted"
	EventReservationStatusChanged  = "reservation.status_changed"
	EventReservationPaymentDecided = "reservation.payment_decided"
)

type Event struct {
	Type          string     `json:"type"`
	ReservationID uuid.UUID  `json:"reservation_id"`
	UserID        uuid.UUID  `json:"user_id"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"payment_status"`
	ActorID       *uuid.UUID `json:"actor_id,omitempty"`
	OccurredAt    time.Time  `json:"occurred_at"`
}

// EventPublisher announces committed changes. Publishing happens after
// commit and never affects the outcome of the command.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

type NotificationSink interface {
	Notify(ctx context.Context, userID uuid.UUID, message, link string) error
	NotifyAllAdmins(ctx context.Context, message, link string) error
}

type Options struct {
	Policy     reservation.Policy
	Location   *time.Location
	SMSTimeout time.Duration
}

func (o Options) location() *time.Location {
	if o.Location == nil {
		return time.UTC
	}
	return o.Location
}

func (o Options) smsTimeout() time.Duration {
	if o.SMSTimeout <= 0 {
		return 10 * time.Second
	}
	return o.SMSTimeout
}
