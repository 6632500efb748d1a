package gateway

import (
	"context"
	"log/slog"

	"barangay-reservation/internal/pkg/errs"
	"barangay-reservation/internal/usecase/commands"
)

var ErrUploadsDisabled = errs.New("file uploads are not configured")

// LogSMSGateway stands in when SMS is disabled.
type LogSMSGateway struct{}

func (LogSMSGateway) Send(ctx context.Context, contactNumber, message string) error {
	slog.InfoContext(ctx, "SMS disabled, message not sent", "to", contactNumber, "message", message)
	return nil
}

type NoopEventPublisher struct{}

func (NoopEventPublisher) Publish(ctx context.Context, event commands.Event) error {
	slog.DebugContext(ctx, "event publishing disabled", "type", event.Type, "reservation_id", event.ReservationID)
	return nil
}

// DisabledFileStore rejects every upload; commits that carry a payment proof
// fail validation instead of silently dropping the file.
type DisabledFileStore struct{}

func (DisabledFileStore) Store(ctx context.Context, file commands.FileUpload, category string) (string, error) {
	return "", ErrUploadsDisabled
}
