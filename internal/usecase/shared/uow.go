package shared

import (
	"context"

	"barangay-reservation/internal/domain/notification"
	"barangay-reservation/internal/domain/reservation"
	"barangay-reservation/internal/domain/resource"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Serializable transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Tx exposes repositories bound to one transaction.
type Tx interface {
	Reservations() ReservationRepository
	History() StatusHistoryRepository
	Notifications() NotificationRepository
	Reads() CommandReads
}

// CommandReads serves the write side. Inside a transaction it also acts as
// the availability ledger for the in-transaction re-check.
type CommandReads interface {
	ResourcesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*resource.Resource, error)
	// LockResources takes row locks in id order and returns the locked rows.
	LockResources(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*resource.Resource, error)
	ReservationForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	HeldQuantity(ctx context.Context, resourceID uuid.UUID) (int, error)
	CountFacilityOverlaps(ctx context.Context, resourceID uuid.UUID, w reservation.TimeWindow) (int, error)
	AdminIDs(ctx context.Context) ([]uuid.UUID, error)
	// ContactNumber returns "" when the user has none on file.
	ContactNumber(ctx context.Context, userID uuid.UUID) (string, error)
}

type ReservationRepository interface {
	// Create inserts the reservation row and its items.
	Create(ctx context.Context, res *reservation.Reservation) error
	// UpdateStatus persists status, payment_status and updated_at.
	UpdateStatus(ctx context.Context, res *reservation.Reservation) error
}

type StatusHistoryRepository interface {
	Append(ctx context.Context, entry reservation.HistoryEntry) error
}

type NotificationRepository interface {
	Create(ctx context.Context, n *notification.Notification) error
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
}
