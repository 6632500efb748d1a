package repository

import (
	"context"

	"barangay-reservation/internal/domain/notification"
	"barangay-reservation/internal/infra"
	"barangay-reservation/internal/infra/query"
	"barangay-reservation/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type NotificationWriteQueries interface {
	InsertNotification(ctx context.Context, db query.DBTX, arg query.Notification) error
	MarkNotificationRead(ctx context.Context, db query.DBTX, id, userID uuid.UUID) (int64, error)
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      query.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db query.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	if err := r.queries.InsertNotification(ctx, r.db, converter.NotificationToInsert(n)); err != nil {
		return infra.WrapRepoErr("failed to create notification", err)
	}
	return nil
}

// MarkRead is scoped to the owner; a foreign id reads as not found.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	affected, err := r.queries.MarkNotificationRead(ctx, r.db, id, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification read", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return nil
}
