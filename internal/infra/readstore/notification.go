package readstore

import (
	"context"

	"barangay-reservation/internal/infra"
	"barangay-reservation/internal/infra/query"
	"barangay-reservation/internal/pkg/pgconv"
	"barangay-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationViewQueries interface {
	ListNotificationsByUser(ctx context.Context, db query.DBTX, arg query.ListNotificationsByUserParams) ([]query.Notification, error)
	CountUnreadNotifications(ctx context.Context, db query.DBTX, userID uuid.UUID) (int64, error)
}

type NotificationReadStore struct {
	queries NotificationViewQueries
	db      query.DBTX
}

func NewNotificationReadStore(queries NotificationViewQueries, db query.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationReadStore) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int32) ([]*queries.NotificationView, error) {
	rows, err := r.queries.ListNotificationsByUser(ctx, r.db, query.ListNotificationsByUserParams{
		UserID:     userID,
		UnreadOnly: unreadOnly,
		Limit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}

	result := make([]*queries.NotificationView, len(rows))
	for i, row := range rows {
		result[i] = &queries.NotificationView{
			ID:        row.ID,
			Message:   row.Message,
			Link:      row.Link,
			IsRead:    row.IsRead,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *NotificationReadStore) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := r.queries.CountUnreadNotifications(ctx, r.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count unread notifications", err)
	}
	return n, nil
}
