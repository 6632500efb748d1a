package queries

import (
	"context"

	"github.com/google/uuid"
)

type NotificationReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int32) ([]*NotificationView, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}

type NotificationQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]*NotificationView, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]*NotificationView, error) {
	rows, err := q.store.ListByUser(ctx, userID, unreadOnly, int32(ValidateLimit(limit)))
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

func (q *notificationQueriesImpl) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := q.store.CountUnread(ctx, userID)
	if err != nil {
		return 0, translate(err)
	}
	return n, nil
}
