package query

import (
	"context"

	"github.com/google/uuid"
)

const insertNotification = `-- name: InsertNotification :exec
INSERT INTO notifications (id, user_id, message, link, is_read, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

func (q *Queries) InsertNotification(ctx context.Context, db DBTX, arg Notification) error {
	_, err := db.Exec(ctx, insertNotification, arg.ID, arg.UserID, arg.Message, arg.Link, arg.IsRead, arg.CreatedAt)
	return err
}

const listNotificationsByUser = `-- name: ListNotificationsByUser :many
SELECT id, user_id, message, link, is_read, created_at
FROM notifications
WHERE user_id = $1
  AND (NOT $2::boolean OR NOT is_read)
ORDER BY created_at DESC, id DESC
LIMIT $3
`

type ListNotificationsByUserParams struct {
	UserID     uuid.UUID
	UnreadOnly bool
	Limit      int32
}

func (q *Queries) ListNotificationsByUser(ctx context.Context, db DBTX, arg ListNotificationsByUserParams) ([]Notification, error) {
	rows, err := db.Query(ctx, listNotificationsByUser, arg.UserID, arg.UnreadOnly, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Notification
	for rows.Next() {
		var i Notification
		if err := rows.Scan(&i.ID, &i.UserID, &i.Message, &i.Link, &i.IsRead, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const markNotificationRead = `-- name: MarkNotificationRead :execrows
UPDATE notifications
SET is_read = TRUE
WHERE id = $1 AND user_id = $2
`

func (q *Queries) MarkNotificationRead(ctx context.Context, db DBTX, id, userID uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, markNotificationRead, id, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const countUnreadNotifications = `-- name: CountUnreadNotifications :one
SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND NOT is_read
`

func (q *Queries) CountUnreadNotifications(ctx context.Context, db DBTX, userID uuid.UUID) (int64, error) {
	row := db.QueryRow(ctx, countUnreadNotifications, userID)
	var n int64
	err := row.Scan(&n)
	return n, err
}
