package query

import (
	"context"

	"github.com/google/uuid"
)

const insertStatusHistory = `-- name: InsertStatusHistory :exec
INSERT INTO reservation_status_history (
    id, reservation_id, status, payment_status, notes, created_by_user_id, created_by_admin_id, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

func (q *Queries) InsertStatusHistory(ctx context.Context, db DBTX, arg StatusHistory) error {
	_, err := db.Exec(ctx, insertStatusHistory,
		arg.ID,
		arg.ReservationID,
		arg.Status,
		arg.PaymentStatus,
		arg.Notes,
		arg.CreatedByUserID,
		arg.CreatedByAdminID,
		arg.CreatedAt,
	)
	return err
}

const listStatusHistory = `-- name: ListStatusHistory :many
SELECT h.id, h.reservation_id, h.status, h.payment_status, h.notes,
       h.created_by_user_id, h.created_by_admin_id, h.created_at, u.full_name
FROM reservation_status_history h
LEFT JOIN users u ON u.id = COALESCE(h.created_by_admin_id, h.created_by_user_id)
WHERE h.reservation_id = $1
ORDER BY h.created_at, h.id
`

func (q *Queries) ListStatusHistory(ctx context.Context, db DBTX, reservationID uuid.UUID) ([]StatusHistoryRow, error) {
	rows, err := db.Query(ctx, listStatusHistory, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []StatusHistoryRow
	for rows.Next() {
		var i StatusHistoryRow
		if err := rows.Scan(
			&i.History.ID,
			&i.History.ReservationID,
			&i.History.Status,
			&i.History.PaymentStatus,
			&i.History.Notes,
			&i.History.CreatedByUserID,
			&i.History.CreatedByAdminID,
			&i.History.CreatedAt,
			&i.ActorName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
