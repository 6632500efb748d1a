package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const listActiveAdminIDs = `-- name: ListActiveAdminIDs :many
SELECT id FROM users
WHERE role = 'admin' AND is_active
ORDER BY id
`

func (q *Queries) ListActiveAdminIDs(ctx context.Context, db DBTX) ([]uuid.UUID, error) {
	rows, err := db.Query(ctx, listActiveAdminIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

const getUserContactNumber = `-- name: GetUserContactNumber :one
SELECT contact_number FROM users WHERE id = $1
`

func (q *Queries) GetUserContactNumber(ctx context.Context, db DBTX, id uuid.UUID) (pgtype.Text, error) {
	row := db.QueryRow(ctx, getUserContactNumber, id)
	var contact pgtype.Text
	err := row.Scan(&contact)
	return contact, err
}
