package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `rv.id, rv.user_id, rv.landmark, rv.address, rv.purok, rv.start_datetime, rv.end_datetime,
       rv.status, rv.payment_status, rv.payment_proof, rv.notes, rv.created_at, rv.updated_at`

func scanReservation(row interface{ Scan(...any) error }, r *Reservation, extra ...any) error {
	dest := []any{
		&r.ID,
		&r.UserID,
		&r.Landmark,
		&r.Address,
		&r.Purok,
		&r.StartDatetime,
		&r.EndDatetime,
		&r.Status,
		&r.PaymentStatus,
		&r.PaymentProof,
		&r.Notes,
		&r.CreatedAt,
		&r.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

const insertReservation = `-- name: InsertReservation :exec
INSERT INTO reservations (
    id, user_id, landmark, address, purok, start_datetime, end_datetime,
    status, payment_status, payment_proof, notes, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
`

type InsertReservationParams struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Landmark      string
	Address       string
	Purok         string
	StartDatetime pgtype.Timestamptz
	EndDatetime   pgtype.Timestamptz
	Status        string
	PaymentStatus string
	PaymentProof  pgtype.Text
	Notes         string
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

func (q *Queries) InsertReservation(ctx context.Context, db DBTX, arg InsertReservationParams) error {
	_, err := db.Exec(ctx, insertReservation,
		arg.ID,
		arg.UserID,
		arg.Landmark,
		arg.Address,
		arg.Purok,
		arg.StartDatetime,
		arg.EndDatetime,
		arg.Status,
		arg.PaymentStatus,
		arg.PaymentProof,
		arg.Notes,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const insertReservationItem = `-- name: InsertReservationItem :exec
INSERT INTO reservation_items (reservation_id, resource_id, quantity)
VALUES ($1, $2, $3)
`

func (q *Queries) InsertReservationItem(ctx context.Context, db DBTX, arg ReservationItem) error {
	_, err := db.Exec(ctx, insertReservationItem, arg.ReservationID, arg.ResourceID, arg.Quantity)
	return err
}

const getReservationForUpdate = `-- name: GetReservationForUpdate :one
SELECT ` + reservationColumns + `
FROM reservations rv
WHERE rv.id = $1
FOR UPDATE
`

func (q *Queries) GetReservationForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Reservation, error) {
	row := db.QueryRow(ctx, getReservationForUpdate, id)
	var i Reservation
	err := scanReservation(row, &i)
	return i, err
}

const getReservationWithUser = `-- name: GetReservationWithUser :one
SELECT ` + reservationColumns + `, u.full_name
FROM reservations rv
JOIN users u ON u.id = rv.user_id
WHERE rv.id = $1
`

func (q *Queries) GetReservationWithUser(ctx context.Context, db DBTX, id uuid.UUID) (ReservationWithUserRow, error) {
	row := db.QueryRow(ctx, getReservationWithUser, id)
	var i ReservationWithUserRow
	err := scanReservation(row, &i.Reservation, &i.UserName)
	return i, err
}

const listReservationItems = `-- name: ListReservationItems :many
SELECT ri.resource_id, r.name, r.category, ri.quantity
FROM reservation_items ri
JOIN resources r ON r.id = ri.resource_id
WHERE ri.reservation_id = $1
ORDER BY r.name
`

func (q *Queries) ListReservationItems(ctx context.Context, db DBTX, reservationID uuid.UUID) ([]ReservationItemDetailRow, error) {
	rows, err := db.Query(ctx, listReservationItems, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ReservationItemDetailRow
	for rows.Next() {
		var i ReservationItemDetailRow
		if err := rows.Scan(&i.ResourceID, &i.ResourceName, &i.Category, &i.Quantity); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateReservationStatus = `-- name: UpdateReservationStatus :execrows
UPDATE reservations
SET status = $2, payment_status = $3, updated_at = $4
WHERE id = $1
`

type UpdateReservationStatusParams struct {
	ID            uuid.UUID
	Status        string
	PaymentStatus string
	UpdatedAt     pgtype.Timestamptz
}

func (q *Queries) UpdateReservationStatus(ctx context.Context, db DBTX, arg UpdateReservationStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, updateReservationStatus, arg.ID, arg.Status, arg.PaymentStatus, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const reservationListColumns = `rv.id, rv.user_id, u.full_name, rv.start_datetime, rv.end_datetime, rv.status, rv.payment_status,
       (SELECT COUNT(*) FROM reservation_items ri WHERE ri.reservation_id = rv.id) AS item_count,
       rv.created_at`

const listReservationsByUser = `-- name: ListReservationsByUser :many
SELECT ` + reservationListColumns + `
FROM reservations rv
JOIN users u ON u.id = rv.user_id
WHERE rv.user_id = $1
  AND ($2::timestamptz IS NULL OR (rv.created_at, rv.id) < ($2::timestamptz, $3::uuid))
ORDER BY rv.created_at DESC, rv.id DESC
LIMIT $4
`

type ListReservationsByUserParams struct {
	UserID         uuid.UUID
	AfterCreatedAt pgtype.Timestamptz
	AfterID        pgtype.UUID
	Limit          int32
}

func (q *Queries) ListReservationsByUser(ctx context.Context, db DBTX, arg ListReservationsByUserParams) ([]ReservationListRow, error) {
	return q.listReservationRows(ctx, db, listReservationsByUser, arg.UserID, arg.AfterCreatedAt, arg.AfterID, arg.Limit)
}

const listReservations = `-- name: ListReservations :many
SELECT ` + reservationListColumns + `
FROM reservations rv
JOIN users u ON u.id = rv.user_id
WHERE ($1::text IS NULL OR rv.status = $1::text)
  AND ($2::timestamptz IS NULL OR (rv.created_at, rv.id) < ($2::timestamptz, $3::uuid))
ORDER BY rv.created_at DESC, rv.id DESC
LIMIT $4
`

type ListReservationsParams struct {
	Status         pgtype.Text
	AfterCreatedAt pgtype.Timestamptz
	AfterID        pgtype.UUID
	Limit          int32
}

func (q *Queries) ListReservations(ctx context.Context, db DBTX, arg ListReservationsParams) ([]ReservationListRow, error) {
	return q.listReservationRows(ctx, db, listReservations, arg.Status, arg.AfterCreatedAt, arg.AfterID, arg.Limit)
}

func (q *Queries) listReservationRows(ctx context.Context, db DBTX, sql string, args ...any) ([]ReservationListRow, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ReservationListRow
	for rows.Next() {
		var i ReservationListRow
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.UserName,
			&i.StartDatetime,
			&i.EndDatetime,
			&i.Status,
			&i.PaymentStatus,
			&i.ItemCount,
			&i.CreatedAt,
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
