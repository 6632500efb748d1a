package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const resourceColumns = `r.id, r.name, r.category, r.quantity, r.status, r.availability, r.requires_payment,
       (r.payment_amount * 100)::bigint AS payment_amount_centavos, r.max_per_booking, r.created_at, r.updated_at`

const heldQuantityExpr = `COALESCE((
           SELECT SUM(ri.quantity)
           FROM reservation_items ri
           JOIN reservations rv ON rv.id = ri.reservation_id
           WHERE ri.resource_id = r.id AND rv.status = ANY($1::text[])
       ), 0)::bigint AS held_quantity`

func scanResource(row interface{ Scan(...any) error }, r *Resource, extra ...any) error {
	dest := []any{
		&r.ID,
		&r.Name,
		&r.Category,
		&r.Quantity,
		&r.Status,
		&r.Availability,
		&r.RequiresPayment,
		&r.PaymentAmountCentavos,
		&r.MaxPerBooking,
		&r.CreatedAt,
		&r.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

const listActiveResources = `-- name: ListActiveResources :many
SELECT ` + resourceColumns + `,
       ` + heldQuantityExpr + `
FROM resources r
WHERE r.status = 'active'
  AND ($2::text IS NULL OR r.category = $2::text)
ORDER BY r.category, r.name
`

type ListActiveResourcesParams struct {
	ActiveStatuses []string
	Category       pgtype.Text
}

func (q *Queries) ListActiveResources(ctx context.Context, db DBTX, arg ListActiveResourcesParams) ([]ResourceWithHoldRow, error) {
	rows, err := db.Query(ctx, listActiveResources, arg.ActiveStatuses, arg.Category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ResourceWithHoldRow
	for rows.Next() {
		var i ResourceWithHoldRow
		if err := scanResource(rows, &i.Resource, &i.HeldQuantity); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getResourceWithHold = `-- name: GetResourceWithHold :one
SELECT ` + resourceColumns + `,
       ` + heldQuantityExpr + `
FROM resources r
WHERE r.id = $2
`

type GetResourceWithHoldParams struct {
	ActiveStatuses []string
	ID             uuid.UUID
}

func (q *Queries) GetResourceWithHold(ctx context.Context, db DBTX, arg GetResourceWithHoldParams) (ResourceWithHoldRow, error) {
	row := db.QueryRow(ctx, getResourceWithHold, arg.ActiveStatuses, arg.ID)
	var i ResourceWithHoldRow
	err := scanResource(row, &i.Resource, &i.HeldQuantity)
	return i, err
}

const getResourcesByIDs = `-- name: GetResourcesByIDs :many
SELECT ` + resourceColumns + `
FROM resources r
WHERE r.id = ANY($1::uuid[])
ORDER BY r.id
`

func (q *Queries) GetResourcesByIDs(ctx context.Context, db DBTX, ids []string) ([]Resource, error) {
	return q.listResources(ctx, db, getResourcesByIDs, ids)
}

// Locks are taken in id order so concurrent bookings of overlapping
// resource sets cannot deadlock.
const lockResourcesByIDs = `-- name: LockResourcesByIDs :many
SELECT ` + resourceColumns + `
FROM resources r
WHERE r.id = ANY($1::uuid[])
ORDER BY r.id
FOR UPDATE
`

func (q *Queries) LockResourcesByIDs(ctx context.Context, db DBTX, ids []string) ([]Resource, error) {
	return q.listResources(ctx, db, lockResourcesByIDs, ids)
}

func (q *Queries) listResources(ctx context.Context, db DBTX, sql string, ids []string) ([]Resource, error) {
	rows, err := db.Query(ctx, sql, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Resource
	for rows.Next() {
		var i Resource
		if err := scanResource(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const sumHeldQuantity = `-- name: SumHeldQuantity :one
SELECT COALESCE(SUM(ri.quantity), 0)::bigint
FROM reservation_items ri
JOIN reservations rv ON rv.id = ri.reservation_id
WHERE ri.resource_id = $1 AND rv.status = ANY($2::text[])
`

type SumHeldQuantityParams struct {
	ResourceID     uuid.UUID
	ActiveStatuses []string
}

func (q *Queries) SumHeldQuantity(ctx context.Context, db DBTX, arg SumHeldQuantityParams) (int64, error) {
	row := db.QueryRow(ctx, sumHeldQuantity, arg.ResourceID, arg.ActiveStatuses)
	var held int64
	err := row.Scan(&held)
	return held, err
}

// Closed-interval overlap: existing.start <= new.end AND existing.end >= new.start.
const countOverlappingReservations = `-- name: CountOverlappingReservations :one
SELECT COUNT(DISTINCT rv.id)
FROM reservations rv
JOIN reservation_items ri ON ri.reservation_id = rv.id
WHERE ri.resource_id = $1
  AND rv.status <> 'cancelled'
  AND rv.start_datetime <= $3
  AND rv.end_datetime >= $2
`

type CountOverlappingReservationsParams struct {
	ResourceID uuid.UUID
	Start      pgtype.Timestamptz
	End        pgtype.Timestamptz
}

func (q *Queries) CountOverlappingReservations(ctx context.Context, db DBTX, arg CountOverlappingReservationsParams) (int64, error) {
	row := db.QueryRow(ctx, countOverlappingReservations, arg.ResourceID, arg.Start, arg.End)
	var n int64
	err := row.Scan(&n)
	return n, err
}
