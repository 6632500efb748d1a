package queries

import (
	"context"
	"time"

	"barangay-reservation/internal/domain/reservation"
	"barangay-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, after *Keyset, limit int32) ([]*ReservationListItem, error)
	List(ctx context.Context, status *string, after *Keyset, limit int32) ([]*ReservationListItem, error)
	History(ctx context.Context, reservationID uuid.UUID) ([]*HistoryView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actor reservation.Actor, id uuid.UUID) (*ReservationView, error)
	ListMine(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
	ListAll(ctx context.Context, actor reservation.Actor, status *reservation.Status, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
	History(ctx context.Context, actor reservation.Actor, id uuid.UUID) ([]*HistoryView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

// GetByID hides reservations the actor may not see behind ErrNotFound.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor reservation.Actor, id uuid.UUID) (*ReservationView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	if !actor.IsAdmin() && v.UserID != actor.ID {
		return nil, errs.ErrNotFound
	}
	return v, nil
}

func (q *reservationQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)

	rows, err := q.store.ListByUser(ctx, userID, after, int32(limit+1))
	if err != nil {
		return nil, nil, translate(err)
	}
	rows, next := paginate(rows, limit, listItemKey)
	return rows, next, nil
}

func (q *reservationQueriesImpl) ListAll(ctx context.Context, actor reservation.Actor, status *reservation.Status, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	if !actor.IsAdmin() {
		return nil, nil, errs.ErrNotFound
	}
	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)

	var filter *string
	if status != nil {
		s := status.String()
		filter = &s
	}
	rows, err := q.store.List(ctx, filter, after, int32(limit+1))
	if err != nil {
		return nil, nil, translate(err)
	}
	rows, next := paginate(rows, limit, listItemKey)
	return rows, next, nil
}

// History returns the timeline oldest first.
func (q *reservationQueriesImpl) History(ctx context.Context, actor reservation.Actor, id uuid.UUID) ([]*HistoryView, error) {
	if _, err := q.GetByID(ctx, actor, id); err != nil {
		return nil, err
	}
	rows, err := q.store.History(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

func listItemKey(r *ReservationListItem) (time.Time, uuid.UUID) {
	return r.CreatedAt, r.ID
}
