package readstore

import (
	"context"

	"barangay-reservation/internal/infra"
	"barangay-reservation/internal/infra/query"
	"barangay-reservation/internal/pkg/pgconv"
	"barangay-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationViewQueries interface {
	GetReservationWithUser(ctx context.Context, db query.DBTX, id uuid.UUID) (query.ReservationWithUserRow, error)
	ListReservationItems(ctx context.Context, db query.DBTX, reservationID uuid.UUID) ([]query.ReservationItemDetailRow, error)
	ListReservationsByUser(ctx context.Context, db query.DBTX, arg query.ListReservationsByUserParams) ([]query.ReservationListRow, error)
	ListReservations(ctx context.Context, db query.DBTX, arg query.ListReservationsParams) ([]query.ReservationListRow, error)
	ListStatusHistory(ctx context.Context, db query.DBTX, reservationID uuid.UUID) ([]query.StatusHistoryRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      query.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db query.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationWithUser(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	items, err := r.queries.ListReservationItems(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation items", err)
	}

	view := rowToReservationView(row)
	view.Items = make([]queries.ReservationItemView, len(items))
	for i, it := range items {
		view.Items[i] = queries.ReservationItemView{
			ResourceID:   it.ResourceID,
			ResourceName: it.ResourceName,
			Category:     it.Category,
			Quantity:     int(it.Quantity),
		}
	}
	return view, nil
}

func rowToReservationView(row query.ReservationWithUserRow) *queries.ReservationView {
	res := row.Reservation
	return &queries.ReservationView{
		ID:            res.ID,
		UserID:        res.UserID,
		UserName:      row.UserName,
		Landmark:      res.Landmark,
		Address:       res.Address,
		Purok:         res.Purok,
		Start:         pgconv.TimeFromPgtype(res.StartDatetime),
		End:           pgconv.TimeFromPgtype(res.EndDatetime),
		Status:        res.Status,
		PaymentStatus: res.PaymentStatus,
		PaymentProof:  pgconv.StringPtrFromPgtype(res.PaymentProof),
		Notes:         res.Notes,
		CreatedAt:     pgconv.TimeFromPgtype(res.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(res.UpdatedAt),
	}
}

func (r *ReservationReadStore) ListByUser(ctx context.Context, userID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.ReservationListItem, error) {
	createdAt, lastID := keysetParams(after)
	rows, err := r.queries.ListReservationsByUser(ctx, r.db, query.ListReservationsByUserParams{
		UserID:         userID,
		AfterCreatedAt: createdAt,
		AfterID:        lastID,
		Limit:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}
	return toReservationListItems(rows), nil
}

func (r *ReservationReadStore) List(ctx context.Context, status *string, after *queries.Keyset, limit int32) ([]*queries.ReservationListItem, error) {
	createdAt, lastID := keysetParams(after)
	rows, err := r.queries.ListReservations(ctx, r.db, query.ListReservationsParams{
		Status:         pgconv.StringPtrToPgtype(status),
		AfterCreatedAt: createdAt,
		AfterID:        lastID,
		Limit:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return toReservationListItems(rows), nil
}

func (r *ReservationReadStore) History(ctx context.Context, reservationID uuid.UUID) ([]*queries.HistoryView, error) {
	rows, err := r.queries.ListStatusHistory(ctx, r.db, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list status history", err)
	}

	result := make([]*queries.HistoryView, len(rows))
	for i, row := range rows {
		h := row.History
		result[i] = &queries.HistoryView{
			ID:               h.ID,
			Status:           h.Status,
			PaymentStatus:    pgconv.StringPtrFromPgtype(h.PaymentStatus),
			Notes:            h.Notes,
			CreatedByUserID:  pgconv.UUIDPtrFromPgtype(h.CreatedByUserID),
			CreatedByAdminID: pgconv.UUIDPtrFromPgtype(h.CreatedByAdminID),
			ActorName:        pgconv.StringPtrFromPgtype(row.ActorName),
			CreatedAt:        pgconv.TimeFromPgtype(h.CreatedAt),
		}
	}
	return result, nil
}

// keysetParams maps a nil keyset to NULL parameters, which the list queries
// read as the first page.
func keysetParams(after *queries.Keyset) (pgtype.Timestamptz, pgtype.UUID) {
	if after == nil {
		return pgtype.Timestamptz{Valid: false}, pgtype.UUID{Valid: false}
	}
	return pgconv.TimeToPgtype(after.CreatedAt), pgconv.UUIDToPgtype(after.ID)
}

func toReservationListItems(rows []query.ReservationListRow) []*queries.ReservationListItem {
	result := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReservationListItem{
			ID:            row.ID,
			UserID:        row.UserID,
			UserName:      row.UserName,
			Start:         pgconv.TimeFromPgtype(row.StartDatetime),
			End:           pgconv.TimeFromPgtype(row.EndDatetime),
			Status:        row.Status,
			PaymentStatus: row.PaymentStatus,
			ItemCount:     int(row.ItemCount),
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result
}
