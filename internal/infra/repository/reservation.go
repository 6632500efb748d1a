package repository

import (
	"context"

	"barangay-reservation/internal/domain/reservation"
	"barangay-reservation/internal/infra"
	"barangay-reservation/internal/infra/query"
	"barangay-reservation/internal/infra/repository/converter"
)

type ReservationWriteQueries interface {
	InsertReservation(ctx context.Context, db query.DBTX, arg query.InsertReservationParams) error
	InsertReservationItem(ctx context.Context, db query.DBTX, arg query.ReservationItem) error
	UpdateReservationStatus(ctx context.Context, db query.DBTX, arg query.UpdateReservationStatusParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      query.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db query.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	if err := r.queries.InsertReservation(ctx, r.db, converter.ReservationToInsert(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}

	for _, item := range converter.ReservationItemsToInsert(res) {
		if err := r.queries.InsertReservationItem(ctx, r.db, item); err != nil {
			return infra.WrapRepoErr("failed to create reservation item", err)
		}
	}

	return nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, res *reservation.Reservation) error {
	affected, err := r.queries.UpdateReservationStatus(ctx, r.db, converter.ReservationStatusToUpdate(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}
