package repository

import (
	"context"

	"barangay-reservation/internal/domain/reservation"
	"barangay-reservation/internal/infra"
	"barangay-reservation/internal/infra/query"
	"barangay-reservation/internal/infra/repository/converter"
)

type StatusHistoryWriteQueries interface {
	InsertStatusHistory(ctx context.Context, db query.DBTX, arg query.StatusHistory) error
}

type StatusHistoryRepository struct {
	queries StatusHistoryWriteQueries
	db      query.DBTX
}

func NewStatusHistoryRepository(queries StatusHistoryWriteQueries, db query.DBTX) *StatusHistoryRepository {
	return &StatusHistoryRepository{
		queries: queries,
		db:      db,
	}
}

func (r *StatusHistoryRepository) Append(ctx context.Context, entry reservation.HistoryEntry) error {
	if err := r.queries.InsertStatusHistory(ctx, r.db, converter.HistoryToInsert(entry)); err != nil {
		return infra.WrapRepoErr("failed to append status history", err)
	}
	return nil
}
