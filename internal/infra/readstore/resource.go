package readstore

import (
	"context"

	"barangay-reservation/internal/domain/reservation"
	"barangay-reservation/internal/infra"
	"barangay-reservation/internal/infra/query"
	"barangay-reservation/internal/pkg/pgconv"
	"barangay-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ResourceViewQueries interface {
	ListActiveResources(ctx context.Context, db query.DBTX, arg query.ListActiveResourcesParams) ([]query.ResourceWithHoldRow, error)
	GetResourceWithHold(ctx context.Context, db query.DBTX, arg query.GetResourceWithHoldParams) (query.ResourceWithHoldRow, error)
}

type ResourceReadStore struct {
	queries ResourceViewQueries
	db      query.DBTX
}

func NewResourceReadStore(queries ResourceViewQueries, db query.DBTX) *ResourceReadStore {
	return &ResourceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ResourceReadStore) ListActive(ctx context.Context, category *string) ([]*queries.ResourceView, error) {
	params := query.ListActiveResourcesParams{
		ActiveStatuses: activeStatusStrings(),
		Category:       pgconv.StringPtrToPgtype(category),
	}

	rows, err := r.queries.ListActiveResources(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active resources", err)
	}

	views := make([]*queries.ResourceView, len(rows))
	for i, row := range rows {
		views[i] = toResourceView(row)
	}
	return views, nil
}

func (r *ResourceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ResourceView, error) {
	row, err := r.queries.GetResourceWithHold(ctx, r.db, query.GetResourceWithHoldParams{
		ActiveStatuses: activeStatusStrings(),
		ID:             id,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource by ID", err)
	}
	return toResourceView(row), nil
}

func toResourceView(row query.ResourceWithHoldRow) *queries.ResourceView {
	res := row.Resource
	return &queries.ResourceView{
		ID:              res.ID,
		Name:            res.Name,
		Category:        res.Category,
		Quantity:        int(res.Quantity),
		HeldQuantity:    int(row.HeldQuantity),
		Status:          res.Status,
		Availability:    res.Availability,
		RequiresPayment: res.RequiresPayment,
		PaymentAmount:   res.PaymentAmountCentavos,
		MaxPerBooking:   intPtr(res.MaxPerBooking),
		CreatedAt:       pgconv.TimeFromPgtype(res.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(res.UpdatedAt),
	}
}

func intPtr(v pgtype.Int4) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int32)
	return &n
}

// activeStatusStrings feeds the held-quantity subqueries.
func activeStatusStrings() []string {
	statuses := reservation.ActiveStatuses()
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
