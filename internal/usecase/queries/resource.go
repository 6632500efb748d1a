package queries

import (
	"context"

	"barangay-reservation/internal/domain/resource"

	"github.com/google/uuid"
)

type ResourceReadStore interface {
	// ListActive returns active resources with their held quantity filled in.
	ListActive(ctx context.Context, category *string) ([]*ResourceView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
}

type ResourceQueries interface {
	ListAvailable(ctx context.Context, category *resource.Category) ([]*ResourceView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
}

type resourceQueriesImpl struct {
	store ResourceReadStore
}

func NewResourceQueries(store ResourceReadStore) ResourceQueries {
	return &resourceQueriesImpl{store: store}
}

func (q *resourceQueriesImpl) ListAvailable(ctx context.Context, category *resource.Category) ([]*ResourceView, error) {
	var filter *string
	if category != nil {
		c := category.String()
		filter = &c
	}
	rows, err := q.store.ListActive(ctx, filter)
	if err != nil {
		return nil, translate(err)
	}
	for _, r := range rows {
		fillAvailable(r)
	}
	return rows, nil
}

func (q *resourceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ResourceView, error) {
	r, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	fillAvailable(r)
	return r, nil
}

func fillAvailable(r *ResourceView) {
	if r.Category != resource.CategoryEquipment.String() {
		r.AvailableQuantity = r.Quantity
		return
	}
	r.AvailableQuantity = max(r.Quantity-r.HeldQuantity, 0)
}
