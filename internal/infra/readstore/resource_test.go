//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"barangay-reservation/internal/infra"
	"barangay-reservation/internal/infra/query"
	"barangay-reservation/internal/infra/readstore"
	readstoremock "barangay-reservation/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResourceReadStore_ListActive(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockResourceViewQueries(ctrl)

	mockQueries.EXPECT().ListActiveResources(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.ListActiveResourcesParams) ([]query.ResourceWithHoldRow, error) {
			assert.Equal(t, []string{"pending", "approved", "for_delivery", "for_pickup"}, arg.ActiveStatuses)
			assert.Equal(t, pgtype.Text{String: "equipment", Valid: true}, arg.Category)
			return []query.ResourceWithHoldRow{
				{
					Resource: query.Resource{
						ID: uuid.New(), Name: "Monobloc Chairs", Category: "equipment", Quantity: 100,
						Status: "active", Availability: "available", PaymentAmountCentavos: 0,
						MaxPerBooking: pgtype.Int4{Int32: 50, Valid: true},
					},
					HeldQuantity: 40,
				},
			}, nil
		})

	category := "equipment"
	views, err := readstore.NewResourceReadStore(mockQueries, &mockDBTX{}).ListActive(ctx, &category)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, 40, views[0].HeldQuantity)
	require.NotNil(t, views[0].MaxPerBooking)
	assert.Equal(t, 50, *views[0].MaxPerBooking)
}

func TestResourceReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name       string
		rowErr     error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "found"},
		{name: "not found", rowErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "database error", rowErr: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockResourceViewQueries(ctrl)
			mockQueries.EXPECT().GetResourceWithHold(ctx, gomock.Any(), gomock.Any()).Return(query.ResourceWithHoldRow{
				Resource: query.Resource{ID: id, Name: "Covered Court", Category: "facility", Quantity: 1},
			}, tc.rowErr)

			view, err := readstore.NewResourceReadStore(mockQueries, &mockDBTX{}).FindByID(ctx, id)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, view.ID)
			assert.Nil(t, view.MaxPerBooking)
		})
	}
}
