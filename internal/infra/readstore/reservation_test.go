//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"barangay-reservation/internal/infra"
	"barangay-reservation/internal/infra/query"
	"barangay-reservation/internal/infra/readstore"
	"barangay-reservation/internal/usecase/queries"
	readstoremock "barangay-reservation/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func ts(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestReservationReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	reservationID := uuid.New()
	start := time.Date(2030, 3, 1, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockReservationViewQueries)
		expectKind infra.RepositoryErrorKind
		wantItems  int
	}{
		{
			name: "success: reservation with items",
			setupMock: func(m *readstoremock.MockReservationViewQueries) {
				m.EXPECT().GetReservationWithUser(ctx, gomock.Any(), reservationID).Return(query.ReservationWithUserRow{
					Reservation: query.Reservation{
						ID:            reservationID,
						UserID:        uuid.New(),
						Address:       "12 Mabini St",
						Purok:         "Purok 2",
						StartDatetime: ts(start),
						EndDatetime:   ts(start.Add(3 * time.Hour)),
						Status:        "pending",
						PaymentStatus: "pending",
						PaymentProof:  pgtype.Text{String: "payment_proofs/2030/03/x.jpg", Valid: true},
						CreatedAt:     ts(start.Add(-96 * time.Hour)),
						UpdatedAt:     ts(start.Add(-96 * time.Hour)),
					},
					UserName: "Juan Dela Cruz",
				}, nil)
				m.EXPECT().ListReservationItems(ctx, gomock.Any(), reservationID).Return([]query.ReservationItemDetailRow{
					{ResourceID: uuid.New(), ResourceName: "Covered Court", Category: "facility", Quantity: 1},
					{ResourceID: uuid.New(), ResourceName: "Monobloc Chairs", Category: "equipment", Quantity: 30},
				}, nil)
			},
			wantItems: 2,
		},
		{
			name: "error: reservation not found",
			setupMock: func(m *readstoremock.MockReservationViewQueries) {
				m.EXPECT().GetReservationWithUser(ctx, gomock.Any(), reservationID).Return(query.ReservationWithUserRow{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: items query fails",
			setupMock: func(m *readstoremock.MockReservationViewQueries) {
				m.EXPECT().GetReservationWithUser(ctx, gomock.Any(), reservationID).Return(query.ReservationWithUserRow{
					Reservation: query.Reservation{ID: reservationID},
				}, nil)
				m.EXPECT().ListReservationItems(ctx, gomock.Any(), reservationID).Return(nil, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
			store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			result, err := store.FindByID(ctx, reservationID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, reservationID, result.ID)
			assert.Equal(t, "Juan Dela Cruz", result.UserName)
			assert.Equal(t, start, result.Start)
			require.NotNil(t, result.PaymentProof)
			assert.Len(t, result.Items, tc.wantItems)
			assert.Equal(t, 30, result.Items[1].Quantity)
		})
	}
}

// =============================================================================
// Listing Tests
// =============================================================================

func TestReservationReadStore_ListByUser_Keyset(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	after := &queries.Keyset{CreatedAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), ID: uuid.New()}

	testCases := []struct {
		name      string
		after     *queries.Keyset
		wantParam query.ListReservationsByUserParams
	}{
		{
			name:  "first page sends NULL keyset",
			after: nil,
			wantParam: query.ListReservationsByUserParams{
				UserID: userID,
				Limit:  21,
			},
		},
		{
			name:  "next page sends last row position",
			after: after,
			wantParam: query.ListReservationsByUserParams{
				UserID:         userID,
				AfterCreatedAt: ts(after.CreatedAt),
				AfterID:        pgtype.UUID{Bytes: after.ID, Valid: true},
				Limit:          21,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)

			var got query.ListReservationsByUserParams
			mockQueries.EXPECT().ListReservationsByUser(ctx, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.ListReservationsByUserParams) ([]query.ReservationListRow, error) {
					got = arg
					return []query.ReservationListRow{{ID: uuid.New(), UserID: userID, ItemCount: 3, Status: "approved"}}, nil
				})

			store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})
			items, err := store.ListByUser(ctx, userID, tc.after, 21)

			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, 3, items[0].ItemCount)
			if diff := cmp.Diff(tc.wantParam, got); diff != "" {
				t.Errorf("params mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReservationReadStore_List_StatusFilter(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)

	mockQueries.EXPECT().ListReservations(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.ListReservationsParams) ([]query.ReservationListRow, error) {
			assert.Equal(t, pgtype.Text{String: "pending", Valid: true}, arg.Status)
			assert.False(t, arg.AfterCreatedAt.Valid)
			return nil, nil
		})

	status := "pending"
	items, err := readstore.NewReservationReadStore(mockQueries, &mockDBTX{}).List(ctx, &status, nil, 10)

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestReservationReadStore_History(t *testing.T) {
	ctx := context.Background()
	reservationID := uuid.New()
	adminID := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
	mockQueries.EXPECT().ListStatusHistory(ctx, gomock.Any(), reservationID).Return([]query.StatusHistoryRow{
		{
			History: query.StatusHistory{ID: uuid.New(), ReservationID: reservationID, Status: "pending", Notes: "Reservation submitted",
				CreatedByUserID: pgtype.UUID{Bytes: uuid.New(), Valid: true}},
			ActorName: pgtype.Text{String: "Juan Dela Cruz", Valid: true},
		},
		{
			History: query.StatusHistory{ID: uuid.New(), ReservationID: reservationID, Status: "cancelled",
				PaymentStatus: pgtype.Text{String: "reject", Valid: true}, Notes: "Payment rejected",
				CreatedByAdminID: pgtype.UUID{Bytes: adminID, Valid: true}},
		},
	}, nil)

	rows, err := readstore.NewReservationReadStore(mockQueries, &mockDBTX{}).History(ctx, reservationID)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Nil(t, rows[0].PaymentStatus)
	assert.Nil(t, rows[0].CreatedByAdminID)
	require.NotNil(t, rows[1].PaymentStatus)
	assert.Equal(t, "reject", *rows[1].PaymentStatus)
	assert.Equal(t, adminID, *rows[1].CreatedByAdminID)
	assert.Nil(t, rows[1].ActorName)
}
