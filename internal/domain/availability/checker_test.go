//go:build unit

package availability_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"barangay-reservation/internal/domain/availability"
	"barangay-reservation/internal/domain/reservation"
	"barangay-reservation/internal/domain/resource"
	"barangay-reservation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLedger struct {
	held          int
	overlaps      int
	err           error
	heldCalls     int
	overlapCalls  int
	checkedWindow *reservation.TimeWindow
}

func (l *stubLedger) HeldQuantity(context.Context, uuid.UUID) (int, error) {
	l.heldCalls++
	return l.held, l.err
}

func (l *stubLedger) CountFacilityOverlaps(_ context.Context, _ uuid.UUID, w reservation.TimeWindow) (int, error) {
	l.overlapCalls++
	l.checkedWindow = &w
	return l.overlaps, l.err
}

func window(t *testing.T) *reservation.TimeWindow {
	t.Helper()
	start := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	w, err := reservation.NewTimeWindow(start, start.Add(4*time.Hour))
	require.NoError(t, err)
	return &w
}

func TestChecker_Check(t *testing.T) {
	tests := []struct {
		name       string
		res        *builder.ResourceBuilder
		quantity   int
		held       int
		overlaps   int
		noWindow   bool
		wantReason reservation.UnavailableReason
		wantAvail  int
		wantLimit  int
	}{
		{name: "equipment within pool", res: builder.NewEquipmentBuilder(), quantity: 20, held: 30},
		{name: "equipment uses whole pool", res: builder.NewEquipmentBuilder(), quantity: 50},
		{
			name: "equipment over pool", res: builder.NewEquipmentBuilder(), quantity: 21, held: 30,
			wantReason: reservation.ReasonInsufficientQuantity, wantAvail: 20,
		},
		{
			name: "equipment pool overdrawn", res: builder.NewEquipmentBuilder(), quantity: 1, held: 60,
			wantReason: reservation.ReasonInsufficientQuantity, wantAvail: 0,
		},
		{
			name: "equipment over cap", res: builder.NewEquipmentBuilder().WithMaxPerBooking(10), quantity: 11,
			wantReason: reservation.ReasonExceedsBookingCap, wantLimit: 10,
		},
		{name: "equipment at cap", res: builder.NewEquipmentBuilder().WithMaxPerBooking(10), quantity: 10},
		{name: "zero quantity", res: builder.NewEquipmentBuilder(), quantity: 0, wantReason: reservation.ReasonInvalidQuantity},
		{
			name: "inactive resource", quantity: 1, wantReason: reservation.ReasonNotBookable,
			res: builder.NewEquipmentBuilder().With(func(b *builder.ResourceBuilder) { b.Status = resource.StatusInactive }),
		},
		{
			name: "under maintenance", quantity: 1, wantReason: reservation.ReasonNotBookable,
			res: builder.NewFacilityBuilder().With(func(b *builder.ResourceBuilder) { b.Availability = resource.AvailabilityMaintenance }),
		},
		{name: "facility free", res: builder.NewFacilityBuilder(), quantity: 1},
		{name: "facility booked", res: builder.NewFacilityBuilder(), quantity: 1, overlaps: 1, wantReason: reservation.ReasonTimeConflict},
		{name: "facility without window", res: builder.NewFacilityBuilder(), quantity: 1, overlaps: 1, noWindow: true},
		{name: "facility quantity above one", res: builder.NewFacilityBuilder(), quantity: 2, wantReason: reservation.ReasonInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := &stubLedger{held: tt.held, overlaps: tt.overlaps}
			res := tt.res.MustBuildDomain()
			w := window(t)
			if tt.noWindow {
				w = nil
			}

			err := availability.NewChecker(ledger).Check(context.Background(), res, tt.quantity, w)

			if tt.wantReason == "" {
				require.NoError(t, err)
				return
			}
			var unavailable *reservation.ResourceUnavailableError
			require.ErrorAs(t, err, &unavailable)
			assert.Equal(t, tt.wantReason, unavailable.Reason)
			assert.Equal(t, res.ID(), unavailable.ResourceID)
			assert.Equal(t, res.Name(), unavailable.Name)
			assert.Equal(t, tt.quantity, unavailable.Requested)
			assert.Equal(t, tt.wantAvail, unavailable.Available)
			assert.Equal(t, tt.wantLimit, unavailable.Limit)
		})
	}
}

func TestChecker_LedgerScope(t *testing.T) {
	t.Run("equipment ignores the window", func(t *testing.T) {
		ledger := &stubLedger{}
		err := availability.NewChecker(ledger).Check(context.Background(), builder.NewEquipmentBuilder().MustBuildDomain(), 1, window(t))
		require.NoError(t, err)
		assert.Equal(t, 1, ledger.heldCalls)
		assert.Zero(t, ledger.overlapCalls)
	})

	t.Run("facility checks the requested window", func(t *testing.T) {
		ledger := &stubLedger{}
		w := window(t)
		err := availability.NewChecker(ledger).Check(context.Background(), builder.NewFacilityBuilder().MustBuildDomain(), 1, w)
		require.NoError(t, err)
		assert.Zero(t, ledger.heldCalls)
		require.NotNil(t, ledger.checkedWindow)
		assert.Equal(t, *w, *ledger.checkedWindow)
	})

	t.Run("rule failures skip the ledger", func(t *testing.T) {
		ledger := &stubLedger{}
		err := availability.NewChecker(ledger).Check(context.Background(), builder.NewFacilityBuilder().MustBuildDomain(), 3, window(t))
		require.Error(t, err)
		assert.Zero(t, ledger.heldCalls+ledger.overlapCalls)
	})

	t.Run("ledger errors pass through", func(t *testing.T) {
		boom := errors.New("boom")
		ledger := &stubLedger{err: boom}
		err := availability.NewChecker(ledger).Check(context.Background(), builder.NewFacilityBuilder().MustBuildDomain(), 1, window(t))
		require.ErrorIs(t, err, boom)
	})
}
