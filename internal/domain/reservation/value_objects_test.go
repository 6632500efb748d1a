//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"barangay-reservation/internal/domain/reservation"
	"barangay-reservation/internal/domain/user"
	"barangay-reservation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWindow(t *testing.T, start, end time.Time) reservation.TimeWindow {
	t.Helper()
	w, err := reservation.NewTimeWindow(start, end)
	require.NoError(t, err)
	return w
}

func TestTimeWindow(t *testing.T) {
	base := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	hour := time.Hour

	t.Run("start must precede end", func(t *testing.T) {
		_, err := reservation.NewTimeWindow(base, base)
		require.ErrorIs(t, err, reservation.ErrInvalidTimeWindow)
		_, err = reservation.NewTimeWindow(base.Add(hour), base)
		require.ErrorIs(t, err, reservation.ErrInvalidTimeWindow)
	})

	t.Run("overlaps", func(t *testing.T) {
		w := mustWindow(t, base, base.Add(4*hour))
		tests := []struct {
			name       string
			start, end time.Time
			want       bool
		}{
			{"identical", base, base.Add(4 * hour), true},
			{"inside", base.Add(hour), base.Add(2 * hour), true},
			{"covers", base.Add(-hour), base.Add(5 * hour), true},
			{"tail", base.Add(3 * hour), base.Add(6 * hour), true},
			{"touching end", base.Add(4 * hour), base.Add(6 * hour), true},
			{"touching start", base.Add(-2 * hour), base, true},
			{"after", base.Add(4*hour + time.Minute), base.Add(6 * hour), false},
			{"before", base.Add(-3 * hour), base.Add(-time.Minute), false},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				other := mustWindow(t, tt.start, tt.end)
				assert.Equal(t, tt.want, w.Overlaps(other))
				assert.Equal(t, tt.want, other.Overlaps(w))
			})
		}
	})

	t.Run("lead time is strict", func(t *testing.T) {
		lead := 72 * hour
		now := base.Add(-lead)
		assert.False(t, mustWindow(t, base, base.Add(hour)).MeetsLeadTime(now, lead))
		assert.True(t, mustWindow(t, base.Add(time.Second), base.Add(hour)).MeetsLeadTime(now, lead))
		assert.False(t, mustWindow(t, base.Add(-time.Second), base.Add(hour)).MeetsLeadTime(now, lead))
	})
}

func TestLocationTrims(t *testing.T) {
	loc := reservation.NewLocation("  chapel ", "\t123 Mabini St. ", " Purok 3")
	assert.Equal(t, reservation.Location{Landmark: "chapel", Address: "123 Mabini St.", Purok: "Purok 3"}, loc)
}

func TestActorAttribution(t *testing.T) {
	id := uuid.New()

	byUser, byAdmin := reservation.NewActor(id, user.RoleResident).Attribution()
	require.NotNil(t, byUser)
	assert.Equal(t, id, *byUser)
	assert.Nil(t, byAdmin)

	byUser, byAdmin = reservation.NewActor(id, user.RoleAdmin).Attribution()
	assert.Nil(t, byUser)
	require.NotNil(t, byAdmin)
	assert.Equal(t, id, *byAdmin)
}

func TestStatusParsing(t *testing.T) {
	for _, s := range reservation.AllStatuses() {
		got, err := reservation.NewStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := reservation.NewStatus("rejected")
	require.ErrorIs(t, err, reservation.ErrInvalidStatus)

	assert.Equal(t, "For Delivery", reservation.StatusForDelivery.Label())

	d, err := reservation.NewPaymentDecision("reject")
	require.NoError(t, err)
	assert.Equal(t, reservation.PaymentRejected, d.PaymentStatus())
	_, err = reservation.NewPaymentDecision("rejected")
	require.ErrorIs(t, err, reservation.ErrInvalidPaymentDecision)
}

func TestFeeCalculator(t *testing.T) {
	paid := builder.NewEquipmentBuilder().WithPayment(2500).MustBuildDomain()
	free := builder.NewEquipmentBuilder().MustBuildDomain()

	tests := []struct {
		name     string
		mode     string
		quantity int
		want     int64
	}{
		{name: "flat charges once", mode: "flat", quantity: 10, want: 2500},
		{name: "per unit multiplies", mode: "per_unit", quantity: 10, want: 25000},
		{name: "unknown mode is flat", mode: "hourly", quantity: 4, want: 2500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := reservation.NewFeeCalculator(tt.mode)
			assert.Equal(t, tt.want, calc.Fee(paid, tt.quantity).Centavos())
			assert.True(t, calc.Fee(free, tt.quantity).IsZero())
		})
	}
}
