//go:build unit

package resource_test

import (
	"strings"
	"testing"

	"barangay-reservation/internal/domain/resource"
	"barangay-reservation/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ResourceBuilder)
	errIs  error
}

func TestResource(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewEquipmentBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "Monobloc Chair", actual.Name())
		assert.True(t, actual.IsEquipment())
		assert.True(t, actual.IsBookable())
		assert.Nil(t, actual.MaxPerBooking())
	})

	t.Run("field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "blank name", mutate: func(b *builder.ResourceBuilder) { b.Name = "   " }, errIs: resource.ErrEmptyResourceName},
			{name: "name at limit", mutate: func(b *builder.ResourceBuilder) { b.Name = strings.Repeat("a", 255) }},
			{name: "name too long", mutate: func(b *builder.ResourceBuilder) { b.Name = strings.Repeat("a", 256) }, errIs: resource.ErrResourceNameTooLong},
			{name: "unknown category", mutate: func(b *builder.ResourceBuilder) { b.Category = "vehicle" }, errIs: resource.ErrInvalidCategory},
			{name: "negative quantity", mutate: func(b *builder.ResourceBuilder) { b.Quantity = -1 }, errIs: resource.ErrNegativeQuantity},
			{name: "zero quantity allowed", mutate: func(b *builder.ResourceBuilder) { b.Quantity = 0 }},
			{name: "zero booking cap", mutate: func(b *builder.ResourceBuilder) { b.WithMaxPerBooking(0) }, errIs: resource.ErrInvalidBookingCap},
			{name: "negative payment", mutate: func(b *builder.ResourceBuilder) { b.WithPayment(-100) }, errIs: resource.ErrNegativeMoney},
		})
	})

	t.Run("bookable only when active and available", func(t *testing.T) {
		tests := []struct {
			status       resource.Status
			availability resource.Availability
			want         bool
		}{
			{resource.StatusActive, resource.AvailabilityAvailable, true},
			{resource.StatusActive, resource.AvailabilityMaintenance, false},
			{resource.StatusActive, resource.AvailabilityUnavailable, false},
			{resource.StatusInactive, resource.AvailabilityAvailable, false},
		}
		for _, tt := range tests {
			r := builder.NewFacilityBuilder().With(func(b *builder.ResourceBuilder) {
				b.Status = tt.status
				b.Availability = tt.availability
			}).MustBuildDomain()
			assert.Equal(t, tt.want, r.IsBookable(), "%s/%s", tt.status, tt.availability)
		}
	})

	t.Run("available quantity never negative", func(t *testing.T) {
		r := builder.NewEquipmentBuilder().MustBuildDomain()
		assert.Equal(t, 50, r.AvailableQuantity(0))
		assert.Equal(t, 20, r.AvailableQuantity(30))
		assert.Equal(t, 0, r.AvailableQuantity(50))
		assert.Equal(t, 0, r.AvailableQuantity(70))
	})

	t.Run("booking cap", func(t *testing.T) {
		r := builder.NewEquipmentBuilder().WithMaxPerBooking(10).MustBuildDomain()
		assert.False(t, r.ExceedsBookingCap(10))
		assert.True(t, r.ExceedsBookingCap(11))
	})
}

func TestMoney(t *testing.T) {
	m := resource.MustMoney(50050)
	assert.Equal(t, "500.50", m.String())
	assert.Equal(t, int64(150150), m.Times(3).Centavos())
	assert.Equal(t, int64(50100), m.Add(resource.MustMoney(50)).Centavos())
	assert.True(t, resource.Money{}.IsZero())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewFacilityBuilder()
			tc.mutate(b)
			_, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}
