//go:build unit || e2e

package builder

import (
	"time"

	"barangay-reservation/internal/domain/resource"
	"barangay-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResourceBuilder struct {
	ID              uuid.UUID
	Name            string
	Category        resource.Category
	Quantity        int
	Status          resource.Status
	Availability    resource.Availability
	RequiresPayment bool
	PaymentAmount   int64
	MaxPerBooking   *int
	HeldQuantity    int
	CreatedAt       time.Time
}

// NewFacilityBuilder returns a free, bookable covered court.
func NewFacilityBuilder() *ResourceBuilder {
	return &ResourceBuilder{
		ID:           uuid.New(),
		Name:         "Covered Court",
		Category:     resource.CategoryFacility,
		Quantity:     1,
		Status:       resource.StatusActive,
		Availability: resource.AvailabilityAvailable,
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// NewEquipmentBuilder returns a pool of 50 free monobloc chairs.
func NewEquipmentBuilder() *ResourceBuilder {
	return &ResourceBuilder{
		ID:           uuid.New(),
		Name:         "Monobloc Chair",
		Category:     resource.CategoryEquipment,
		Quantity:     50,
		Status:       resource.StatusActive,
		Availability: resource.AvailabilityAvailable,
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(b)
	return b
}

func (b *ResourceBuilder) WithPayment(centavos int64) *ResourceBuilder {
	b.RequiresPayment = true
	b.PaymentAmount = centavos
	return b
}

func (b *ResourceBuilder) WithMaxPerBooking(n int) *ResourceBuilder {
	b.MaxPerBooking = &n
	return b
}

func (b *ResourceBuilder) BuildDomain() (*resource.Resource, error) {
	amount, err := resource.NewMoney(b.PaymentAmount)
	if err != nil {
		return nil, err
	}
	return resource.NewResource(resource.Params{
		ID:              b.ID,
		Name:            b.Name,
		Category:        b.Category,
		Quantity:        b.Quantity,
		Status:          b.Status,
		Availability:    b.Availability,
		RequiresPayment: b.RequiresPayment,
		PaymentAmount:   amount,
		MaxPerBooking:   b.MaxPerBooking,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	})
}

func (b *ResourceBuilder) MustBuildDomain() *resource.Resource {
	r, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return r
}

func (b *ResourceBuilder) BuildView() *queries.ResourceView {
	available := b.Quantity - b.HeldQuantity
	if available < 0 {
		available = 0
	}
	return &queries.ResourceView{
		ID:                b.ID,
		Name:              b.Name,
		Category:          b.Category.String(),
		Quantity:          b.Quantity,
		HeldQuantity:      b.HeldQuantity,
		AvailableQuantity: available,
		Status:            b.Status.String(),
		Availability:      string(b.Availability),
		RequiresPayment:   b.RequiresPayment,
		PaymentAmount:     b.PaymentAmount,
		MaxPerBooking:     b.MaxPerBooking,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.CreatedAt,
	}
}
