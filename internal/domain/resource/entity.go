package resource

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceName   = errors.New("resource name cannot be empty")
	ErrResourceNameTooLong = errors.New("resource name is too long (max 255 characters)")
	ErrInvalidCategory     = errors.New("invalid resource category")
	ErrNegativeQuantity    = errors.New("quantity cannot be negative")
	ErrInvalidBookingCap   = errors.New("max per booking must be positive")
)

const (
	MaxResourceNameLength = 255
)

type Resource struct {
	id              uuid.UUID
	name            string
	category        Category
	quantity        int
	status          Status
	availability    Availability
	requiresPayment bool
	paymentAmount   Money
	maxPerBooking   *int
	createdAt       time.Time
	updatedAt       time.Time
}

type Params struct {
	ID              uuid.UUID
	Name            string
	Category        Category
	Quantity        int
	Status          Status
	Availability    Availability
	RequiresPayment bool
	PaymentAmount   Money
	MaxPerBooking   *int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewResource(p Params) (*Resource, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return nil, ErrResourceNameTooLong
	}
	if !p.Category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if p.Quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	if p.MaxPerBooking != nil && *p.MaxPerBooking <= 0 {
		return nil, ErrInvalidBookingCap
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	status := p.Status
	if status == "" {
		status = StatusActive
	}
	availability := p.Availability
	if availability == "" {
		availability = AvailabilityAvailable
	}

	return &Resource{
		id:              id,
		name:            name,
		category:        p.Category,
		quantity:        p.Quantity,
		status:          status,
		availability:    availability,
		requiresPayment: p.RequiresPayment,
		paymentAmount:   p.PaymentAmount,
		maxPerBooking:   p.MaxPerBooking,
		createdAt:       p.CreatedAt,
		updatedAt:       p.UpdatedAt,
	}, nil
}

func (r *Resource) ID() uuid.UUID              { return r.id }
func (r *Resource) Name() string               { return r.name }
func (r *Resource) Category() Category         { return r.category }
func (r *Resource) Quantity() int              { return r.quantity }
func (r *Resource) Status() Status             { return r.status }
func (r *Resource) Availability() Availability { return r.availability }
func (r *Resource) RequiresPayment() bool      { return r.requiresPayment }
func (r *Resource) PaymentAmount() Money       { return r.paymentAmount }
func (r *Resource) MaxPerBooking() *int        { return r.maxPerBooking }
func (r *Resource) CreatedAt() time.Time       { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time       { return r.updatedAt }
func (r *Resource) IsFacility() bool           { return r.category == CategoryFacility }
func (r *Resource) IsEquipment() bool          { return r.category == CategoryEquipment }

func (r *Resource) IsBookable() bool {
	return r.status == StatusActive && r.availability == AvailabilityAvailable
}

// AvailableQuantity is the equipment pool left after held units.
func (r *Resource) AvailableQuantity(held int) int {
	left := r.quantity - held
	if left < 0 {
		return 0
	}
	return left
}

// ExceedsBookingCap reports whether a single booking of n units breaks
// the per-resource cap.
func (r *Resource) ExceedsBookingCap(n int) bool {
	return r.maxPerBooking != nil && n > *r.maxPerBooking
}
