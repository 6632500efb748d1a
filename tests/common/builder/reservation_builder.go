//go:build unit || e2e

package builder

import (
	"time"

	"barangay-reservation/internal/domain/reservation"
	"barangay-reservation/internal/domain/resource"
	reqdto "barangay-reservation/internal/handler/dto/request"
	"barangay-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	UserName      string
	Landmark      string
	Address       string
	Purok         string
	Start         time.Time
	End           time.Time
	Status        reservation.Status
	PaymentStatus reservation.PaymentStatus
	PaymentProof  *string
	Notes         string
	Items         []reservation.DraftItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewReservationBuilder describes a pending, free reservation of one
// facility, ten days after its creation.
func NewReservationBuilder() *ReservationBuilder {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	start := created.AddDate(0, 0, 10)
	return &ReservationBuilder{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		UserName:      "Juan Dela Cruz",
		Landmark:      "Near the chapel",
		Address:       "123 Mabini St.",
		Purok:         "Purok 3",
		Start:         start,
		End:           start.Add(4 * time.Hour),
		Status:        reservation.StatusPending,
		PaymentStatus: reservation.PaymentNotRequired,
		Items: []reservation.DraftItem{{
			ResourceID: uuid.New(),
			Name:       "Covered Court",
			Category:   resource.CategoryFacility,
			Quantity:   1,
		}},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	b.Status = s
	return b
}

func (b *ReservationBuilder) WithPaymentStatus(p reservation.PaymentStatus) *ReservationBuilder {
	b.PaymentStatus = p
	return b
}

func (b *ReservationBuilder) WithUserID(id uuid.UUID) *ReservationBuilder {
	b.UserID = id
	return b
}

func (b *ReservationBuilder) WithItems(items ...reservation.DraftItem) *ReservationBuilder {
	b.Items = items
	return b
}

func (b *ReservationBuilder) WithWindow(start, end time.Time) *ReservationBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *ReservationBuilder) BuildDraftRequestDTO() reqdto.CreateDraftRequest {
	items := make([]reqdto.ReservationItemRequest, len(b.Items))
	for i, it := range b.Items {
		items[i] = reqdto.ReservationItemRequest{ResourceID: it.ResourceID, Quantity: it.Quantity}
	}
	return reqdto.CreateDraftRequest{
		Landmark: b.Landmark,
		Address:  b.Address,
		Purok:    b.Purok,
		Start:    b.Start,
		End:      b.End,
		Items:    items,
		Notes:    b.Notes,
	}
}

func (b *ReservationBuilder) BuildDraft() *reservation.Draft {
	var total int64
	requiresPayment := false
	for _, it := range b.Items {
		total += it.Fee
		requiresPayment = requiresPayment || it.RequiresPayment
	}
	items := make([]reservation.DraftItem, len(b.Items))
	copy(items, b.Items)
	return &reservation.Draft{
		ID:              b.ID,
		UserID:          b.UserID,
		Location:        reservation.NewLocation(b.Landmark, b.Address, b.Purok),
		Start:           b.Start,
		End:             b.End,
		Items:           items,
		RequiresPayment: requiresPayment,
		TotalDue:        total,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		ExpiresAt:       b.CreatedAt.Add(30 * time.Minute),
	}
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	window, err := reservation.NewTimeWindow(b.Start, b.End)
	if err != nil {
		panic(err)
	}
	items := make([]reservation.Item, len(b.Items))
	for i, it := range b.Items {
		items[i] = reservation.Item{ResourceID: it.ResourceID, Quantity: it.Quantity}
	}
	return reservation.Reconstruct(
		b.ID, b.UserID,
		reservation.NewLocation(b.Landmark, b.Address, b.Purok),
		window,
		b.Status,
		b.PaymentStatus,
		b.PaymentProof,
		b.Notes,
		items,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	items := make([]queries.ReservationItemView, len(b.Items))
	for i, it := range b.Items {
		items[i] = queries.ReservationItemView{
			ResourceID:   it.ResourceID,
			ResourceName: it.Name,
			Category:     it.Category.String(),
			Quantity:     it.Quantity,
		}
	}
	return &queries.ReservationView{
		ID:            b.ID,
		UserID:        b.UserID,
		UserName:      b.UserName,
		Landmark:      b.Landmark,
		Address:       b.Address,
		Purok:         b.Purok,
		Start:         b.Start,
		End:           b.End,
		Status:        b.Status.String(),
		PaymentStatus: b.PaymentStatus.String(),
		PaymentProof:  b.PaymentProof,
		Notes:         b.Notes,
		Items:         items,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:            b.ID,
		UserID:        b.UserID,
		UserName:      b.UserName,
		Start:         b.Start,
		End:           b.End,
		Status:        b.Status.String(),
		PaymentStatus: b.PaymentStatus.String(),
		ItemCount:     len(b.Items),
		CreatedAt:     b.CreatedAt,
	}
}
