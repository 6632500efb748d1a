package request

import (
	"strings"
	"time"

	"barangay-reservation/internal/domain/reservation"
	"barangay-reservation/internal/usecase/commands"

	"github.com/google/uuid"
)

// Missing ids and quantities are reported by the draft builder.
type ReservationItemRequest struct {
	ResourceID uuid.UUID `json:"resource_id"`
	Quantity   int       `json:"quantity"`
}

// Only length limits are enforced at binding. Presence of address, purok,
// window and items is checked by the draft builder so every problem is
// reported together.
type CreateDraftRequest struct {
	Landmark string                   `json:"landmark" binding:"max=255"`
	Address  string                   `json:"address" binding:"max=500"`
	Purok    string                   `json:"purok" binding:"max=50"`
	Start    time.Time                `json:"start"`
	End      time.Time                `json:"end"`
	Items    []ReservationItemRequest `json:"items" binding:"max=50,dive"`
	Notes    string                   `json:"notes" binding:"max=1000"`
}

func (r *CreateDraftRequest) ToCommand() commands.BuildDraftRequest {
	items := make([]reservation.Item, len(r.Items))
	for i, it := range r.Items {
		items[i] = reservation.Item{ResourceID: it.ResourceID, Quantity: it.Quantity}
	}
	return commands.BuildDraftRequest{
		Landmark: strings.TrimSpace(r.Landmark),
		Address:  strings.TrimSpace(r.Address),
		Purok:    strings.TrimSpace(r.Purok),
		Start:    r.Start,
		End:      r.End,
		Items:    items,
		Notes:    strings.TrimSpace(r.Notes),
	}
}

type CommitReservationForm struct {
	DraftID string `form:"draft_id" binding:"required,uuid"`
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required,reservation_status"`
	Notes  string `json:"notes" binding:"max=1000"`
}

type PaymentDecisionRequest struct {
	Decision string `json:"decision" binding:"required,payment_decision"`
	Notes    string `json:"notes" binding:"max=1000"`
}

type CancelRequest struct {
	Notes string `json:"notes" binding:"max=1000"`
}

type ListReservationsQuery struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

type AdminListReservationsQuery struct {
	Status string `form:"status" binding:"omitempty,reservation_status"`
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
}
