package response

import (
	"time"

	"barangay-reservation/internal/domain/reservation"
	"barangay-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type DraftItemResponse struct {
	ResourceID      uuid.UUID `json:"resource_id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Quantity        int       `json:"quantity"`
	RequiresPayment bool      `json:"requires_payment"`
	Fee             int64     `json:"fee"`
}

type DraftResponse struct {
	ID              uuid.UUID           `json:"id"`
	Landmark        string              `json:"landmark"`
	Address         string              `json:"address"`
	Purok           string              `json:"purok"`
	Start           time.Time           `json:"start"`
	End             time.Time           `json:"end"`
	Items           []DraftItemResponse `json:"items"`
	RequiresPayment bool                `json:"requires_payment"`
	TotalDue        int64               `json:"total_due"`
	Notes           string              `json:"notes"`
	ExpiresAt       time.Time           `json:"expires_at"`
}

func FromDraft(d *reservation.Draft) *DraftResponse {
	items := make([]DraftItemResponse, len(d.Items))
	for i, it := range d.Items {
		items[i] = DraftItemResponse{
			ResourceID:      it.ResourceID,
			Name:            it.Name,
			Category:        it.Category.String(),
			Quantity:        it.Quantity,
			RequiresPayment: it.RequiresPayment,
			Fee:             it.Fee,
		}
	}
	return &DraftResponse{
		ID:              d.ID,
		Landmark:        d.Location.Landmark,
		Address:         d.Location.Address,
		Purok:           d.Location.Purok,
		Start:           d.Start,
		End:             d.End,
		Items:           items,
		RequiresPayment: d.RequiresPayment,
		TotalDue:        d.TotalDue,
		Notes:           d.Notes,
		ExpiresAt:       d.ExpiresAt,
	}
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type ReservationItemResponse struct {
	ResourceID   uuid.UUID `json:"resource_id"`
	ResourceName string    `json:"resource_name"`
	Category     string    `json:"category"`
	Quantity     int       `json:"quantity"`
}

type ReservationResponse struct {
	ID            uuid.UUID                 `json:"id"`
	UserID        uuid.UUID                 `json:"user_id"`
	UserName      string                    `json:"user_name"`
	Landmark      string                    `json:"landmark"`
	Address       string                    `json:"address"`
	Purok         string                    `json:"purok"`
	Start         time.Time                 `json:"start"`
	End           time.Time                 `json:"end"`
	Status        string                    `json:"status"`
	StatusLabel   string                    `json:"status_label"`
	PaymentStatus string                    `json:"payment_status"`
	PaymentProof  *string                   `json:"payment_proof,omitempty"`
	Notes         string                    `json:"notes"`
	Items         []ReservationItemResponse `json:"items"`
	CreatedAt     time.Time                 `json:"created_at"`
	UpdatedAt     time.Time                 `json:"updated_at"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	items := make([]ReservationItemResponse, len(v.Items))
	for i, it := range v.Items {
		items[i] = ReservationItemResponse{
			ResourceID:   it.ResourceID,
			ResourceName: it.ResourceName,
			Category:     it.Category,
			Quantity:     it.Quantity,
		}
	}
	return &ReservationResponse{
		ID:            v.ID,
		UserID:        v.UserID,
		UserName:      v.UserName,
		Landmark:      v.Landmark,
		Address:       v.Address,
		Purok:         v.Purok,
		Start:         v.Start,
		End:           v.End,
		Status:        v.Status,
		StatusLabel:   reservation.Status(v.Status).Label(),
		PaymentStatus: v.PaymentStatus,
		PaymentProof:  v.PaymentProof,
		Notes:         v.Notes,
		Items:         items,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

type ReservationListItemResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	UserName      string    `json:"user_name"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	Status        string    `json:"status"`
	StatusLabel   string    `json:"status_label"`
	PaymentStatus string    `json:"payment_status"`
	ItemCount     int       `json:"item_count"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromReservationList(items []*queries.ReservationListItem) []*ReservationListItemResponse {
	res := make([]*ReservationListItemResponse, len(items))
	for i, it := range items {
		res[i] = &ReservationListItemResponse{
			ID:            it.ID,
			UserID:        it.UserID,
			UserName:      it.UserName,
			Start:         it.Start,
			End:           it.End,
			Status:        it.Status,
			StatusLabel:   reservation.Status(it.Status).Label(),
			PaymentStatus: it.PaymentStatus,
			ItemCount:     it.ItemCount,
			CreatedAt:     it.CreatedAt,
		}
	}
	return res
}

type HistoryResponse struct {
	ID            uuid.UUID  `json:"id"`
	Status        string     `json:"status"`
	PaymentStatus *string    `json:"payment_status,omitempty"`
	Notes         string     `json:"notes"`
	ActorID       *uuid.UUID `json:"actor_id,omitempty"`
	ActorName     *string    `json:"actor_name,omitempty"`
	ByAdmin       bool       `json:"by_admin"`
	CreatedAt     time.Time  `json:"created_at"`
}

func FromHistory(entries []*queries.HistoryView) []*HistoryResponse {
	res := make([]*HistoryResponse, len(entries))
	for i, e := range entries {
		actorID := e.CreatedByUserID
		if e.CreatedByAdminID != nil {
			actorID = e.CreatedByAdminID
		}
		res[i] = &HistoryResponse{
			ID:            e.ID,
			Status:        e.Status,
			PaymentStatus: e.PaymentStatus,
			Notes:         e.Notes,
			ActorID:       actorID,
			ActorName:     e.ActorName,
			ByAdmin:       e.CreatedByAdminID != nil,
			CreatedAt:     e.CreatedAt,
		}
	}
	return res
}
