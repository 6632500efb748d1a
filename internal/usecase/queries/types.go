package queries

import (
	"time"

	"github.com/google/uuid"
)

// ResourceView is a catalog entry. For equipment AvailableQuantity is the
// live pool left after active reservations.
type ResourceView struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	Quantity          int       `json:"quantity"`
	HeldQuantity      int       `json:"-"`
	AvailableQuantity int       `json:"available_quantity"`
	Status            string    `json:"status"`
	Availability      string    `json:"availability"`
	RequiresPayment   bool      `json:"requires_payment"`
	PaymentAmount     int64     `json:"payment_amount"` // centavos
	MaxPerBooking     *int      `json:"max_per_booking,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type ReservationItemView struct {
	ResourceID   uuid.UUID `json:"resource_id"`
	ResourceName string    `json:"resource_name"`
	Category     string    `json:"category"`
	Quantity     int       `json:"quantity"`
}

type ReservationView struct {
	ID            uuid.UUID             `json:"id"`
	UserID        uuid.UUID             `json:"user_id"`
	UserName      string                `json:"user_name"`
	Landmark      string                `json:"landmark"`
	Address       string                `json:"address"`
	Purok         string                `json:"purok"`
	Start         time.Time             `json:"start"`
	End           time.Time             `json:"end"`
	Status        string                `json:"status"`
	PaymentStatus string                `json:"payment_status"`
	PaymentProof  *string               `json:"payment_proof,omitempty"`
	Notes         string                `json:"notes"`
	Items         []ReservationItemView `json:"items"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

type ReservationListItem struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	UserName      string    `json:"user_name"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	ItemCount     int       `json:"item_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type HistoryView struct {
	ID               uuid.UUID  `json:"id"`
	Status           string     `json:"status"`
	PaymentStatus    *string    `json:"payment_status,omitempty"`
	Notes            string     `json:"notes"`
	CreatedByUserID  *uuid.UUID `json:"created_by_user_id,omitempty"`
	CreatedByAdminID *uuid.UUID `json:"created_by_admin_id,omitempty"`
	ActorName        *string    `json:"actor_name,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

type NotificationView struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Link      string    `json:"link"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
