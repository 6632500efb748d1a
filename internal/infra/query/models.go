package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Resource struct {
	ID                    uuid.UUID
	Name                  string
	Category              string
	Quantity              int32
	Status                string
	Availability          string
	RequiresPayment       bool
	PaymentAmountCentavos int64
	MaxPerBooking         pgtype.Int4
	CreatedAt             pgtype.Timestamptz
	UpdatedAt             pgtype.Timestamptz
}

type ResourceWithHoldRow struct {
	Resource     Resource
	HeldQuantity int64
}

type Reservation struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Landmark      string
	Address       string
	Purok         string
	StartDatetime pgtype.Timestamptz
	EndDatetime   pgtype.Timestamptz
	Status        string
	PaymentStatus string
	PaymentProof  pgtype.Text
	Notes         string
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type ReservationWithUserRow struct {
	Reservation Reservation
	UserName    string
}

type ReservationItem struct {
	ReservationID uuid.UUID
	ResourceID    uuid.UUID
	Quantity      int32
}

type ReservationItemDetailRow struct {
	ResourceID   uuid.UUID
	ResourceName string
	Category     string
	Quantity     int32
}

type ReservationListRow struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	UserName      string
	StartDatetime pgtype.Timestamptz
	EndDatetime   pgtype.Timestamptz
	Status        string
	PaymentStatus string
	ItemCount     int64
	CreatedAt     pgtype.Timestamptz
}

type StatusHistory struct {
	ID               uuid.UUID
	ReservationID    uuid.UUID
	Status           string
	PaymentStatus    pgtype.Text
	Notes            string
	CreatedByUserID  pgtype.UUID
	CreatedByAdminID pgtype.UUID
	CreatedAt        pgtype.Timestamptz
}

type StatusHistoryRow struct {
	History   StatusHistory
	ActorName pgtype.Text
}

type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Message   string
	Link      string
	IsRead    bool
	CreatedAt pgtype.Timestamptz
}
