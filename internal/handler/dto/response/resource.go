package response

import (
	"time"

	"barangay-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ResourceResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	Quantity          int       `json:"quantity"`
	AvailableQuantity int       `json:"available_quantity"`
	Status            string    `json:"status"`
	Availability      string    `json:"availability"`
	RequiresPayment   bool      `json:"requires_payment"`
	PaymentAmount     int64     `json:"payment_amount"`
	MaxPerBooking     *int      `json:"max_per_booking,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromResourceView(v *queries.ResourceView) (*ResourceResponse, error) {
	var res ResourceResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromResourceViews(vs []*queries.ResourceView) ([]*ResourceResponse, error) {
	res := make([]*ResourceResponse, 0, len(vs))
	if err := copier.Copy(&res, &vs); err != nil {
		return nil, err
	}
	return res, nil
}
