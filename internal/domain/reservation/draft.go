package reservation

import (
	"time"

	"barangay-reservation/internal/domain/resource"

	"github.com/google/uuid"
)

// Draft is a validated reservation that has not been persisted yet. It is
// plain data so it can be stored between the review and payment steps.
type Draft struct {
	ID              uuid.UUID   `json:"id"`
	UserID          uuid.UUID   `json:"user_id"`
	Location        Location    `json:"location"`
	Start           time.Time   `json:"start"`
	End             time.Time   `json:"end"`
	Items           []DraftItem `json:"items"`
	RequiresPayment bool        `json:"requires_payment"`
	TotalDue        int64       `json:"total_due"` // centavos
	Notes           string      `json:"notes"`
	CreatedAt       time.Time   `json:"created_at"`
	ExpiresAt       time.Time   `json:"expires_at"`
}

type DraftItem struct {
	ResourceID      uuid.UUID         `json:"resource_id"`
	Name            string            `json:"name"`
	Category        resource.Category `json:"category"`
	Quantity        int               `json:"quantity"`
	RequiresPayment bool              `json:"requires_payment"`
	Fee             int64             `json:"fee"` // centavos
}

func (d *Draft) Window() (TimeWindow, error) {
	return NewTimeWindow(d.Start, d.End)
}

func (d *Draft) ResourceIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(d.Items))
	for i, it := range d.Items {
		ids[i] = it.ResourceID
	}
	return ids
}

func (d *Draft) IsOwnedBy(userID uuid.UUID) bool {
	return d.UserID == userID
}

func (d *Draft) IsExpired(now time.Time) bool {
	return !d.ExpiresAt.IsZero() && now.After(d.ExpiresAt)
}

func (d *Draft) Total() resource.Money {
	return resource.MustMoney(d.TotalDue)
}
