package availability

import (
	"context"

	"barangay-reservation/internal/domain/reservation"
	"barangay-reservation/internal/domain/resource"

	"github.com/google/uuid"
)

// Ledger reads current holds on a resource.
type Ledger interface {
	// HeldQuantity sums item quantities of reservations in an active status.
	HeldQuantity(ctx context.Context, resourceID uuid.UUID) (int, error)
	// CountFacilityOverlaps counts non-cancelled reservations on the resource
	// whose window overlaps w (closed intervals).
	CountFacilityOverlaps(ctx context.Context, resourceID uuid.UUID, w reservation.TimeWindow) (int, error)
}

// Checker applies the booking rules of a single resource:
// equipment draws from a quantity pool that is not scoped to time, and a
// facility is exclusive for its window. Per-resource caps apply to both.
type Checker struct {
	ledger Ledger
}

func NewChecker(ledger Ledger) *Checker {
	return &Checker{ledger: ledger}
}

var _ reservation.AvailabilityChecker = (*Checker)(nil)

func (c *Checker) Check(ctx context.Context, res *resource.Resource, quantity int, window *reservation.TimeWindow) error {
	unavailable := func(reason reservation.UnavailableReason) *reservation.ResourceUnavailableError {
		return &reservation.ResourceUnavailableError{
			ResourceID: res.ID(),
			Name:       res.Name(),
			Reason:     reason,
			Requested:  quantity,
		}
	}

	if !res.IsBookable() {
		return unavailable(reservation.ReasonNotBookable)
	}
	if quantity < 1 || (res.IsFacility() && quantity != 1) {
		return unavailable(reservation.ReasonInvalidQuantity)
	}
	if res.ExceedsBookingCap(quantity) {
		e := unavailable(reservation.ReasonExceedsBookingCap)
		e.Limit = *res.MaxPerBooking()
		return e
	}

	if res.IsEquipment() {
		held, err := c.ledger.HeldQuantity(ctx, res.ID())
		if err != nil {
			return err
		}
		if left := res.AvailableQuantity(held); quantity > left {
			e := unavailable(reservation.ReasonInsufficientQuantity)
			e.Available = left
			return e
		}
		return nil
	}

	if window == nil {
		return nil
	}
	n, err := c.ledger.CountFacilityOverlaps(ctx, res.ID(), *window)
	if err != nil {
		return err
	}
	if n > 0 {
		return unavailable(reservation.ReasonTimeConflict)
	}
	return nil
}
