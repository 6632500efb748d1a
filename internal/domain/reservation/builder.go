package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"barangay-reservation/internal/domain/resource"
	"barangay-reservation/internal/pkg/clock"

	"github.com/google/uuid"
)

// AvailabilityChecker decides whether quantity units of res can be booked.
// A nil window skips time-based checks. Inadmissible requests return a
// *ResourceUnavailableError; any other error is an infrastructure failure.
type AvailabilityChecker interface {
	Check(ctx context.Context, res *resource.Resource, quantity int, window *TimeWindow) error
}

// ResourceLookup loads resources by id. Missing ids are absent from the map.
type ResourceLookup interface {
	ResourcesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*resource.Resource, error)
}

type Services struct {
	Clock        clock.Clock
	Availability AvailabilityChecker
	Resources    ResourceLookup
	Fees         FeeCalculator
}

type Policy struct {
	LeadTime time.Duration
	DraftTTL time.Duration
}

type DraftInput struct {
	UserID   uuid.UUID
	Landmark string
	Address  string
	Purok    string
	Start    time.Time
	End      time.Time
	Items    []Item
	Notes    string
}

type DraftBuilder struct {
	services *Services
	policy   Policy
}

func NewDraftBuilder(services *Services, policy Policy) *DraftBuilder {
	return &DraftBuilder{services: services, policy: policy}
}

// Build validates input and assembles a draft. Every violation is collected
// into a single *ValidationError; resource checks are skipped only when no
// resource was selected.
func (b *DraftBuilder) Build(ctx context.Context, in DraftInput) (*Draft, error) {
	now := b.services.Clock.Now()
	verr := &ValidationError{}

	loc := NewLocation(in.Landmark, in.Address, in.Purok)
	if loc.Address == "" {
		verr.add(NewFieldError("address", "address is required"))
	}
	if loc.Purok == "" {
		verr.add(NewFieldError("purok", "purok is required"))
	}

	window := b.validateWindow(in.Start, in.End, now, verr)

	if len(in.Items) == 0 {
		verr.add(NewFieldError("items", "select at least one resource"))
		return nil, verr
	}

	ids, dup := uniqueResourceIDs(in.Items)
	if dup {
		verr.add(NewFieldError("items", "each resource may only be selected once"))
	}

	resources, err := b.services.Resources.ResourcesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	draft := &Draft{
		ID:        uuid.New(),
		UserID:    in.UserID,
		Location:  loc,
		Start:     in.Start,
		End:       in.End,
		Notes:     in.Notes,
		CreatedAt: now,
		ExpiresAt: now.Add(b.policy.DraftTTL),
	}
	total := resource.Money{}

	checked := make(map[uuid.UUID]bool, len(ids))
	for i, it := range in.Items {
		if checked[it.ResourceID] {
			continue
		}
		checked[it.ResourceID] = true

		res, ok := resources[it.ResourceID]
		if !ok {
			verr.add(NewFieldError(fmt.Sprintf("items[%d].resource_id", i), "selected resource does not exist"))
			continue
		}

		if err := b.services.Availability.Check(ctx, res, it.Quantity, window); err != nil {
			var unavailable *ResourceUnavailableError
			if !errors.As(err, &unavailable) {
				return nil, err
			}
			verr.add(unavailable)
			continue
		}

		fee := b.services.Fees.Fee(res, it.Quantity)
		if res.RequiresPayment() {
			draft.RequiresPayment = true
			total = total.Add(fee)
		}
		draft.Items = append(draft.Items, DraftItem{
			ResourceID:      res.ID(),
			Name:            res.Name(),
			Category:        res.Category(),
			Quantity:        it.Quantity,
			RequiresPayment: res.RequiresPayment(),
			Fee:             fee.Centavos(),
		})
	}

	if err := verr.orNil(); err != nil {
		return nil, err
	}
	draft.TotalDue = total.Centavos()
	return draft, nil
}

// validateWindow returns nil when the window is unusable for overlap checks.
func (b *DraftBuilder) validateWindow(start, end, now time.Time, verr *ValidationError) *TimeWindow {
	if start.IsZero() {
		verr.add(NewFieldError("start", "start date and time are required"))
	}
	if end.IsZero() {
		verr.add(NewFieldError("end", "end date and time are required"))
	}
	if start.IsZero() || end.IsZero() {
		return nil
	}

	if !start.After(now) {
		verr.add(NewFieldError("start", "start must be in the future"))
	} else if !start.After(now.Add(b.policy.LeadTime)) {
		verr.add(NewFieldError("start", fmt.Sprintf("reservations must be made at least %s in advance", leadTimeText(b.policy.LeadTime))))
	}

	w, err := NewTimeWindow(start, end)
	if err != nil {
		verr.add(NewFieldError("end", "end must be after start"))
		return nil
	}
	return &w
}

// RecheckLeadTime guards a draft that aged past the lead time before commit.
func (p Policy) RecheckLeadTime(d *Draft, now time.Time) error {
	w, err := d.Window()
	if err != nil {
		return NewValidationError(NewFieldError("end", "end must be after start"))
	}
	if !w.MeetsLeadTime(now, p.LeadTime) {
		return NewValidationError(NewFieldError("start", fmt.Sprintf("reservations must be made at least %s in advance", leadTimeText(p.LeadTime))))
	}
	return nil
}

func uniqueResourceIDs(items []Item) ([]uuid.UUID, bool) {
	seen := make(map[uuid.UUID]struct{}, len(items))
	ids := make([]uuid.UUID, 0, len(items))
	dup := false
	for _, it := range items {
		if _, ok := seen[it.ResourceID]; ok {
			dup = true
			continue
		}
		seen[it.ResourceID] = struct{}{}
		ids = append(ids, it.ResourceID)
	}
	return ids, dup
}

func leadTimeText(d time.Duration) string {
	days := int(d / (24 * time.Hour))
	if days > 0 && d%(24*time.Hour) == 0 {
		if days == 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", days)
	}
	return d.String()
}
