package reservation

import (
	"strings"
	"time"

	"barangay-reservation/internal/domain/user"

	"github.com/google/uuid"
)

type TimeWindow struct {
	start time.Time
	end   time.Time
}

func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if !start.Before(end) {
		return TimeWindow{}, ErrInvalidTimeWindow
	}
	return TimeWindow{start: start, end: end}, nil
}

func (w TimeWindow) Start() time.Time        { return w.start }
func (w TimeWindow) End() time.Time          { return w.end }
func (w TimeWindow) Duration() time.Duration { return w.end.Sub(w.start) }

// Overlaps uses closed intervals, so touching endpoints conflict.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return !w.start.After(other.end) && !w.end.Before(other.start)
}

// MeetsLeadTime requires start to be strictly after now+lead.
func (w TimeWindow) MeetsLeadTime(now time.Time, lead time.Duration) bool {
	return w.start.After(now.Add(lead))
}

// Location is a snapshot taken at submission, not a live profile reference.
type Location struct {
	Landmark string `json:"landmark"`
	Address  string `json:"address"`
	Purok    string `json:"purok"`
}

func NewLocation(landmark, address, purok string) Location {
	return Location{
		Landmark: strings.TrimSpace(landmark),
		Address:  strings.TrimSpace(address),
		Purok:    strings.TrimSpace(purok),
	}
}

type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func NewActor(id uuid.UUID, role user.Role) Actor {
	return Actor{ID: id, Role: role}
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

// Attribution splits the actor into the user/admin id pair of a history row.
// Exactly one side is set.
func (a Actor) Attribution() (byUser, byAdmin *uuid.UUID) {
	id := a.ID
	if a.IsAdmin() {
		return nil, &id
	}
	return &id, nil
}

type Item struct {
	ResourceID uuid.UUID
	Quantity   int
}
