//go:build unit

package commands_test

import (
	"context"
	"slices"
	"sync"

	"barangay-reservation/internal/domain/notification"
	"barangay-reservation/internal/domain/reservation"
	"barangay-reservation/internal/domain/resource"
	"barangay-reservation/internal/infra"
	"barangay-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// memUoW is an in-memory unit of work. Writes are staged per transaction
// and applied only when fn returns nil.
type memUoW struct {
	mu            sync.Mutex
	resources     map[uuid.UUID]*resource.Resource
	reservations  map[uuid.UUID]*reservation.Reservation
	history       []reservation.HistoryEntry
	notifications []*notification.Notification
	readIDs       map[uuid.UUID]bool
	admins        []uuid.UUID
	contacts      map[uuid.UUID]string

	historyErr error
	commits    int
	rollbacks  int
}

var _ shared.UnitOfWork = (*memUoW)(nil)

func newMemUoW() *memUoW {
	return &memUoW{
		resources:    map[uuid.UUID]*resource.Resource{},
		reservations: map[uuid.UUID]*reservation.Reservation{},
		readIDs:      map[uuid.UUID]bool{},
		contacts:     map[uuid.UUID]string{},
	}
}

func (u *memUoW) addResource(r *resource.Resource) *resource.Resource {
	u.resources[r.ID()] = r
	return r
}

func (u *memUoW) addReservation(r *reservation.Reservation) *reservation.Reservation {
	u.reservations[r.ID()] = r
	return r
}

func (u *memUoW) stored(id uuid.UUID) *reservation.Reservation {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.reservations[id]
}

func (u *memUoW) notificationsFor(userID uuid.UUID) []*notification.Notification {
	u.mu.Lock()
	defer u.mu.Unlock()
	var out []*notification.Notification
	for _, n := range u.notifications {
		if n.UserID() == userID {
			out = append(out, n)
		}
	}
	return out
}

func (u *memUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &memTx{uow: u}
	if err := fn(ctx, tx); err != nil {
		u.rollbacks++
		return err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, r := range tx.reservations {
		u.reservations[r.ID()] = r
	}
	u.history = append(u.history, tx.history...)
	u.notifications = append(u.notifications, tx.notifications...)
	for id := range tx.readIDs {
		u.readIDs[id] = true
	}
	u.commits++
	return nil
}

func (u *memUoW) CommandReads() shared.CommandReads {
	return u
}

func (u *memUoW) ResourcesByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*resource.Resource, error) {
	out := map[uuid.UUID]*resource.Resource{}
	for _, id := range ids {
		if r, ok := u.resources[id]; ok {
			out[id] = r
		}
	}
	return out, nil
}

func (u *memUoW) LockResources(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*resource.Resource, error) {
	return u.ResourcesByIDs(ctx, ids)
}

// ReservationForUpdate hands out a copy so a rolled back transaction
// leaves the committed row untouched.
func (u *memUoW) ReservationForUpdate(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	r, ok := u.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	items := slices.Clone(r.Items())
	return reservation.Reconstruct(r.ID(), r.UserID(), r.Location(), r.Window(), r.Status(), r.PaymentStatus(),
		r.PaymentProof(), r.Notes(), items, r.CreatedAt(), r.UpdatedAt()), nil
}

func (u *memUoW) HeldQuantity(_ context.Context, resourceID uuid.UUID) (int, error) {
	held := 0
	for _, r := range u.reservations {
		if !slices.Contains(reservation.ActiveStatuses(), r.Status()) {
			continue
		}
		for _, it := range r.Items() {
			if it.ResourceID == resourceID {
				held += it.Quantity
			}
		}
	}
	return held, nil
}

func (u *memUoW) CountFacilityOverlaps(_ context.Context, resourceID uuid.UUID, w reservation.TimeWindow) (int, error) {
	n := 0
	for _, r := range u.reservations {
		if r.Status() == reservation.StatusCancelled || !r.Window().Overlaps(w) {
			continue
		}
		for _, it := range r.Items() {
			if it.ResourceID == resourceID {
				n++
			}
		}
	}
	return n, nil
}

func (u *memUoW) AdminIDs(context.Context) ([]uuid.UUID, error) {
	return u.admins, nil
}

func (u *memUoW) ContactNumber(_ context.Context, userID uuid.UUID) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.contacts[userID], nil
}

type memTx struct {
	uow           *memUoW
	reservations  []*reservation.Reservation
	history       []reservation.HistoryEntry
	notifications []*notification.Notification
	readIDs       map[uuid.UUID]bool
}

func (t *memTx) Reservations() shared.ReservationRepository   { return memReservations{t} }
func (t *memTx) History() shared.StatusHistoryRepository      { return memHistory{t} }
func (t *memTx) Notifications() shared.NotificationRepository { return memNotifications{t} }
func (t *memTx) Reads() shared.CommandReads                   { return t.uow }

type memReservations struct{ tx *memTx }

func (r memReservations) Create(_ context.Context, res *reservation.Reservation) error {
	r.tx.reservations = append(r.tx.reservations, res)
	return nil
}

func (r memReservations) UpdateStatus(_ context.Context, res *reservation.Reservation) error {
	r.tx.reservations = append(r.tx.reservations, res)
	return nil
}

type memHistory struct{ tx *memTx }

func (h memHistory) Append(_ context.Context, e reservation.HistoryEntry) error {
	if h.tx.uow.historyErr != nil {
		return h.tx.uow.historyErr
	}
	h.tx.history = append(h.tx.history, e)
	return nil
}

type memNotifications struct{ tx *memTx }

func (n memNotifications) Create(_ context.Context, nt *notification.Notification) error {
	n.tx.notifications = append(n.tx.notifications, nt)
	return nil
}

func (n memNotifications) MarkRead(_ context.Context, id, userID uuid.UUID) error {
	for _, nt := range n.tx.uow.notifications {
		if nt.ID() == id && nt.UserID() == userID {
			if n.tx.readIDs == nil {
				n.tx.readIDs = map[uuid.UUID]bool{}
			}
			n.tx.readIDs[id] = true
			return nil
		}
	}
	return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
}
