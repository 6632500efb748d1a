//go:build unit

package reservation_test

import (
	"errors"
	"testing"
	"time"

	"barangay-reservation/internal/domain/reservation"
	"barangay-reservation/internal/domain/user"
	"barangay-reservation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func TestTransitionTable(t *testing.T) {
	allowed := map[[2]reservation.Status]bool{
		{reservation.StatusPending, reservation.StatusApproved}:      true,
		{reservation.StatusPending, reservation.StatusCancelled}:     true,
		{reservation.StatusApproved, reservation.StatusForDelivery}:  true,
		{reservation.StatusApproved, reservation.StatusForPickup}:    true,
		{reservation.StatusApproved, reservation.StatusCompleted}:    true,
		{reservation.StatusApproved, reservation.StatusCancelled}:    true,
		{reservation.StatusForDelivery, reservation.StatusCompleted}: true,
		{reservation.StatusForPickup, reservation.StatusCompleted}:   true,
	}
	admin := reservation.NewActor(uuid.New(), user.RoleAdmin)

	for _, from := range reservation.AllStatuses() {
		for _, to := range reservation.AllStatuses() {
			want := allowed[[2]reservation.Status{from, to}]
			assert.Equal(t, want, reservation.CanTransition(from, to), "%s -> %s", from, to)

			r := builder.NewReservationBuilder().WithStatus(from).BuildDomain()
			before := r.UpdatedAt()
			err := r.Transition(to, admin, now)
			if want {
				require.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, r.Status())
				assert.Equal(t, now, r.UpdatedAt())
				continue
			}
			var terr *reservation.InvalidTransitionError
			require.ErrorAs(t, err, &terr, "%s -> %s", from, to)
			assert.Equal(t, from.String(), terr.From)
			assert.Equal(t, to.String(), terr.To)
			assert.Equal(t, from, r.Status(), "status must be untouched on failure")
			assert.Equal(t, before, r.UpdatedAt())
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	for _, s := range reservation.AllStatuses() {
		terminal := s == reservation.StatusCompleted || s == reservation.StatusCancelled
		assert.Equal(t, terminal, s.IsTerminal(), s)
		assert.Equal(t, terminal, len(reservation.NextStatuses(s)) == 0, s)
	}
}

func TestResidentTransition(t *testing.T) {
	ownerID := uuid.New()
	owner := reservation.NewActor(ownerID, user.RoleResident)

	t.Run("owner cancels pending", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithUserID(ownerID).BuildDomain()
		require.NoError(t, r.Transition(reservation.StatusCancelled, owner, now))
		assert.Equal(t, reservation.StatusCancelled, r.Status())
	})

	t.Run("owner cannot cancel approved", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithUserID(ownerID).WithStatus(reservation.StatusApproved).BuildDomain()
		var terr *reservation.InvalidTransitionError
		require.ErrorAs(t, r.Transition(reservation.StatusCancelled, owner, now), &terr)
		assert.Equal(t, reservation.StatusApproved, r.Status())
	})

	t.Run("owner cannot approve", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithUserID(ownerID).BuildDomain()
		var terr *reservation.InvalidTransitionError
		require.ErrorAs(t, r.Transition(reservation.StatusApproved, owner, now), &terr)
	})

	t.Run("other resident is not permitted", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithUserID(ownerID).BuildDomain()
		stranger := reservation.NewActor(uuid.New(), user.RoleResident)
		require.ErrorIs(t, r.Transition(reservation.StatusCancelled, stranger, now), reservation.ErrActorNotPermitted)
	})

	t.Run("unknown status", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithUserID(ownerID).BuildDomain()
		require.ErrorIs(t, r.Transition("archived", owner, now), reservation.ErrInvalidStatus)
	})
}

func TestDecidePayment(t *testing.T) {
	admin := reservation.NewActor(uuid.New(), user.RoleAdmin)

	tests := []struct {
		name        string
		status      reservation.Status
		payment     reservation.PaymentStatus
		decision    reservation.PaymentDecision
		actor       reservation.Actor
		wantStatus  reservation.Status
		wantPayment reservation.PaymentStatus
		wantErr     error
		wantTrans   bool
	}{
		{
			name: "paid keeps status", status: reservation.StatusApproved, payment: reservation.PaymentPending,
			decision: reservation.DecisionPaid, actor: admin,
			wantStatus: reservation.StatusApproved, wantPayment: reservation.PaymentPaid,
		},
		{
			name: "reject cancels pending", status: reservation.StatusPending, payment: reservation.PaymentPending,
			decision: reservation.DecisionReject, actor: admin,
			wantStatus: reservation.StatusCancelled, wantPayment: reservation.PaymentRejected,
		},
		{
			name: "reject on already cancelled keeps cancelled", status: reservation.StatusCancelled, payment: reservation.PaymentPending,
			decision: reservation.DecisionReject, actor: admin,
			wantStatus: reservation.StatusCancelled, wantPayment: reservation.PaymentRejected,
		},
		{
			name: "reject after delivery cannot cancel", status: reservation.StatusForDelivery, payment: reservation.PaymentPending,
			decision: reservation.DecisionReject, actor: admin,
			wantStatus: reservation.StatusForDelivery, wantPayment: reservation.PaymentPending, wantTrans: true,
		},
		{
			name: "already paid", status: reservation.StatusApproved, payment: reservation.PaymentPaid,
			decision: reservation.DecisionReject, actor: admin,
			wantStatus: reservation.StatusApproved, wantPayment: reservation.PaymentPaid, wantTrans: true,
		},
		{
			name: "free reservation", status: reservation.StatusPending, payment: reservation.PaymentNotRequired,
			decision: reservation.DecisionPaid, actor: admin,
			wantStatus: reservation.StatusPending, wantPayment: reservation.PaymentNotRequired, wantTrans: true,
		},
		{
			name: "resident may not decide", status: reservation.StatusPending, payment: reservation.PaymentPending,
			decision: reservation.DecisionPaid, actor: reservation.NewActor(uuid.New(), user.RoleResident),
			wantStatus: reservation.StatusPending, wantPayment: reservation.PaymentPending, wantErr: reservation.ErrActorNotPermitted,
		},
		{
			name: "unknown decision", status: reservation.StatusPending, payment: reservation.PaymentPending,
			decision: "refund", actor: admin,
			wantStatus: reservation.StatusPending, wantPayment: reservation.PaymentPending, wantErr: reservation.ErrInvalidPaymentDecision,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := builder.NewReservationBuilder().WithStatus(tt.status).WithPaymentStatus(tt.payment).BuildDomain()

			err := r.DecidePayment(tt.decision, tt.actor, now)

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.wantTrans:
				var terr *reservation.InvalidTransitionError
				require.ErrorAs(t, err, &terr)
			default:
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantStatus, r.Status())
			assert.Equal(t, tt.wantPayment, r.PaymentStatus())
		})
	}
}

func TestNewFromDraft(t *testing.T) {
	t.Run("paying draft starts with pending payment", func(t *testing.T) {
		d := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Items[0].RequiresPayment = true
			b.Items[0].Fee = 50000
		}).BuildDraft()
		proof := "payment_proofs/2026/03/x.jpg"

		r, err := reservation.NewFromDraft(d, &proof, now)

		require.NoError(t, err)
		assert.NotEqual(t, d.ID, r.ID(), "reservation gets its own id")
		assert.Equal(t, d.UserID, r.UserID())
		assert.Equal(t, reservation.StatusPending, r.Status())
		assert.Equal(t, reservation.PaymentPending, r.PaymentStatus())
		assert.Equal(t, &proof, r.PaymentProof())
		assert.Equal(t, d.Location, r.Location())
		require.Len(t, r.Items(), 1)
		assert.Equal(t, now, r.CreatedAt())
	})

	t.Run("free draft", func(t *testing.T) {
		r, err := reservation.NewFromDraft(builder.NewReservationBuilder().BuildDraft(), nil, now)
		require.NoError(t, err)
		assert.Equal(t, reservation.PaymentNotRequired, r.PaymentStatus())
	})

	t.Run("empty draft", func(t *testing.T) {
		d := builder.NewReservationBuilder().WithItems().BuildDraft()
		_, err := reservation.NewFromDraft(d, nil, now)
		require.ErrorIs(t, err, reservation.ErrEmptyDraft)
	})
}

func TestHistoryEntries(t *testing.T) {
	ownerID := uuid.New()
	r := builder.NewReservationBuilder().WithUserID(ownerID).WithPaymentStatus(reservation.PaymentPending).BuildDomain()

	submitted := reservation.SubmittedEntry(r)
	assert.Equal(t, reservation.SubmittedNote, submitted.Notes)
	assert.Equal(t, &ownerID, submitted.ByUserID)
	assert.Nil(t, submitted.ByAdminID)
	assert.Nil(t, submitted.PaymentStatus)

	adminID := uuid.New()
	admin := reservation.NewActor(adminID, user.RoleAdmin)
	require.NoError(t, r.DecidePayment(reservation.DecisionReject, admin, now))
	entry := reservation.PaymentEntry(r, admin, "")
	assert.Equal(t, "Payment rejected", entry.Notes)
	assert.Equal(t, reservation.StatusCancelled, entry.Status)
	require.NotNil(t, entry.PaymentStatus)
	assert.Equal(t, reservation.PaymentRejected, *entry.PaymentStatus)
	assert.Nil(t, entry.ByUserID)
	assert.Equal(t, &adminID, entry.ByAdminID)
	assert.Equal(t, now, entry.CreatedAt)
}

func TestValidationError(t *testing.T) {
	assert.NoError(t, reservation.NewValidationError())
	assert.NoError(t, reservation.NewValidationError(nil, nil))

	field := reservation.NewFieldError("purok", "purok is required")
	unavailable := &reservation.ResourceUnavailableError{Name: "Tent", Reason: reservation.ReasonInsufficientQuantity, Requested: 5, Available: 2}
	err := reservation.NewValidationError(field, unavailable)

	var verr *reservation.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"purok is required", "Tent: only 2 available (requested 5)"}, verr.Messages())

	var got *reservation.ResourceUnavailableError
	require.True(t, errors.As(err, &got), "problems are reachable through Unwrap")
	assert.Same(t, unavailable, got)
}
