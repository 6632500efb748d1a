package commands

import (
	"context"
	"fmt"
	"time"

	"barangay-reservation/internal/domain/notification"
	"barangay-reservation/internal/domain/reservation"
	"barangay-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// txNotifier writes notifications inside the caller's transaction so they
// commit or roll back with the change they describe.
type txNotifier struct {
	tx  shared.Tx
	now time.Time
}

var _ NotificationSink = (*txNotifier)(nil)

func newTxNotifier(tx shared.Tx, now time.Time) *txNotifier {
	return &txNotifier{tx: tx, now: now}
}

func (n *txNotifier) Notify(ctx context.Context, userID uuid.UUID, message, link string) error {
	nt, err := notification.New(userID, message, link, n.now)
	if err != nil {
		return err
	}
	return n.tx.Notifications().Create(ctx, nt)
}

func (n *txNotifier) NotifyAllAdmins(ctx context.Context, message, link string) error {
	ids, err := n.tx.Reads().AdminIDs(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := n.Notify(ctx, id, message, link); err != nil {
			return err
		}
	}
	return nil
}

const scheduleLayout = "Jan 2, 2006 3:04 PM"

func formatSchedule(w reservation.TimeWindow, loc *time.Location) string {
	return w.Start().In(loc).Format(scheduleLayout)
}

func submittedMessage(w reservation.TimeWindow, loc *time.Location) string {
	return fmt.Sprintf("New reservation request for %s is waiting for review.", formatSchedule(w, loc))
}

func statusMessage(r *reservation.Reservation, loc *time.Location, notes string) string {
	msg := fmt.Sprintf("Your reservation for %s is now %s.", formatSchedule(r.Window(), loc), r.Status().Label())
	if notes != "" {
		msg += " Note: " + notes
	}
	return msg
}

func cancelledByOwnerMessage(r *reservation.Reservation, loc *time.Location) string {
	return fmt.Sprintf("A reservation for %s was cancelled by the resident.", formatSchedule(r.Window(), loc))
}

func paymentMessage(r *reservation.Reservation, loc *time.Location, notes string) string {
	var msg string
	if r.PaymentStatus() == reservation.PaymentPaid {
		msg = fmt.Sprintf("Your payment for the reservation on %s has been confirmed.", formatSchedule(r.Window(), loc))
	} else {
		msg = fmt.Sprintf("Your payment for the reservation on %s was rejected and the reservation has been cancelled.", formatSchedule(r.Window(), loc))
	}
	if notes != "" {
		msg += " Note: " + notes
	}
	return msg
}
