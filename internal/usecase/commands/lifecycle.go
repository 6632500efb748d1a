package commands

import (
	"context"
	"log/slog"

	"barangay-reservation/internal/domain/notification"
	"barangay-reservation/internal/domain/reservation"
	"barangay-reservation/internal/domain/user"
	"barangay-reservation/internal/pkg/clock"
	"barangay-reservation/internal/pkg/errs"
	"barangay-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type LifecycleCommands interface {
	// Transition moves a reservation along the status state machine.
	Transition(ctx context.Context, id uuid.UUID, newStatus reservation.Status, actor reservation.Actor, notes string) error
	// RecordPaymentDecision settles a pending payment. Admin only.
	RecordPaymentDecision(ctx context.Context, id uuid.UUID, decision reservation.PaymentDecision, actor reservation.Actor, notes string) error
}

type lifecycleCommandsImpl struct {
	uow    shared.UnitOfWork
	sms    SMSGateway
	events EventPublisher
	clock  clock.Clock
	opts   Options
}

func NewLifecycleCommands(uow shared.UnitOfWork, sms SMSGateway, events EventPublisher, clk clock.Clock, opts Options) LifecycleCommands {
	return &lifecycleCommandsImpl{
		uow:    uow,
		sms:    sms,
		events: events,
		clock:  clk,
		opts:   opts,
	}
}

func (uc *lifecycleCommandsImpl) Transition(ctx context.Context, id uuid.UUID, newStatus reservation.Status, actor reservation.Actor, notes string) error {
	if !newStatus.IsValid() {
		return reservation.NewValidationError(reservation.NewFieldError("status", "unknown reservation status"))
	}

	now := uc.clock.Now()
	loc := uc.opts.location()
	var updated *reservation.Reservation

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reads().ReservationForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !res.VisibleTo(actor) {
			return errs.ErrNotFound
		}
		if err := res.Transition(newStatus, actor, now); err != nil {
			return err
		}

		if err := tx.Reservations().UpdateStatus(ctx, res); err != nil {
			return err
		}
		if err := tx.History().Append(ctx, reservation.StatusEntry(res, actor, notes)); err != nil {
			return err
		}

		sink := newTxNotifier(tx, now)
		link := notification.ReservationLink(res.ID())
		if err := sink.Notify(ctx, res.UserID(), statusMessage(res, loc, notes), link); err != nil {
			return err
		}
		if !actor.IsAdmin() {
			if err := sink.NotifyAllAdmins(ctx, cancelledByOwnerMessage(res, loc), link); err != nil {
				return err
			}
		}
		updated = res
		return nil
	})
	if err != nil {
		return classify(err)
	}

	actorID := actor.ID
	publish(ctx, uc.events, Event{
		Type:          EventReservationStatusChanged,
		ReservationID: updated.ID(),
		UserID:        updated.UserID(),
		Status:        updated.Status().String(),
		PaymentStatus: updated.PaymentStatus().String(),
		ActorID:       &actorID,
		OccurredAt:    now,
	})
	return nil
}

func (uc *lifecycleCommandsImpl) RecordPaymentDecision(ctx context.Context, id uuid.UUID, decision reservation.PaymentDecision, actor reservation.Actor, notes string) error {
	if !actor.IsAdmin() {
		return errs.ErrNotFound
	}
	if _, err := reservation.NewPaymentDecision(decision.String()); err != nil {
		return reservation.NewValidationError(reservation.NewFieldError("decision", "decision must be paid or reject"))
	}

	now := uc.clock.Now()
	loc := uc.opts.location()
	var updated *reservation.Reservation
	var message string

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reads().ReservationForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := res.DecidePayment(decision, actor, now); err != nil {
			return err
		}

		if err := tx.Reservations().UpdateStatus(ctx, res); err != nil {
			return err
		}
		if err := tx.History().Append(ctx, reservation.PaymentEntry(res, actor, notes)); err != nil {
			return err
		}

		message = paymentMessage(res, loc, notes)
		if err := newTxNotifier(tx, now).Notify(ctx, res.UserID(), message, notification.ReservationLink(res.ID())); err != nil {
			return err
		}
		updated = res
		return nil
	})
	if err != nil {
		return classify(err)
	}

	uc.sendSMS(ctx, updated.UserID(), message)

	actorID := actor.ID
	publish(ctx, uc.events, Event{
		Type:          EventReservationPaymentDecided,
		ReservationID: updated.ID(),
		UserID:        updated.UserID(),
		Status:        updated.Status().String(),
		PaymentStatus: updated.PaymentStatus().String(),
		ActorID:       &actorID,
		OccurredAt:    now,
	})
	return nil
}

// sendSMS runs detached from the request; failures are only logged.
func (uc *lifecycleCommandsImpl) sendSMS(ctx context.Context, userID uuid.UUID, message string) {
	base := context.WithoutCancel(ctx)
	timeout := uc.opts.smsTimeout()

	go func() {
		ctx, cancel := context.WithTimeout(base, timeout)
		defer cancel()

		number, err := uc.uow.CommandReads().ContactNumber(ctx, userID)
		if err != nil {
			slog.Warn("sms skipped: contact lookup failed",
				"user_id", userID.String(),
				"error", err.Error())
			return
		}
		if number == "" {
			slog.Debug("sms skipped: no contact number", "user_id", userID.String())
			return
		}
		contact, err := user.NewContactNumber(number)
		if err != nil {
			slog.Warn("sms skipped: unusable contact number", "user_id", userID.String())
			return
		}
		if err := uc.sms.Send(ctx, contact.Value(), message); err != nil {
			slog.Warn("sms send failed",
				"user_id", userID.String(),
				"error", err.Error())
		}
	}()
}
