package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"barangay-reservation/internal/domain/availability"
	"barangay-reservation/internal/domain/notification"
	"barangay-reservation/internal/domain/reservation"
	"barangay-reservation/internal/pkg/clock"
	"barangay-reservation/internal/pkg/errs"
	"barangay-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type BuildDraftRequest struct {
	Landmark string
	Address  string
	Purok    string
	Start    time.Time
	End      time.Time
	Items    []reservation.Item
	Notes    string
}

type ReservationCommands interface {
	// BuildDraft validates a booking and stores it as a draft.
	BuildDraft(ctx context.Context, userID uuid.UUID, req BuildDraftRequest) (*reservation.Draft, error)
	GetDraft(ctx context.Context, userID, draftID uuid.UUID) (*reservation.Draft, error)
	// CommitReservation stores the optional payment proof, then commits the draft.
	CommitReservation(ctx context.Context, userID, draftID uuid.UUID, paymentProof *FileUpload) (uuid.UUID, error)
	// Commit atomically writes the reservation, its items, the first history
	// row and one notification per admin.
	Commit(ctx context.Context, draft *reservation.Draft, paymentProofRef *string) (uuid.UUID, error)
}

type reservationCommandsImpl struct {
	uow    shared.UnitOfWork
	drafts DraftStore
	files  FileStore
	events EventPublisher
	fees   reservation.FeeCalculator
	clock  clock.Clock
	opts   Options
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	drafts DraftStore,
	files FileStore,
	events EventPublisher,
	fees reservation.FeeCalculator,
	clk clock.Clock,
	opts Options,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:    uow,
		drafts: drafts,
		files:  files,
		events: events,
		fees:   fees,
		clock:  clk,
		opts:   opts,
	}
}

func (uc *reservationCommandsImpl) BuildDraft(ctx context.Context, userID uuid.UUID, req BuildDraftRequest) (*reservation.Draft, error) {
	reads := uc.uow.CommandReads()
	services := &reservation.Services{
		Clock:        uc.clock,
		Availability: availability.NewChecker(reads),
		Resources:    reads,
		Fees:         uc.fees,
	}

	draft, err := reservation.NewDraftBuilder(services, uc.opts.Policy).Build(ctx, reservation.DraftInput{
		UserID:   userID,
		Landmark: req.Landmark,
		Address:  req.Address,
		Purok:    req.Purok,
		Start:    req.Start,
		End:      req.End,
		Items:    req.Items,
		Notes:    req.Notes,
	})
	if err != nil {
		return nil, classify(err)
	}

	if err := uc.drafts.Save(ctx, draft, uc.opts.Policy.DraftTTL); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to save draft"), errs.ErrPersistence)
	}
	return draft, nil
}

func (uc *reservationCommandsImpl) GetDraft(ctx context.Context, userID, draftID uuid.UUID) (*reservation.Draft, error) {
	draft, err := uc.drafts.Get(ctx, draftID)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to load draft"), errs.ErrPersistence)
	}
	if draft == nil || !draft.IsOwnedBy(userID) || draft.IsExpired(uc.clock.Now()) {
		return nil, errs.ErrDraftNotFound
	}
	return draft, nil
}

func (uc *reservationCommandsImpl) CommitReservation(ctx context.Context, userID, draftID uuid.UUID, paymentProof *FileUpload) (uuid.UUID, error) {
	draft, err := uc.GetDraft(ctx, userID, draftID)
	if err != nil {
		return uuid.Nil, err
	}

	var proofRef *string
	if paymentProof != nil && draft.RequiresPayment {
		ref, err := uc.files.Store(ctx, *paymentProof, FileCategoryPaymentProof)
		if err != nil || ref == "" {
			slog.Warn("payment proof upload failed",
				"draft_id", draftID.String(),
				"error", err)
			return uuid.Nil, reservation.NewValidationError(
				reservation.NewFieldError("payment_proof", errs.ErrUploadFailed.Error()),
			)
		}
		proofRef = &ref
	}

	return uc.Commit(ctx, draft, proofRef)
}

func (uc *reservationCommandsImpl) Commit(ctx context.Context, draft *reservation.Draft, paymentProofRef *string) (uuid.UUID, error) {
	now := uc.clock.Now()
	if err := uc.opts.Policy.RecheckLeadTime(draft, now); err != nil {
		return uuid.Nil, err
	}
	res, err := reservation.NewFromDraft(draft, paymentProofRef, now)
	if err != nil {
		if errors.Is(err, reservation.ErrEmptyDraft) {
			return uuid.Nil, reservation.NewValidationError(reservation.NewFieldError("items", "select at least one resource"))
		}
		return uuid.Nil, reservation.NewValidationError(reservation.NewFieldError("end", "end must be after start"))
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := recheckAvailability(ctx, tx, draft, res.Window()); err != nil {
			return err
		}
		if err := tx.Reservations().Create(ctx, res); err != nil {
			return err
		}
		if err := tx.History().Append(ctx, reservation.SubmittedEntry(res)); err != nil {
			return err
		}
		return newTxNotifier(tx, now).NotifyAllAdmins(ctx,
			submittedMessage(res.Window(), uc.opts.location()),
			notification.ReservationLink(res.ID()))
	})
	if err != nil {
		return uuid.Nil, classify(err)
	}

	if err := uc.drafts.Delete(ctx, draft.ID); err != nil {
		slog.Warn("failed to delete committed draft",
			"draft_id", draft.ID.String(),
			"error", err.Error())
	}
	publish(ctx, uc.events, Event{
		Type:          EventReservationSubmitted,
		ReservationID: res.ID(),
		UserID:        res.UserID(),
		Status:        res.Status().String(),
		PaymentStatus: res.PaymentStatus().String(),
		OccurredAt:    now,
	})

	return res.ID(), nil
}

// recheckAvailability locks the selected resources and repeats the
// availability checks against the transaction's view of the ledger.
func recheckAvailability(ctx context.Context, tx shared.Tx, draft *reservation.Draft, window reservation.TimeWindow) error {
	locked, err := tx.Reads().LockResources(ctx, draft.ResourceIDs())
	if err != nil {
		return err
	}

	checker := availability.NewChecker(tx.Reads())
	var problems []error
	for _, it := range draft.Items {
		res, ok := locked[it.ResourceID]
		if !ok {
			problems = append(problems, reservation.NewFieldError("items", fmt.Sprintf("%s no longer exists", it.Name)))
			continue
		}
		if err := checker.Check(ctx, res, it.Quantity, &window); err != nil {
			var unavailable *reservation.ResourceUnavailableError
			if !errors.As(err, &unavailable) {
				return err
			}
			problems = append(problems, unavailable)
		}
	}
	return reservation.NewValidationError(problems...)
}

func publish(ctx context.Context, events EventPublisher, event Event) {
	if err := events.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish event",
			"type", event.Type,
			"reservation_id", event.ReservationID.String(),
			"error", err.Error())
	}
}
