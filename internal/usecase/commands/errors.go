package commands

import (
	"context"
	"errors"

	"barangay-reservation/internal/domain/reservation"
	"barangay-reservation/internal/infra"
	"barangay-reservation/internal/pkg/errs"
)

// classify keeps domain errors as they are and marks everything else that
// escaped a unit of work as a persistence failure.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var (
		verr *reservation.ValidationError
		uerr *reservation.ResourceUnavailableError
		terr *reservation.InvalidTransitionError
	)
	switch {
	case errors.As(err, &verr), errors.As(err, &uerr), errors.As(err, &terr):
		return err
	case errs.Is(err, errs.ErrNotFound), errs.Is(err, errs.ErrDraftNotFound):
		return err
	case errors.Is(err, reservation.ErrActorNotPermitted), infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrNotFound)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	}
	return errs.Mark(err, errs.ErrPersistence)
}
