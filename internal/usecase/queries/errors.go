package queries

import (
	"barangay-reservation/internal/infra"
	"barangay-reservation/internal/pkg/errs"
)

func translate(err error) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrNotFound)
	}
	return errs.Mark(err, errs.ErrPersistence)
}
