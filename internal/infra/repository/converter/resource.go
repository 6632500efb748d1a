package converter

import (
	"barangay-reservation/internal/domain/resource"
	"barangay-reservation/internal/infra/query"
	"barangay-reservation/internal/pkg/errs"
	"barangay-reservation/internal/pkg/pgconv"
)

func ResourceFromRow(row query.Resource) (*resource.Resource, error) {
	amount, err := resource.NewMoney(row.PaymentAmountCentavos)
	if err != nil {
		return nil, errs.Wrapf(err, "resource %s has an invalid payment amount", row.ID)
	}

	var maxPerBooking *int
	if p := pgconv.Int32PtrFromPgtype(row.MaxPerBooking); p != nil {
		v := int(*p)
		maxPerBooking = &v
	}

	res, err := resource.NewResource(resource.Params{
		ID:              row.ID,
		Name:            row.Name,
		Category:        resource.Category(row.Category),
		Quantity:        int(row.Quantity),
		Status:          resource.Status(row.Status),
		Availability:    resource.Availability(row.Availability),
		RequiresPayment: row.RequiresPayment,
		PaymentAmount:   amount,
		MaxPerBooking:   maxPerBooking,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	})
	if err != nil {
		return nil, errs.Wrapf(err, "resource %s failed validation", row.ID)
	}
	return res, nil
}
