package converter

import (
	"barangay-reservation/internal/domain/reservation"
	"barangay-reservation/internal/infra/query"
	"barangay-reservation/internal/pkg/errs"
	"barangay-reservation/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ReservationToInsert(res *reservation.Reservation) query.InsertReservationParams {
	loc := res.Location()
	window := res.Window()
	return query.InsertReservationParams{
		ID:            res.ID(),
		UserID:        res.UserID(),
		Landmark:      loc.Landmark,
		Address:       loc.Address,
		Purok:         loc.Purok,
		StartDatetime: pgconv.TimeToPgtype(window.Start()),
		EndDatetime:   pgconv.TimeToPgtype(window.End()),
		Status:        res.Status().String(),
		PaymentStatus: string(res.PaymentStatus()),
		PaymentProof:  pgconv.StringPtrToPgtype(res.PaymentProof()),
		Notes:         res.Notes(),
		CreatedAt:     pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationItemsToInsert(res *reservation.Reservation) []query.ReservationItem {
	items := res.Items()
	params := make([]query.ReservationItem, len(items))
	for i, it := range items {
		params[i] = query.ReservationItem{
			ReservationID: res.ID(),
			ResourceID:    it.ResourceID,
			Quantity:      int32(it.Quantity), // #nosec G115 -- bounded by resource quantity
		}
	}
	return params
}

func ReservationStatusToUpdate(res *reservation.Reservation) query.UpdateReservationStatusParams {
	return query.UpdateReservationStatusParams{
		ID:            res.ID(),
		Status:        res.Status().String(),
		PaymentStatus: string(res.PaymentStatus()),
		UpdatedAt:     pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

// ReservationFromRow rebuilds the aggregate. Items are optional; lifecycle
// operations never touch them.
func ReservationFromRow(row query.Reservation, items []query.ReservationItemDetailRow) (*reservation.Reservation, error) {
	window, err := reservation.NewTimeWindow(pgconv.TimeFromPgtype(row.StartDatetime), pgconv.TimeFromPgtype(row.EndDatetime))
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %s has an invalid window", row.ID)
	}
	status, err := reservation.NewStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %s has status %q", row.ID, row.Status)
	}

	domainItems := make([]reservation.Item, len(items))
	for i, it := range items {
		domainItems[i] = reservation.Item{ResourceID: it.ResourceID, Quantity: int(it.Quantity)}
	}

	return reservation.Reconstruct(
		row.ID,
		row.UserID,
		reservation.Location{Landmark: row.Landmark, Address: row.Address, Purok: row.Purok},
		window,
		status,
		reservation.PaymentStatus(row.PaymentStatus),
		pgconv.StringPtrFromPgtype(row.PaymentProof),
		row.Notes,
		domainItems,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func HistoryToInsert(e reservation.HistoryEntry) query.StatusHistory {
	paymentStatus := pgtype.Text{Valid: false}
	if e.PaymentStatus != nil {
		paymentStatus = pgtype.Text{String: string(*e.PaymentStatus), Valid: true}
	}
	return query.StatusHistory{
		ID:               e.ID,
		ReservationID:    e.ReservationID,
		Status:           e.Status.String(),
		PaymentStatus:    paymentStatus,
		Notes:            e.Notes,
		CreatedByUserID:  pgconv.UUIDPtrToPgtype(e.ByUserID),
		CreatedByAdminID: pgconv.UUIDPtrToPgtype(e.ByAdminID),
		CreatedAt:        pgconv.TimeToPgtype(e.CreatedAt),
	}
}
