package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"barangay-reservation/internal/domain/reservation"
	"barangay-reservation/internal/domain/resource"
	"barangay-reservation/internal/infra"
	"barangay-reservation/internal/infra/query"
	"barangay-reservation/internal/infra/repository"
	"barangay-reservation/internal/infra/repository/converter"
	"barangay-reservation/internal/pkg/errs"
	"barangay-reservation/internal/pkg/pgconv"
	"barangay-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *query.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *query.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// Serializable so two commits racing for the same units cannot both pass
// the availability re-check. Serialization failures are retried.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{q: u.q, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			q:    u.q,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx query.DBTX
	q    *query.Queries

	// Lazy-initialized repositories
	reservationRepo  shared.ReservationRepository
	historyRepo      shared.StatusHistoryRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.q, t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) History() shared.StatusHistoryRepository {
	if t.historyRepo == nil {
		t.historyRepo = repository.NewStatusHistoryRepository(t.q, t.dbtx)
	}
	return t.historyRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{q: t.q, dbtx: t.dbtx}
	}
	return t.commandReads
}

// commandReads answers the write side's questions on whatever DBTX it was
// built with: the pool, or the open transaction.
type commandReads struct {
	q    *query.Queries
	dbtx query.DBTX
}

func (r *commandReads) ResourcesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*resource.Resource, error) {
	rows, err := r.q.GetResourcesByIDs(ctx, r.dbtx, uuidStrings(ids))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load resources", err)
	}
	return toResourceMap(rows)
}

func (r *commandReads) LockResources(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*resource.Resource, error) {
	rows, err := r.q.LockResourcesByIDs(ctx, r.dbtx, uuidStrings(ids))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock resources", err)
	}
	return toResourceMap(rows)
}

func (r *commandReads) ReservationForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.q.GetReservationForUpdate(ctx, r.dbtx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}

	res, err := converter.ReservationFromRow(row, nil)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation", err)
	}
	return res, nil
}

func (r *commandReads) HeldQuantity(ctx context.Context, resourceID uuid.UUID) (int, error) {
	held, err := r.q.SumHeldQuantity(ctx, r.dbtx, query.SumHeldQuantityParams{
		ResourceID:     resourceID,
		ActiveStatuses: activeStatusStrings(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum held quantity", err)
	}
	return int(held), nil
}

func (r *commandReads) CountFacilityOverlaps(ctx context.Context, resourceID uuid.UUID, w reservation.TimeWindow) (int, error) {
	n, err := r.q.CountOverlappingReservations(ctx, r.dbtx, query.CountOverlappingReservationsParams{
		ResourceID: resourceID,
		Start:      pgconv.TimeToPgtype(w.Start()),
		End:        pgconv.TimeToPgtype(w.End()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping reservations", err)
	}
	return int(n), nil
}

func (r *commandReads) AdminIDs(ctx context.Context) ([]uuid.UUID, error) {
	ids, err := r.q.ListActiveAdminIDs(ctx, r.dbtx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list admin ids", err)
	}
	return ids, nil
}

func (r *commandReads) ContactNumber(ctx context.Context, userID uuid.UUID) (string, error) {
	contact, err := r.q.GetUserContactNumber(ctx, r.dbtx, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to load contact number", err)
	}
	if !contact.Valid {
		return "", nil
	}
	return contact.String, nil
}

func toResourceMap(rows []query.Resource) (map[uuid.UUID]*resource.Resource, error) {
	out := make(map[uuid.UUID]*resource.Resource, len(rows))
	for _, row := range rows {
		res, err := converter.ResourceFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert resource", err)
		}
		out[res.ID()] = res
	}
	return out, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func activeStatusStrings() []string {
	statuses := reservation.ActiveStatuses()
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
