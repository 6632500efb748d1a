//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"barangay-reservation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type UserFixture struct {
	FullName      string
	Role          string
	ContactNumber string
}

func CreateTestUser(t *testing.T, db DBLike, u UserFixture) uuid.UUID {
	t.Helper()

	if u.Role == "" {
		u.Role = "resident"
	}
	var contact *string
	if u.ContactNumber != "" {
		contact = &u.ContactNumber
	}

	userID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO users (id, full_name, contact_number, role) VALUES ($1, $2, $3, $4)",
		userID, u.FullName, contact, u.Role)
	require.NoError(t, err)
	return userID
}

// CreateTestResource inserts the resource described by b and returns its id.
func CreateTestResource(t *testing.T, db DBLike, b *builder.ResourceBuilder) uuid.UUID {
	t.Helper()

	r := b.MustBuildDomain()
	_, err := db.Exec(context.Background(), `
		INSERT INTO resources (id, name, category, quantity, status, availability,
		                       requires_payment, payment_amount, max_per_booking)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::numeric, $9)`,
		r.ID(), r.Name(), r.Category().String(), r.Quantity(), r.Status().String(), r.Availability().String(),
		r.RequiresPayment(), r.PaymentAmount().String(), r.MaxPerBooking())
	require.NoError(t, err)
	return r.ID()
}

func CountRows(t *testing.T, db DBLike, table string, where string, args ...any) int {
	t.Helper()

	sql := "SELECT count(*) FROM " + table
	if where != "" {
		sql += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), sql, args...).Scan(&n))
	return n
}

// SeedReferenceData inserts the barangay administrator every notification
// fan-out expects.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO users (id, full_name, contact_number, role)
		VALUES ($1, 'Barangay Secretary', '+639170000000', 'admin')
		ON CONFLICT (id) DO NOTHING;
	`, SeedAdminID)
	return err
}

var SeedAdminID = uuid.MustParse("00000000-0000-4000-8000-000000000001")

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
