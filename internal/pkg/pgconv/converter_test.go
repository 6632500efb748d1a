//go:build unit

package pgconv

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableRoundTrip(t *testing.T) {
	t.Run("uuid", func(t *testing.T) {
		assert.Nil(t, UUIDPtrFromPgtype(UUIDPtrToPgtype(nil)))

		id := uuid.New()
		got := UUIDPtrFromPgtype(UUIDPtrToPgtype(&id))
		require.NotNil(t, got)
		assert.Equal(t, id, *got)
		assert.Equal(t, id, uuid.UUID(UUIDToPgtype(id).Bytes))
	})

	t.Run("text", func(t *testing.T) {
		assert.Nil(t, StringPtrFromPgtype(StringPtrToPgtype(nil)))

		notes := "Keys at the hall"
		got := StringPtrFromPgtype(StringPtrToPgtype(&notes))
		require.NotNil(t, got)
		assert.Equal(t, notes, *got)
	})

	t.Run("int4", func(t *testing.T) {
		assert.Nil(t, Int32PtrFromPgtype(pgtype.Int4{}))

		got := Int32PtrFromPgtype(pgtype.Int4{Int32: 30, Valid: true})
		require.NotNil(t, got)
		assert.Equal(t, int32(30), *got)
	})

	t.Run("timestamptz", func(t *testing.T) {
		at := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
		assert.True(t, at.Equal(TimeFromPgtype(TimeToPgtype(at))))
	})
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.True(t, IsNoRows(fmt.Errorf("load reservation: %w", pgx.ErrNoRows)))
	assert.False(t, IsNoRows(nil))
	assert.False(t, IsNoRows(assert.AnError))
}
