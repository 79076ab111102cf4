package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finprobe/internal/domain"
)

func openTemp(t *testing.T) *DB {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "nested", "finprobe.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	n, err := db.Migrate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTemp(t)
	n, err := db.Migrate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTemp(t)
	created := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
	rev := decimal.RequireFromString("600000000.25")

	a := domain.Analysis{
		ID:        "a1",
		SessionID: "s1",
		Company:   "ACME",
		Flags:     domain.FlagSet{domain.FlagTotalRevenue5Cr: 1, domain.FlagISCR: 0},
		Financials: []domain.YearlyEntry{
			{Year: 2022, PnL: domain.PnL{LineItems: domain.LineItems{NetRevenue: &rev}}},
		},
		CreatedAt: created,
		ExpiresAt: created.Add(time.Hour),
	}
	require.NoError(t, db.Save(ctx, a))

	got, found, err := db.Latest(ctx, "s1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, a.Company, got.Company)
	assert.Equal(t, a.Flags, got.Flags)
	assert.True(t, a.CreatedAt.Equal(got.CreatedAt))
	assert.True(t, a.ExpiresAt.Equal(got.ExpiresAt))
	require.Len(t, got.Financials, 1)
	assert.True(t, rev.Equal(*got.Financials[0].PnL.LineItems.NetRevenue))
	assert.Nil(t, got.Financials[0].PnL.LineItems.Interest)

	_, found, err = db.Latest(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSaveOverwritesAndPurge(t *testing.T) {
	ctx := context.Background()
	db := openTemp(t)
	now := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, db.Save(ctx, domain.Analysis{ID: "old", SessionID: "s1", Company: "A", CreatedAt: now, ExpiresAt: now.Add(time.Minute)}))
	require.NoError(t, db.Save(ctx, domain.Analysis{ID: "new", SessionID: "s1", Company: "B", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, db.Save(ctx, domain.Analysis{ID: "x", SessionID: "s2", Company: "C", CreatedAt: now, ExpiresAt: now.Add(time.Minute)}))
	require.NoError(t, db.Save(ctx, domain.Analysis{ID: "y", SessionID: "s3", Company: "D", CreatedAt: now}))

	got, _, err := db.Latest(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "new", got.ID)
	assert.Equal(t, "B", got.Company)

	n, err := db.PurgeExpired(ctx, now.Add(2*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, found, _ := db.Latest(ctx, "s2")
	assert.False(t, found)
	_, found, _ = db.Latest(ctx, "s3")
	assert.True(t, found)
}
