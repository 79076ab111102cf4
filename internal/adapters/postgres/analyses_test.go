package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finprobe/internal/domain"
)

// Runs against a real database only when TEST_DATABASE_URL is set.
func connect(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	db, err := Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	_, err = db.Migrate(ctx)
	require.NoError(t, err)
	return db
}

func TestRoundTripAndPurge(t *testing.T) {
	ctx := context.Background()
	db := connect(t)
	session := uuid.NewString()
	created := time.Now().UTC().Truncate(time.Second)
	rev := decimal.NewFromInt(600000000)

	a := domain.Analysis{
		ID:         uuid.NewString(),
		SessionID:  session,
		Company:    "ACME",
		Flags:      domain.FlagSet{domain.FlagTotalRevenue5Cr: 1},
		Financials: []domain.YearlyEntry{{Year: 2022, PnL: domain.PnL{LineItems: domain.LineItems{NetRevenue: &rev}}}},
		CreatedAt:  created,
		ExpiresAt:  created.Add(time.Minute),
	}
	require.NoError(t, db.Save(ctx, a))

	got, found, err := db.Latest(ctx, session)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, a.Flags, got.Flags)
	assert.True(t, a.ExpiresAt.Equal(got.ExpiresAt))
	assert.True(t, rev.Equal(*got.Financials[0].PnL.LineItems.NetRevenue))

	n, err := db.PurgeExpired(ctx, created.Add(2*time.Minute))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, int64(1))
	_, found, err = db.Latest(ctx, session)
	require.NoError(t, err)
	assert.False(t, found)
}
