package analyses

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finprobe/internal/adapters/memory"
	"finprobe/internal/domain"
	"finprobe/internal/services/evaluator"
)

const session = "3f1c2d5e-8a7b-4c6d-9e0f-112233445566"

func doc(company string, revenue string) string {
	return `{"data": {"company": {"legal_name": "` + company + `"},
		"financials": [{"year": 2022, "pnl": {"lineItems": {"net_revenue": ` + revenue + `}}}]}}`
}

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

func newService(t *testing.T, ttl time.Duration) (*Service, *memory.Store, *fixedClock) {
	t.Helper()
	clock := &fixedClock{now: time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)}
	store := memory.New()
	return New(store, evaluator.New(domain.DefaultThresholds()), ttl, WithClock(clock.Now)), store, clock
}

func TestSubmitAndCurrent(t *testing.T) {
	svc, _, clock := newService(t, time.Hour)
	ctx := context.Background()

	a, err := svc.Submit(ctx, session, strings.NewReader(doc("ACME", "600000000")))
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, session, a.SessionID)
	assert.Equal(t, "ACME", a.Company)
	assert.Equal(t, 1, a.Flags[domain.FlagTotalRevenue5Cr])
	assert.Equal(t, clock.now.Add(time.Hour), a.ExpiresAt)

	got, err := svc.Current(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
}

func TestSubmitOverwritesSession(t *testing.T) {
	svc, _, _ := newService(t, time.Hour)
	ctx := context.Background()

	_, err := svc.Submit(ctx, session, strings.NewReader(doc("ACME", "600000000")))
	require.NoError(t, err)
	second, err := svc.Submit(ctx, session, strings.NewReader(doc("BETA", "100")))
	require.NoError(t, err)

	got, err := svc.Current(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
	assert.Equal(t, "BETA", got.Company)
	assert.Equal(t, 0, got.Flags[domain.FlagTotalRevenue5Cr])
}

func TestSubmitMalformedKeepsPreviousAnalysis(t *testing.T) {
	svc, _, _ := newService(t, time.Hour)
	ctx := context.Background()

	first, err := svc.Submit(ctx, session, strings.NewReader(doc("ACME", "600000000")))
	require.NoError(t, err)

	_, err = svc.Submit(ctx, session, strings.NewReader(`{"data": {"company": {"legal_name": "X"}}}`))
	var malformed *domain.MalformedInputError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "data.financials", malformed.Field)

	got, err := svc.Current(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}

func TestCurrentMissingAndExpired(t *testing.T) {
	svc, _, clock := newService(t, time.Minute)
	ctx := context.Background()

	_, err := svc.Current(ctx, session)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Submit(ctx, session, strings.NewReader(doc("ACME", "1")))
	require.NoError(t, err)

	clock.now = clock.now.Add(time.Minute)
	_, err = svc.Current(ctx, session)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEvaluateDoesNotStore(t *testing.T) {
	svc, store, _ := newService(t, time.Hour)
	ctx := context.Background()

	a, err := svc.Evaluate(ctx, strings.NewReader(doc("ACME", "600000000")))
	require.NoError(t, err)
	assert.Empty(t, a.SessionID)
	assert.True(t, a.ExpiresAt.IsZero())

	_, found, err := store.Latest(ctx, "")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSubmitRequiresSession(t *testing.T) {
	svc, _, _ := newService(t, time.Hour)
	_, err := svc.Submit(context.Background(), "", strings.NewReader(doc("ACME", "1")))
	assert.Error(t, err)
}
