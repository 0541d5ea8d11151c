//go:build unit

package kvstore_test

import (
	"context"
	"testing"
	"time"

	"siteforms/internal/infra/kvstore"
	"siteforms/internal/pkg/clock"
	"siteforms/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC))
	store := kvstore.NewMemoryStore(clk)

	t.Run("missing key", func(t *testing.T) {
		_, err := store.Get(ctx, "nope")
		assert.ErrorIs(t, err, errs.ErrKeyNotFound)
	})

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "k", "v", 0))
		val, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "v", val)
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "gone", "v", 0))
		require.NoError(t, store.Clear(ctx, "gone"))
		require.NoError(t, store.Clear(ctx, "gone"))
		_, err := store.Get(ctx, "gone")
		assert.ErrorIs(t, err, errs.ErrKeyNotFound)
	})

	t.Run("ttl expiry follows the clock", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "ttl", "v", time.Hour))

		clk.Advance(59 * time.Minute)
		_, err := store.Get(ctx, "ttl")
		require.NoError(t, err)

		clk.Advance(2 * time.Minute)
		_, err = store.Get(ctx, "ttl")
		assert.ErrorIs(t, err, errs.ErrKeyNotFound)
	})
}

func TestKeyNamespacing(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	assert.NotEqual(t, kvstore.PendingPaymentKey(a), kvstore.PendingPaymentKey(b))
	assert.NotEqual(t, kvstore.PendingPaymentKey(a), kvstore.StoredErrorKey(a))
	assert.Contains(t, kvstore.PendingPaymentKey(a), "payment:pending:")
	assert.Contains(t, kvstore.StoredErrorKey(a), "payment:error:")
	assert.Contains(t, kvstore.ProgressKey(a), "payment:progress:")
	assert.Contains(t, kvstore.RateStateKey(a), "ratelimit:")
	assert.Contains(t, kvstore.ReceiptKey(a, "NPDV-1"), "receipt:")
	assert.Contains(t, kvstore.ReceiptKey(a, "NPDV-1"), "NPDV-1")
}
