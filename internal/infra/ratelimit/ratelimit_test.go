//go:build unit

package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"siteforms/internal/infra/kvstore"
	"siteforms/internal/infra/ratelimit"
	"siteforms/internal/pkg/clock"
	"siteforms/internal/pkg/config"
	"siteforms/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimiter(t *testing.T) (*ratelimit.Limiter, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC))
	store := kvstore.NewMemoryStore(clk)
	limiter := ratelimit.NewLimiter(store, clk, config.RateLimitConfig{
		MaxPerWindow: 5,
		Window:       time.Hour,
	})
	return limiter, clk
}

func TestLimiter(t *testing.T) {
	ctx := context.Background()

	t.Run("allows up to the limit then rejects", func(t *testing.T) {
		limiter, _ := newLimiter(t)
		session := uuid.New()

		for i := range 5 {
			require.NoError(t, limiter.Allow(ctx, session), "submission %d should pass", i+1)
		}
		assert.ErrorIs(t, limiter.Allow(ctx, session), errs.ErrRateLimited)
		// still rejected on a repeat attempt
		assert.ErrorIs(t, limiter.Allow(ctx, session), errs.ErrRateLimited)
	})

	t.Run("window reset allows submissions again", func(t *testing.T) {
		limiter, clk := newLimiter(t)
		session := uuid.New()

		for range 5 {
			require.NoError(t, limiter.Allow(ctx, session))
		}
		require.ErrorIs(t, limiter.Allow(ctx, session), errs.ErrRateLimited)

		clk.Advance(time.Hour + time.Minute)
		assert.NoError(t, limiter.Allow(ctx, session))
	})

	t.Run("sessions are counted independently", func(t *testing.T) {
		limiter, _ := newLimiter(t)
		a, b := uuid.New(), uuid.New()

		for range 5 {
			require.NoError(t, limiter.Allow(ctx, a))
		}
		require.ErrorIs(t, limiter.Allow(ctx, a), errs.ErrRateLimited)
		assert.NoError(t, limiter.Allow(ctx, b))
	})
}
