// Package ratelimit applies the per-session sliding-hour submission limit.
package ratelimit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"siteforms/internal/infra/kvstore"
	"siteforms/internal/pkg/clock"
	"siteforms/internal/pkg/config"
	"siteforms/internal/pkg/errs"
)

// RateState is one session's submission counter. The counter resets to zero
// whenever the window has fully elapsed since windowStart.
type RateState struct {
	Count       int       `json:"count"`
	WindowStart time.Time `json:"window_start"`
}

type Limiter struct {
	store  kvstore.Store
	clock  clock.Clock
	max    int
	window time.Duration
}

func NewLimiter(store kvstore.Store, clk clock.Clock, cfg config.RateLimitConfig) *Limiter {
	return &Limiter{
		store:  store,
		clock:  clk,
		max:    cfg.MaxPerWindow,
		window: cfg.Window,
	}
}

// Allow consumes one submission slot for the session. It returns
// errs.ErrRateLimited (and leaves the counter untouched) once the session
// has used up its window.
func (l *Limiter) Allow(ctx context.Context, sessionID uuid.UUID) error {
	key := kvstore.RateStateKey(sessionID)
	now := l.clock.Now()

	state := RateState{WindowStart: now}
	raw, err := l.store.Get(ctx, key)
	switch {
	case err == nil:
		if uerr := json.Unmarshal([]byte(raw), &state); uerr != nil {
			// A corrupt counter starts a fresh window rather than locking
			// the session out.
			state = RateState{WindowStart: now}
		}
	case errs.Is(err, errs.ErrKeyNotFound):
		// first submission in this session
	default:
		return errs.Wrap(err, "rate limit read")
	}

	if now.Sub(state.WindowStart) > l.window {
		state = RateState{WindowStart: now}
	}

	if state.Count >= l.max {
		return errs.ErrRateLimited
	}

	state.Count++
	encoded, err := json.Marshal(state)
	if err != nil {
		return errs.Wrap(err, "rate limit encode")
	}
	// TTL keeps stale counters from accumulating; twice the window is
	// enough since a full window elapsed resets anyway.
	if err := l.store.Set(ctx, key, string(encoded), 2*l.window); err != nil {
		return errs.Wrap(err, "rate limit write")
	}
	return nil
}
