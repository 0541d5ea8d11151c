// Package kvstore is the small persistence boundary for everything that
// outlives one request: pending payments, stored payment errors, checkout
// progress, receipts and rate-limit windows. Keys are namespaced so a
// session can never read another session's state by accident.
package kvstore

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Store interface {
	// Get returns the stored value or errs.ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set writes value under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// Clear removes key. Clearing an absent key is not an error.
	Clear(ctx context.Context, key string) error
}

// Key namespaces. All session state is keyed by the session UUID.
func PendingPaymentKey(sessionID uuid.UUID) string {
	return "payment:pending:" + sessionID.String()
}

func StoredErrorKey(sessionID uuid.UUID) string {
	return "payment:error:" + sessionID.String()
}

func ProgressKey(sessionID uuid.UUID) string {
	return "payment:progress:" + sessionID.String()
}

func ReceiptKey(sessionID uuid.UUID, reference string) string {
	return "receipt:" + sessionID.String() + ":" + reference
}

func RateStateKey(sessionID uuid.UUID) string {
	return "ratelimit:" + sessionID.String()
}
