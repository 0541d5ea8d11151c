package checkout

import (
	"fmt"
	"math/rand"
	"regexp"
)

// RefSource yields the numeric part of a checkout reference. It is a
// swap-point: the default source is non-cryptographic with a collision-prone
// range (kept for URL-contract compatibility); replace it with a
// collision-resistant source without touching callers if uniqueness starts
// to matter.
type RefSource func() int64

const refMax = 1_000_000_000

func DefaultRefSource() RefSource {
	return func() int64 {
		return rand.Int63n(refMax) + 1
	}
}

// NewReference builds a gateway reference: "<PREFIX>-<n>".
func NewReference(prefix string, src RefSource) string {
	return fmt.Sprintf("%s-%d", prefix, src())
}

// RefPattern reports whether ref matches the fixed "<PREFIX>-<digits>"
// shape for the given prefix.
func RefPattern(prefix string) *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `-[0-9]+$`)
}
