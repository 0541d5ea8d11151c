package errs

import "errors"

// Sentinel errors shared across usecase layers. Handlers map these to HTTP
// statuses at the boundary; see handler/httperr.
var (
	// Form/field validation (recoverable, shown inline)
	ErrValidation = errors.New("validation error")

	// Checkout flow errors
	ErrFlowState       = errors.New("checkout flow state error")
	ErrPendingNotFound = errors.New("pending payment not found")
	ErrReceiptNotFound = errors.New("receipt not found")

	// Submission endpoint errors
	ErrCSRF        = errors.New("invalid csrf token")
	ErrRateLimited = errors.New("too many submissions")
	ErrDelivery    = errors.New("mail delivery failed")

	// Store errors
	ErrKeyNotFound = errors.New("key not found")
)
