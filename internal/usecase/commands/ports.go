package commands

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"siteforms/internal/domain/forms"
	"siteforms/internal/pkg/errs"
)

// RateLimiter is the submission-throttling port; the infra implementation
// keeps a sliding window per session.
type RateLimiter interface {
	Allow(ctx context.Context, sessionID uuid.UUID) error
}

// CSRFValidator checks that a token was issued for the given session.
type CSRFValidator interface {
	ValidateToken(token string, sessionID uuid.UUID) error
}

// ValidationError carries every failing field of one submission. It marks
// errs.ErrValidation so handlers can match it without knowing the type.
type ValidationError struct {
	Fields []forms.FieldError
}

func (e *ValidationError) Error() string {
	return strings.Join(forms.Messages(e.Fields), ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == errs.ErrValidation
}
