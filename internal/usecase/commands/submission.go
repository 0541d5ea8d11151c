package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"siteforms/internal/domain/forms"
	"siteforms/internal/infra/mailer"
	"siteforms/internal/pkg/errs"
	"siteforms/internal/pkg/sanitize"
)

const (
	contactSuccessMessage    = "Thank you for your message. We will get back to you soon!"
	newsletterSuccessMessage = "Thank you for subscribing to our newsletter."
)

type ContactRequest struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

type SubmissionCommands interface {
	SubmitContact(ctx context.Context, sessionID uuid.UUID, csrfToken string, req ContactRequest) (string, error)
	SubmitNewsletter(ctx context.Context, sessionID uuid.UUID, csrfToken string, email string) (string, error)
}

type submissionUseCaseImpl struct {
	csrf    CSRFValidator
	limiter RateLimiter
	mailer  mailer.Mailer
}

func NewSubmissionUseCase(csrf CSRFValidator, limiter RateLimiter, m mailer.Mailer) SubmissionCommands {
	return &submissionUseCaseImpl{
		csrf:    csrf,
		limiter: limiter,
		mailer:  m,
	}
}

// SubmitContact guards (CSRF, rate limit), sanitizes, validates and relays
// one contact submission. No email is ever sent for a partially valid form.
func (uc *submissionUseCaseImpl) SubmitContact(ctx context.Context, sessionID uuid.UUID, csrfToken string, req ContactRequest) (string, error) {
	if err := uc.guard(ctx, sessionID, csrfToken); err != nil {
		return "", err
	}

	name := sanitize.Line(req.Name)
	email := sanitize.Line(req.Email)
	phone := sanitize.Line(req.Phone)
	message := sanitize.Text(req.Message)

	fieldErrs := forms.ContactForm().Validate(map[string]string{
		"name":    name,
		"email":   email,
		"phone":   phone,
		"message": message,
	})
	if len(fieldErrs) > 0 {
		return "", &ValidationError{Fields: fieldErrs}
	}

	err := uc.mailer.Send(ctx, mailer.Submission{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Message: message,
		Subject: "New Contact Form Submission from " + name,
	})
	if err != nil {
		// Log the real cause; the caller only ever sees a generic error.
		slog.Error("contact submission delivery failed", "error", err, "session_id", sessionID)
		return "", errs.Mark(err, errs.ErrDelivery)
	}

	return contactSuccessMessage, nil
}

// SubmitNewsletter is the email-only variant with the same guards.
func (uc *submissionUseCaseImpl) SubmitNewsletter(ctx context.Context, sessionID uuid.UUID, csrfToken string, email string) (string, error) {
	if err := uc.guard(ctx, sessionID, csrfToken); err != nil {
		return "", err
	}

	email = sanitize.Line(email)
	fieldErrs := forms.NewsletterForm().Validate(map[string]string{"email": email})
	if len(fieldErrs) > 0 {
		return "", &ValidationError{Fields: fieldErrs}
	}

	err := uc.mailer.Send(ctx, mailer.Submission{
		Name:    "Newsletter Subscriber",
		Email:   email,
		Message: "New newsletter subscription: " + email,
		Subject: "Newsletter subscription",
	})
	if err != nil {
		slog.Error("newsletter subscription delivery failed", "error", err, "session_id", sessionID)
		return "", errs.Mark(err, errs.ErrDelivery)
	}

	return newsletterSuccessMessage, nil
}

// guard enforces the CSRF and rate-limit checks shared by all submissions.
// The rate counter is consumed before validation, matching the endpoint's
// long-standing behavior.
func (uc *submissionUseCaseImpl) guard(ctx context.Context, sessionID uuid.UUID, csrfToken string) error {
	if csrfToken == "" {
		return errs.ErrCSRF
	}
	if err := uc.csrf.ValidateToken(csrfToken, sessionID); err != nil {
		return errs.Mark(err, errs.ErrCSRF)
	}
	if err := uc.limiter.Allow(ctx, sessionID); err != nil {
		return err
	}
	return nil
}
