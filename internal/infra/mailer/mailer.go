// Package mailer relays validated form submissions to the site
// administrator over SMTP.
package mailer

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	gomail "gopkg.in/gomail.v2"

	"siteforms/internal/pkg/config"
	"siteforms/internal/pkg/errs"
)

// Submission is the sanitized content of one relayed form.
type Submission struct {
	Name    string
	Email   string
	Phone   string
	Message string
	Subject string
}

// Mailer is the delivery port. The production implementation speaks SMTP;
// tests substitute a mock.
type Mailer interface {
	Send(ctx context.Context, sub Submission) error
}

type SMTPMailer struct {
	dialer     *gomail.Dialer
	adminEmail string
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer:     gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		adminEmail: cfg.AdminEmail,
	}
}

var bodyTmpl = template.Must(template.New("submission").Parse(`<html>
<head>
<style>
    body { font-family: Arial, sans-serif; line-height: 1.6; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background-color: #391b52; color: white; padding: 20px; text-align: center; }
    .content { padding: 20px; background-color: #f9f9f9; }
    .footer { text-align: center; padding: 20px; color: #666; }
</style>
</head>
<body>
<div class="container">
    <div class="header">
        <h2>{{.Subject}}</h2>
    </div>
    <div class="content">
        <p><strong>Name:</strong> {{.Name}}</p>
        <p><strong>Email:</strong> {{.Email}}</p>
        <p><strong>Phone:</strong> {{.Phone}}</p>
        <p><strong>Message:</strong></p>
        <p>{{.MessageHTML}}</p>
    </div>
    <div class="footer">
        <p>This email was sent from the contact form on your website.</p>
    </div>
</div>
</body>
</html>`))

// Send relays the submission to the admin address with the submitter as
// reply-to, as an HTML message with a plain-text alternative.
func (m *SMTPMailer) Send(_ context.Context, sub Submission) error {
	var html strings.Builder
	err := bodyTmpl.Execute(&html, map[string]any{
		"Subject":     sub.Subject,
		"Name":        sub.Name,
		"Email":       sub.Email,
		"Phone":       sub.Phone,
		"MessageHTML": template.HTML(strings.ReplaceAll(template.HTMLEscapeString(sub.Message), "\n", "<br>")),
	})
	if err != nil {
		return errs.Wrap(err, "render mail body")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.adminEmail)
	msg.SetHeader("To", m.adminEmail)
	msg.SetHeader("Reply-To", msg.FormatAddress(sub.Email, sub.Name))
	msg.SetHeader("Subject", sub.Subject)
	msg.SetBody("text/plain", fmt.Sprintf(
		"Name: %s\nEmail: %s\nPhone: %s\n\nMessage:\n%s", sub.Name, sub.Email, sub.Phone, sub.Message))
	msg.AddAlternative("text/html", html.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		return errs.Mark(errs.Wrap(err, "smtp send"), errs.ErrDelivery)
	}
	return nil
}
