package bootstrap

import (
	"siteforms/internal/infra/mailer"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		fx.Annotate(
			mailer.NewSMTPMailer,
			fx.As(new(mailer.Mailer)),
		),
	),
)
