package bootstrap

import (
	"siteforms/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	StoreModule,
	CSRFModule,
	MailerModule,
	components.InfraModule,
	components.UseCaseModule,
	components.HandlerModule,
)
