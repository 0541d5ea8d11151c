package components

import (
	"siteforms/internal/infra/ratelimit"
	"siteforms/internal/usecase/commands"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		fx.Annotate(
			ratelimit.NewLimiter,
			fx.As(new(commands.RateLimiter)),
		),
	),
)
