package components

import (
	"siteforms/internal/domain/checkout"
	"siteforms/internal/pkg/clock"
	"siteforms/internal/pkg/csrf"
	"siteforms/internal/usecase/commands"
	"siteforms/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	checkout.DefaultRefSource,
	fx.Annotate(
		func(s *csrf.Service) *csrf.Service { return s },
		fx.As(new(commands.CSRFValidator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCheckoutUseCase,
		commands.NewSubmissionUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCheckoutQueries,
	),
)
