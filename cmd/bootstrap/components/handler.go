package components

import (
	"siteforms/internal/handler"
	"siteforms/internal/handler/api"
	"siteforms/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSessionHandler,
		api.NewCheckoutHandler,
		api.NewSubmissionHandler,
		middleware.NewSessionMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
