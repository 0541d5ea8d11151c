package bootstrap

import (
	"siteforms/internal/pkg/config"
	"siteforms/internal/pkg/csrf"

	"go.uber.org/fx"
)

var CSRFModule = fx.Module("csrf",
	fx.Provide(
		NewCSRFService,
	),
)

func NewCSRFService(cfg config.SessionConfig) *csrf.Service {
	return csrf.NewService(cfg.Secret, cfg.TokenTTL)
}
