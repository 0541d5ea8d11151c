package bootstrap

import (
	"siteforms/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		// sub-configs so components depend only on what they read
		func(cfg config.Config) config.CheckoutConfig { return cfg.Checkout },
		func(cfg config.Config) config.RateLimitConfig { return cfg.RateLimit },
		func(cfg config.Config) config.SessionConfig { return cfg.Session },
		func(cfg config.Config) config.SMTPConfig { return cfg.SMTP },
	),
)
