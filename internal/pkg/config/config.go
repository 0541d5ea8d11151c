package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, Redis, SMTP
//   credentials) and security settings
// - default: Values common across all environments (timeouts, tax rate, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Log       LogConfig
	Session   SessionConfig
	SMTP      SMTPConfig
	Checkout  CheckoutConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type RedisConfig struct {
	Addr         string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string        `envconfig:"REDIS_PASSWORD" default:""`
	DB           int           `envconfig:"REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"REDIS_POOL_SIZE" default:"50"`
	DialTimeout  time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"800ms"`
	ReadTimeout  time.Duration `envconfig:"REDIS_READ_TIMEOUT" default:"500ms"`
	WriteTimeout time.Duration `envconfig:"REDIS_WRITE_TIMEOUT" default:"500ms"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-CSRF-Token"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type SessionConfig struct {
	Secret       string        `envconfig:"SESSION_SECRET" required:"true"`
	CookieName   string        `envconfig:"SESSION_COOKIE_NAME" default:"site_session"`
	CookieDomain string        `envconfig:"SESSION_COOKIE_DOMAIN" default:""`
	CookieSecure bool          `envconfig:"SESSION_COOKIE_SECURE" default:"false"`
	SameSite     string        `envconfig:"SESSION_COOKIE_SAMESITE" default:"Lax"`
	TokenTTL     time.Duration `envconfig:"SESSION_TOKEN_TTL" default:"2h"`
}

type SMTPConfig struct {
	Host       string `envconfig:"SMTP_HOST" required:"true"`
	Port       int    `envconfig:"SMTP_PORT" default:"587"`
	Username   string `envconfig:"SMTP_USERNAME" required:"true"`
	Password   string `envconfig:"SMTP_PASSWORD" required:"true"`
	AdminEmail string `envconfig:"ADMIN_EMAIL" required:"true"`
}

type CheckoutConfig struct {
	GatewayURL     string        `envconfig:"CHECKOUT_GATEWAY_URL" default:"https://paystack.com/demo/checkout"`
	RefPrefix      string        `envconfig:"CHECKOUT_REF_PREFIX" default:"NPDV"`
	SupportEmail   string        `envconfig:"CHECKOUT_SUPPORT_EMAIL" default:"support@npdv.com"`
	SupportPhone   string        `envconfig:"CHECKOUT_SUPPORT_PHONE" default:"+234 123 456 7890"`
	PendingTTL     time.Duration `envconfig:"CHECKOUT_PENDING_TTL" default:"24h"`
	ReceiptTTL     time.Duration `envconfig:"CHECKOUT_RECEIPT_TTL" default:"24h"`
	StoredErrorTTL time.Duration `envconfig:"CHECKOUT_STORED_ERROR_TTL" default:"1h"`
}

type RateLimitConfig struct {
	MaxPerWindow int           `envconfig:"RATE_LIMIT_MAX_PER_WINDOW" default:"5"`
	Window       time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1h"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Redis: RedisConfig{
			Addr:         "localhost:16379", // Test Redis port
			PoolSize:     10,
			DialTimeout:  800 * time.Millisecond,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Session: SessionConfig{
			Secret:     "test-session-secret",
			CookieName: "site_session",
			SameSite:   "Lax",
			TokenTTL:   2 * time.Hour,
		},
		SMTP: SMTPConfig{
			Host:       "localhost",
			Port:       1025,
			Username:   "test",
			Password:   "test",
			AdminEmail: "admin@example.com",
		},
		Checkout: CheckoutConfig{
			GatewayURL:     "https://paystack.com/demo/checkout",
			RefPrefix:      "NPDV",
			SupportEmail:   "support@npdv.com",
			SupportPhone:   "+234 123 456 7890",
			PendingTTL:     24 * time.Hour,
			ReceiptTTL:     24 * time.Hour,
			StoredErrorTTL: time.Hour,
		},
		RateLimit: RateLimitConfig{
			MaxPerWindow: 5,
			Window:       time.Hour,
		},
	}
}
