package cookie

import (
	"net/http"

	"siteforms/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SetSessionCookie writes the visitor's session id. HttpOnly; the client
// never needs to read it, only send it back.
func SetSessionCookie(c *gin.Context, cfg config.SessionConfig, sessionID uuid.UUID) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		cfg.CookieName,
		sessionID.String(),
		int(cfg.TokenTTL.Seconds()),
		"/",
		cfg.CookieDomain,
		cfg.CookieSecure,
		true, // HttpOnly
	)
}

func ClearSessionCookie(c *gin.Context, cfg config.SessionConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		cfg.CookieName,
		"",
		-1,
		"/",
		cfg.CookieDomain,
		cfg.CookieSecure,
		true,
	)
}

// GetSessionID parses the session cookie. uuid.Nil with ok=false means the
// cookie is absent or not a UUID.
func GetSessionID(c *gin.Context, cfg config.SessionConfig) (uuid.UUID, bool) {
	raw, err := c.Cookie(cfg.CookieName)
	if err != nil || raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
