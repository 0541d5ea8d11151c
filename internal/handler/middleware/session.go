package middleware

import (
	"siteforms/internal/pkg/config"
	"siteforms/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxSessionIDKey = "session_id"

// SessionMiddleware gives every visitor a session id. All checkout and
// submission state is keyed by it, so it is issued unconditionally: a request
// without a valid cookie gets a fresh id rather than an error.
type SessionMiddleware struct {
	cfg config.SessionConfig
}

func NewSessionMiddleware(cfg config.SessionConfig) *SessionMiddleware {
	return &SessionMiddleware{cfg: cfg}
}

func (m *SessionMiddleware) EnsureSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := cookie.GetSessionID(c, m.cfg)
		if !ok {
			sessionID = uuid.New()
			cookie.SetSessionCookie(c, m.cfg, sessionID)
		}

		c.Set(ctxSessionIDKey, sessionID)
		c.Next()
	}
}

func GetSessionID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxSessionIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetSessionIDString(c *gin.Context) string {
	if id, ok := GetSessionID(c); ok {
		return id.String()
	}
	return ""
}
