package api

import (
	"errors"
	"net/http"

	resdto "siteforms/internal/handler/dto/response"
	"siteforms/internal/handler/httperr"
	"siteforms/internal/handler/middleware"
	"siteforms/internal/pkg/csrf"

	"github.com/gin-gonic/gin"
)

// every /api route sits behind EnsureSession, so a missing id is a wiring bug
var errNoSession = errors.New("session middleware not applied")

type SessionHandler struct {
	csrfService *csrf.Service
}

func NewSessionHandler(csrfService *csrf.Service) *SessionHandler {
	return &SessionHandler{csrfService: csrfService}
}

// @Summary Issue session
// @Description Ensure the visitor has a session cookie and return a CSRF token bound to it
// @Tags session
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Failure 500 {object} map[string]string
// @Router /session [get]
func (h *SessionHandler) Get(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoSession, "Internal server error", nil)
		return
	}

	token, err := h.csrfService.GenerateToken(sessionID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.SessionResponse{
		SessionID: sessionID.String(),
		CSRFToken: token,
	})
}
