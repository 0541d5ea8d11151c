package api

import (
	"net/http"

	reqdto "siteforms/internal/handler/dto/request"
	resdto "siteforms/internal/handler/dto/response"
	"siteforms/internal/handler/httperr"
	"siteforms/internal/handler/middleware"
	"siteforms/internal/pkg/errs"
	"siteforms/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// Fixed messages of the form endpoints. The front end shows them verbatim.
const (
	msgInvalidRequest = "Invalid request. Please refresh the page and try again."
	msgRateLimited    = "Too many submissions. Please try again later."
	msgDeliveryError  = "Sorry, there was an error sending your message. Please try again later."
)

type SubmissionHandler struct {
	cmds commands.SubmissionCommands
}

func NewSubmissionHandler(cmds commands.SubmissionCommands) *SubmissionHandler {
	return &SubmissionHandler{cmds: cmds}
}

// @Summary Contact form
// @Description Relay a contact form submission to the site administrator
// @Tags submissions
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request formData reqdto.ContactRequest true "Contact form"
// @Success 200 {object} resdto.SubmissionResponse
// @Failure 400 {object} resdto.SubmissionResponse
// @Failure 403 {object} resdto.SubmissionResponse
// @Failure 429 {object} resdto.SubmissionResponse
// @Router /contact [post]
func (h *SubmissionHandler) Contact(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithFormError(c, http.StatusInternalServerError, errNoSession, msgDeliveryError)
		return
	}
	var req reqdto.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithFormError(c, http.StatusBadRequest, err, msgInvalidRequest)
		return
	}

	message, err := h.cmds.SubmitContact(c.Request.Context(), sessionID, req.CSRFToken, req.ToCommand())
	if err != nil {
		abortSubmissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SubmissionSuccess(message))
}

// @Summary Newsletter subscription
// @Description Subscribe an email address to the newsletter
// @Tags submissions
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request formData reqdto.NewsletterRequest true "Newsletter form"
// @Success 200 {object} resdto.SubmissionResponse
// @Failure 400 {object} resdto.SubmissionResponse
// @Failure 403 {object} resdto.SubmissionResponse
// @Failure 429 {object} resdto.SubmissionResponse
// @Router /newsletter [post]
func (h *SubmissionHandler) Newsletter(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithFormError(c, http.StatusInternalServerError, errNoSession, msgDeliveryError)
		return
	}
	var req reqdto.NewsletterRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithFormError(c, http.StatusBadRequest, err, msgInvalidRequest)
		return
	}

	message, err := h.cmds.SubmitNewsletter(c.Request.Context(), sessionID, req.CSRFToken, req.Email)
	if err != nil {
		abortSubmissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SubmissionSuccess(message))
}

// abortSubmissionError keeps the original endpoint's behavior: validation
// failures echo every field message; CSRF and rate-limit rejections stay
// deliberately vague; delivery failures never leak SMTP details.
func abortSubmissionError(c *gin.Context, err error) {
	var verr *commands.ValidationError
	switch {
	case errs.Is(err, errs.ErrCSRF):
		httperr.AbortWithFormError(c, http.StatusForbidden, err, msgInvalidRequest)
	case errs.Is(err, errs.ErrRateLimited):
		httperr.AbortWithFormError(c, http.StatusTooManyRequests, err, msgRateLimited)
	case errs.As(err, &verr):
		httperr.AbortWithFormError(c, http.StatusBadRequest, err, verr.Error())
	case errs.Is(err, errs.ErrDelivery):
		httperr.AbortWithFormError(c, http.StatusInternalServerError, err, msgDeliveryError)
	default:
		httperr.AbortWithFormError(c, http.StatusInternalServerError, err, msgDeliveryError)
	}
}
