package api

import (
	"net/http"

	"siteforms/internal/domain/checkout"
	reqdto "siteforms/internal/handler/dto/request"
	resdto "siteforms/internal/handler/dto/response"
	"siteforms/internal/handler/httperr"
	"siteforms/internal/handler/middleware"
	"siteforms/internal/pkg/errs"
	"siteforms/internal/usecase/commands"
	"siteforms/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const receiptErrorMessage = "Payment successful but failed to generate receipt. Please contact support."

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
	q    queries.CheckoutQueries
}

func NewCheckoutHandler(cmds commands.CheckoutCommands, q queries.CheckoutQueries) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds, q: q}
}

// @Summary Order summary
// @Description Price the selected service and plan, tax included
// @Tags checkout
// @Produce json
// @Param service query string false "Service slug"
// @Param plan query string false "Plan tier"
// @Param name query string false "Explicit service display name"
// @Param price query string false "Net price"
// @Success 200 {object} resdto.SummaryResponse
// @Failure 400 {object} map[string]string
// @Router /checkout/summary [get]
func (h *CheckoutHandler) Summary(c *gin.Context) {
	var req reqdto.SummaryQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	query, err := req.ToQuery()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid price", nil)
		return
	}
	view := h.q.Summary(query)
	c.JSON(http.StatusOK, resdto.FromSummaryView(view))
}

// @Summary Begin checkout
// @Description Validate the payer form, persist the pending payment and build the gateway redirect URL
// @Tags checkout
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request formData reqdto.BeginCheckoutRequest true "Payer form"
// @Success 200 {object} resdto.BeginCheckoutResponse
// @Failure 400 {object} map[string]string
// @Router /checkout [post]
func (h *CheckoutHandler) Begin(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoSession, "Internal server error", nil)
		return
	}
	var req reqdto.BeginCheckoutRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid price", nil)
		return
	}

	result, err := h.cmds.Begin(c.Request.Context(), sessionID, cmd)
	if err != nil {
		abortCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBeginResult(result))
}

// @Summary Gateway return
// @Description Resolve the gateway return parameters into a receipt, a stored failure, or no outcome
// @Tags checkout
// @Produce json
// @Param status query string false "Gateway status"
// @Param ref query string false "Transaction reference"
// @Param transaction query string false "Gateway transaction id"
// @Param error query string false "Gateway error code"
// @Success 200 {object} resdto.ReturnResponse
// @Failure 409 {object} map[string]string
// @Router /checkout/return [get]
func (h *CheckoutHandler) Return(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoSession, "Internal server error", nil)
		return
	}
	var req reqdto.ReturnQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.HandleReturn(c.Request.Context(), sessionID, req.ToCommand())
	if err != nil {
		abortCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReturnResult(result))
}

// @Summary Download receipt
// @Description Download the plain-text receipt for a completed payment (one download per receipt)
// @Tags checkout
// @Produce plain
// @Param ref path string true "Transaction reference"
// @Success 200 {string} string
// @Failure 404 {object} map[string]string
// @Router /checkout/receipt/{ref} [get]
func (h *CheckoutHandler) Receipt(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoSession, "Internal server error", nil)
		return
	}
	doc, err := h.cmds.DownloadReceipt(c.Request.Context(), sessionID, c.Param("ref"))
	if err != nil {
		abortCheckoutError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(doc.Content))
}

// @Summary Retry payment
// @Description Clear the stored payment error so the payer can start over
// @Tags checkout
// @Success 204 "No Content"
// @Router /checkout/retry [post]
func (h *CheckoutHandler) Retry(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoSession, "Internal server error", nil)
		return
	}
	if err := h.cmds.Retry(c.Request.Context(), sessionID); err != nil {
		abortCheckoutError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Checkout progress
// @Description Current progress stage, submit-control state and any stored payment error (delivered once)
// @Tags checkout
// @Produce json
// @Success 200 {object} resdto.ProgressResponse
// @Router /checkout/progress [get]
func (h *CheckoutHandler) Progress(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoSession, "Internal server error", nil)
		return
	}

	view, err := h.q.Progress(c.Request.Context(), sessionID)
	if err != nil {
		abortCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProgressView(view))
}

// @Summary Report progress
// @Description Record a client-observed progress stage; stages only ever move forward
// @Tags checkout
// @Accept x-www-form-urlencoded
// @Param stage formData int true "Stage percentage"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Router /checkout/progress [post]
func (h *CheckoutHandler) AdvanceProgress(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoSession, "Internal server error", nil)
		return
	}
	var req reqdto.AdvanceProgressRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.AdvanceProgress(c.Request.Context(), sessionID, checkout.Stage(req.Stage)); err != nil {
		abortCheckoutError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// abortCheckoutError maps usecase errors onto the checkout API's envelope.
func abortCheckoutError(c *gin.Context, err error) {
	var verr *commands.ValidationError
	switch {
	case errs.As(err, &verr):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", verr.Fields)
	case errs.Is(err, errs.ErrFlowState):
		httperr.AbortWithError(c, http.StatusConflict, err, receiptErrorMessage, nil)
	case errs.Is(err, errs.ErrReceiptNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Receipt not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
