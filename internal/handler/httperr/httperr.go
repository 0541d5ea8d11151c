// Package httperr converts usecase errors into the two response shapes the
// site's front end understands: the structured error envelope used by the
// checkout API, and the flat status/message document the form endpoints have
// always returned.
package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// FormResponse is the legacy contract of the form endpoints. Status is
// always "success" or "error".
type FormResponse struct {
	HTTPStatus int    `json:"-"`
	Status     string `json:"status"`
	Message    string `json:"message"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithFormError is AbortWithError for the form endpoints' flat shape.
func AbortWithFormError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithFormError: err cannot be nil")
	}

	resp := FormResponse{HTTPStatus: status, Status: "error", Message: msg}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
