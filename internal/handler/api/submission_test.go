//go:build unit

package api_test

import (
	"net/http"
	"net/url"
	"testing"

	"siteforms/internal/domain/forms"
	"siteforms/internal/handler/api"
	resdto "siteforms/internal/handler/dto/response"
	"siteforms/internal/pkg/errs"
	"siteforms/internal/usecase/commands"
	"siteforms/tests/common/httptest"
	commandsmock "siteforms/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SubmissionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSubmissionCommands
	handler      *api.SubmissionHandler
	sessionID    uuid.UUID
}

func (s *SubmissionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.sessionID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSubmissionCommands(s.mockCtrl)
	s.handler = api.NewSubmissionHandler(s.mockCommands)

	s.router.Use(func(c *gin.Context) {
		c.Set("session_id", s.sessionID)
	})
	s.router.POST("/contact", s.handler.Contact)
	s.router.POST("/newsletter", s.handler.Newsletter)
}

func (s *SubmissionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSubmissionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SubmissionHandlerTestSuite))
}

func (s *SubmissionHandlerTestSuite) contactForm() url.Values {
	form := url.Values{}
	form.Set("name", "Ada Obi")
	form.Set("email", "ada@example.com")
	form.Set("message", "I would like a quote for a new website.")
	form.Set("csrf_token", "token-123")
	return form
}

func (s *SubmissionHandlerTestSuite) TestContact() {
	s.Run("success: flat status/message document", func() {
		s.mockCommands.EXPECT().
			SubmitContact(gomock.Any(), s.sessionID, "token-123", gomock.Any()).
			Return("Thank you for your message. We will get back to you soon!", nil).Times(1)

		rec := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, "/contact", s.contactForm(), nil)

		var resp resdto.SubmissionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("success", resp.Status)
		s.Contains(resp.Message, "Thank you for your message")
	})

	s.Run("error: 403 on CSRF rejection, message stays vague", func() {
		s.mockCommands.EXPECT().
			SubmitContact(gomock.Any(), s.sessionID, "token-123", gomock.Any()).
			Return("", errs.ErrCSRF).Times(1)

		rec := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, "/contact", s.contactForm(), nil)
		httptest.AssertFormErrorResponse(s.T(), rec, http.StatusForbidden, "Invalid request")
	})

	s.Run("error: 429 when rate limited", func() {
		s.mockCommands.EXPECT().
			SubmitContact(gomock.Any(), s.sessionID, "token-123", gomock.Any()).
			Return("", errs.ErrRateLimited).Times(1)

		rec := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, "/contact", s.contactForm(), nil)
		httptest.AssertFormErrorResponse(s.T(), rec, http.StatusTooManyRequests, "Too many submissions")
	})

	s.Run("error: 400 echoes every field message", func() {
		s.mockCommands.EXPECT().
			SubmitContact(gomock.Any(), s.sessionID, "token-123", gomock.Any()).
			Return("", &commands.ValidationError{Fields: []forms.FieldError{
				{Field: "email", Message: "Please enter a valid email address"},
				{Field: "message", Message: "Message must be at least 10 characters"},
			}}).Times(1)

		rec := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, "/contact", s.contactForm(), nil)
		httptest.AssertFormErrorResponse(s.T(), rec, http.StatusBadRequest, "Please enter a valid email address")
		s.Contains(rec.Body.String(), "Message must be at least 10 characters")
	})

	s.Run("error: delivery failure never leaks SMTP details", func() {
		s.mockCommands.EXPECT().
			SubmitContact(gomock.Any(), s.sessionID, "token-123", gomock.Any()).
			Return("", errs.Mark(errs.New("dial tcp: refused"), errs.ErrDelivery)).Times(1)

		rec := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, "/contact", s.contactForm(), nil)
		httptest.AssertFormErrorResponse(s.T(), rec, http.StatusInternalServerError, "error sending your message")
		s.NotContains(rec.Body.String(), "dial tcp")
	})
}

func (s *SubmissionHandlerTestSuite) TestNewsletter() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().
			SubmitNewsletter(gomock.Any(), s.sessionID, "token-123", "ada@example.com").
			Return("Thank you for subscribing to our newsletter.", nil).Times(1)

		form := url.Values{}
		form.Set("email", "ada@example.com")
		form.Set("csrf_token", "token-123")
		rec := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, "/newsletter", form, nil)

		var resp resdto.SubmissionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("success", resp.Status)
	})
}
