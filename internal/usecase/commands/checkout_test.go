//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"testing"
	"time"

	"siteforms/internal/domain/checkout"
	"siteforms/internal/infra/kvstore"
	"siteforms/internal/pkg/clock"
	"siteforms/internal/pkg/config"
	"siteforms/internal/pkg/errs"
	"siteforms/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CheckoutCommandsTestSuite struct {
	suite.Suite
	ctx       context.Context
	clock     *clock.MockClock
	store     *kvstore.MemoryStore
	uc        commands.CheckoutCommands
	sessionID uuid.UUID
}

func (s *CheckoutCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC))
	s.store = kvstore.NewMemoryStore(s.clock)
	s.sessionID = uuid.New()

	cfg := config.NewTestConfig().Checkout
	refSource := func() int64 { return 123456789 }
	s.uc = commands.NewCheckoutUseCase(s.store, s.clock, cfg, refSource)
}

// Session state (pending payment, progress, receipts) is keyed by session
// id, so a fresh id per subtest keeps s.Run blocks independent.
func (s *CheckoutCommandsTestSuite) SetupSubTest() {
	s.sessionID = uuid.New()
}

func TestCheckoutCommandsSuite(t *testing.T) {
	suite.Run(t, new(CheckoutCommandsTestSuite))
}

func (s *CheckoutCommandsTestSuite) validBegin() commands.BeginCheckoutRequest {
	return commands.BeginCheckoutRequest{
		ServiceSlug: "web-design",
		Plan:        "premium",
		DisplayName: "Web Design",
		Price:       decimal.RequireFromString("150000"),
		FirstName:   "Ada",
		LastName:    "Obi",
		Terms:       "on",
	}
}

func (s *CheckoutCommandsTestSuite) TestBegin() {
	s.Run("success: persists pending payment and builds redirect URL", func() {
		result, err := s.uc.Begin(s.ctx, s.sessionID, s.validBegin())
		s.Require().NoError(err)

		s.Equal("NPDV-123456789", result.Reference)
		s.Equal("161250", result.Amount.StringFixed(0)) // 150000 + 7.5% tax

		parsed, perr := url.Parse(result.RedirectURL)
		s.Require().NoError(perr)
		s.Equal("16125000", parsed.Query().Get("amount")) // minor units
		s.Equal("Ada", parsed.Query().Get("first_name"))
		s.Equal("NPDV-123456789", parsed.Query().Get("ref"))
		s.Equal("Web Design", parsed.Query().Get("service"))

		raw, gerr := s.store.Get(s.ctx, kvstore.PendingPaymentKey(s.sessionID))
		s.Require().NoError(gerr)
		var pending checkout.PendingPayment
		s.Require().NoError(json.Unmarshal([]byte(raw), &pending))
		s.Equal("Ada", pending.FirstName)
		s.True(pending.Amount.Equal(result.Amount))
		s.True(pending.CreatedAt.Equal(s.clock.Now()))
	})

	s.Run("success: advances progress to the redirect stage", func() {
		_, err := s.uc.Begin(s.ctx, s.sessionID, s.validBegin())
		s.Require().NoError(err)

		raw, gerr := s.store.Get(s.ctx, kvstore.ProgressKey(s.sessionID))
		s.Require().NoError(gerr)
		s.Equal("50", raw)
	})

	s.Run("error: validation failures collect every bad field and persist nothing", func() {
		req := s.validBegin()
		req.FirstName = ""
		req.Terms = ""

		_, err := s.uc.Begin(s.ctx, s.sessionID, req)
		s.Require().Error(err)
		s.ErrorIs(err, errs.ErrValidation)

		var verr *commands.ValidationError
		s.Require().ErrorAs(err, &verr)
		s.Len(verr.Fields, 2)
		s.Contains(verr.Error(), "First name is required")

		_, gerr := s.store.Get(s.ctx, kvstore.PendingPaymentKey(s.sessionID))
		s.ErrorIs(gerr, errs.ErrKeyNotFound)
	})

	s.Run("error: numeric first name is rejected", func() {
		req := s.validBegin()
		req.FirstName = "4da"

		_, err := s.uc.Begin(s.ctx, s.sessionID, req)
		s.ErrorIs(err, errs.ErrValidation)
	})
}

func (s *CheckoutCommandsTestSuite) TestHandleReturn() {
	successParams := commands.ReturnParams{
		Status:        "success",
		Reference:     "NPDV-123456789",
		TransactionID: "TXN-42",
	}

	s.Run("success: produces a receipt and consumes the pending record", func() {
		_, err := s.uc.Begin(s.ctx, s.sessionID, s.validBegin())
		s.Require().NoError(err)

		result, err := s.uc.HandleReturn(s.ctx, s.sessionID, successParams)
		s.Require().NoError(err)
		s.Equal(commands.OutcomeSuccess, result.Outcome)
		s.Require().NotNil(result.Receipt)
		s.Equal("Ada", result.Receipt.FirstName)
		s.Equal("NPDV-123456789", result.Receipt.Reference)
		s.Equal("Successful", result.Receipt.Status)

		_, gerr := s.store.Get(s.ctx, kvstore.PendingPaymentKey(s.sessionID))
		s.ErrorIs(gerr, errs.ErrKeyNotFound)

		raw, gerr := s.store.Get(s.ctx, kvstore.ProgressKey(s.sessionID))
		s.Require().NoError(gerr)
		s.Equal("100", raw)
	})

	s.Run("error: replaying the same success return is a flow-state error", func() {
		_, err := s.uc.Begin(s.ctx, s.sessionID, s.validBegin())
		s.Require().NoError(err)

		_, err = s.uc.HandleReturn(s.ctx, s.sessionID, successParams)
		s.Require().NoError(err)

		_, err = s.uc.HandleReturn(s.ctx, s.sessionID, successParams)
		s.ErrorIs(err, errs.ErrFlowState)
		s.ErrorIs(err, errs.ErrPendingNotFound)
	})

	s.Run("error: success return without a pending record never succeeds silently", func() {
		_, err := s.uc.HandleReturn(s.ctx, s.sessionID, successParams)
		s.ErrorIs(err, errs.ErrFlowState)
	})

	s.Run("failed: known code maps to its fixed message and is stored", func() {
		result, err := s.uc.HandleReturn(s.ctx, s.sessionID, commands.ReturnParams{
			Status:    "failed",
			ErrorCode: "insufficient_funds",
		})
		s.Require().NoError(err)
		s.Equal(commands.OutcomeFailed, result.Outcome)
		s.Equal("Payment Failed", result.ErrorTitle)
		s.Contains(result.ErrorMessage, "Insufficient funds")

		raw, gerr := s.store.Get(s.ctx, kvstore.StoredErrorKey(s.sessionID))
		s.Require().NoError(gerr)
		var stored commands.StoredError
		s.Require().NoError(json.Unmarshal([]byte(raw), &stored))
		s.Equal(result.ErrorMessage, stored.Message)
	})

	s.Run("failed: unknown code falls back to the generic message", func() {
		result, err := s.uc.HandleReturn(s.ctx, s.sessionID, commands.ReturnParams{
			Status:    "failed",
			ErrorCode: "gateway_exploded",
		})
		s.Require().NoError(err)
		s.Equal(checkout.GenericFailureMessage, result.ErrorMessage)
	})

	s.Run("none: a return without status or error code resolves to no outcome", func() {
		result, err := s.uc.HandleReturn(s.ctx, s.sessionID, commands.ReturnParams{})
		s.Require().NoError(err)
		s.Equal(commands.OutcomeNone, result.Outcome)
	})
}

func (s *CheckoutCommandsTestSuite) TestDownloadReceipt() {
	s.Run("success: hands out the rendered document exactly once", func() {
		_, err := s.uc.Begin(s.ctx, s.sessionID, s.validBegin())
		s.Require().NoError(err)
		_, err = s.uc.HandleReturn(s.ctx, s.sessionID, commands.ReturnParams{
			Status: "success", Reference: "NPDV-123456789", TransactionID: "TXN-42",
		})
		s.Require().NoError(err)

		doc, err := s.uc.DownloadReceipt(s.ctx, s.sessionID, "NPDV-123456789")
		s.Require().NoError(err)
		s.Equal("Receipt_NPDV-123456789.txt", doc.Filename)
		s.True(strings.Contains(doc.Content, "Ada Obi"))

		_, err = s.uc.DownloadReceipt(s.ctx, s.sessionID, "NPDV-123456789")
		s.ErrorIs(err, errs.ErrReceiptNotFound)
	})

	s.Run("error: unknown reference", func() {
		_, err := s.uc.DownloadReceipt(s.ctx, s.sessionID, "NPDV-999")
		s.ErrorIs(err, errs.ErrReceiptNotFound)
	})
}

func (s *CheckoutCommandsTestSuite) TestRetry() {
	s.Run("success: clears the stored error", func() {
		_, err := s.uc.HandleReturn(s.ctx, s.sessionID, commands.ReturnParams{
			Status: "failed", ErrorCode: "timeout",
		})
		s.Require().NoError(err)

		s.Require().NoError(s.uc.Retry(s.ctx, s.sessionID))

		_, gerr := s.store.Get(s.ctx, kvstore.StoredErrorKey(s.sessionID))
		s.ErrorIs(gerr, errs.ErrKeyNotFound)
	})

	s.Run("success: retry without a stored error is a no-op", func() {
		s.NoError(s.uc.Retry(s.ctx, s.sessionID))
	})
}

func (s *CheckoutCommandsTestSuite) TestAdvanceProgress() {
	s.Run("success: stages only move forward", func() {
		s.Require().NoError(s.uc.AdvanceProgress(s.ctx, s.sessionID, checkout.StageRedirect))
		s.Require().NoError(s.uc.AdvanceProgress(s.ctx, s.sessionID, checkout.StageDetails))

		raw, err := s.store.Get(s.ctx, kvstore.ProgressKey(s.sessionID))
		s.Require().NoError(err)
		s.Equal("50", raw)
	})

	s.Run("error: unknown stage is rejected", func() {
		err := s.uc.AdvanceProgress(s.ctx, s.sessionID, checkout.Stage(42))
		s.ErrorIs(err, errs.ErrValidation)
	})
}
