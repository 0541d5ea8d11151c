//go:build unit

package queries_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"siteforms/internal/domain/checkout"
	"siteforms/internal/infra/kvstore"
	"siteforms/internal/pkg/clock"
	"siteforms/internal/pkg/errs"
	"siteforms/internal/usecase/commands"
	"siteforms/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CheckoutQueriesTestSuite struct {
	suite.Suite
	ctx       context.Context
	store     *kvstore.MemoryStore
	q         queries.CheckoutQueries
	sessionID uuid.UUID
}

func (s *CheckoutQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = kvstore.NewMemoryStore(clock.NewMockClock(time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)))
	s.q = queries.NewCheckoutQueries(s.store)
	s.sessionID = uuid.New()
}

func (s *CheckoutQueriesTestSuite) SetupSubTest() {
	s.sessionID = uuid.New()
}

func TestCheckoutQueriesSuite(t *testing.T) {
	suite.Run(t, new(CheckoutQueriesTestSuite))
}

func (s *CheckoutQueriesTestSuite) TestSummary() {
	s.Run("success: formats names and prices through the shared quote", func() {
		view := s.q.Summary(queries.SummaryRequest{
			ServiceSlug: "web-design",
			Plan:        "basic",
			Price:       decimal.RequireFromString("50000"),
		})

		s.Equal("Web Design", view.ServiceName)
		s.Equal("Basic Plan", view.PlanName)
		s.Equal("3750", view.Tax.StringFixed(0))
		s.Equal("53750", view.Total.StringFixed(0))
	})

	s.Run("success: absent inputs render as Not specified", func() {
		view := s.q.Summary(queries.SummaryRequest{Price: decimal.Zero})
		s.Equal("Not specified", view.ServiceName)
		s.Equal("Not specified", view.PlanName)
	})
}

func (s *CheckoutQueriesTestSuite) TestProgress() {
	s.Run("success: a fresh session idles with the pay control enabled", func() {
		view, err := s.q.Progress(s.ctx, s.sessionID)
		s.Require().NoError(err)

		s.Equal(checkout.StageIdle, view.Stage)
		s.Equal("Initializing payment...", view.Description)
		s.False(view.FirstMilestone)
		s.False(view.Control.Busy)
		s.Equal("Pay Now", view.Control.Label)
		s.Nil(view.StoredError)
	})

	s.Run("success: the redirect stage marks the pay control busy", func() {
		err := s.store.Set(s.ctx, kvstore.ProgressKey(s.sessionID), "50", 0)
		s.Require().NoError(err)

		view, err := s.q.Progress(s.ctx, s.sessionID)
		s.Require().NoError(err)

		s.Equal(checkout.StageRedirect, view.Stage)
		s.Equal("Connecting to payment gateway...", view.Description)
		s.True(view.FirstMilestone)
		s.False(view.SecondMilestone)
		s.True(view.Control.Busy)
		s.Equal("Processing...", view.Control.Label)
	})

	s.Run("success: a stored error is surfaced once and then cleared", func() {
		stored, merr := json.Marshal(commands.StoredError{Title: "Payment Failed", Message: "Payment timed out. Please try again."})
		s.Require().NoError(merr)
		s.Require().NoError(s.store.Set(s.ctx, kvstore.StoredErrorKey(s.sessionID), string(stored), 0))

		view, err := s.q.Progress(s.ctx, s.sessionID)
		s.Require().NoError(err)
		s.Require().NotNil(view.StoredError)
		s.Equal("Payment Failed", view.StoredError.Title)

		_, gerr := s.store.Get(s.ctx, kvstore.StoredErrorKey(s.sessionID))
		s.ErrorIs(gerr, errs.ErrKeyNotFound)

		view, err = s.q.Progress(s.ctx, s.sessionID)
		s.Require().NoError(err)
		s.Nil(view.StoredError)
	})

	s.Run("success: a corrupt progress value falls back to idle", func() {
		s.Require().NoError(s.store.Set(s.ctx, kvstore.ProgressKey(s.sessionID), "not-a-number", 0))

		view, err := s.q.Progress(s.ctx, s.sessionID)
		s.Require().NoError(err)
		s.Equal(checkout.StageIdle, view.Stage)
	})
}
