package queries

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"siteforms/internal/domain/checkout"
	"siteforms/internal/domain/feedback"
	"siteforms/internal/infra/kvstore"
	"siteforms/internal/pkg/errs"
	"siteforms/internal/usecase/commands"
)

type SummaryRequest struct {
	ServiceSlug string
	Plan        string
	DisplayName string
	Price       decimal.Decimal
}

type SummaryView struct {
	ServiceName string
	PlanName    string
	Price       decimal.Decimal
	Tax         decimal.Decimal
	Total       decimal.Decimal
}

// ControlView is the state of the checkout submit control, derived so the
// client renders the right label and disables the trigger while busy.
type ControlView struct {
	Busy  bool
	Label string
}

type ProgressView struct {
	Stage           checkout.Stage
	Description     string
	FirstMilestone  bool
	SecondMilestone bool
	Control         ControlView
	StoredError     *commands.StoredError
}

type CheckoutQueries interface {
	Summary(req SummaryRequest) *SummaryView
	Progress(ctx context.Context, sessionID uuid.UUID) (*ProgressView, error)
}

type checkoutQueriesImpl struct {
	store kvstore.Store
}

func NewCheckoutQueries(store kvstore.Store) CheckoutQueries {
	return &checkoutQueriesImpl{store: store}
}

const (
	payControl   = "pay-button"
	payIdleLabel = "Pay Now"
	payBusyLabel = "Processing..."
)

// Summary prices the order for display. It goes through the same Quote as
// Begin, so the displayed total always equals the submitted amount.
func (q *checkoutQueriesImpl) Summary(req SummaryRequest) *SummaryView {
	s := checkout.NewOrderSummary(req.ServiceSlug, req.Plan, req.DisplayName, req.Price)
	return &SummaryView{
		ServiceName: s.ServiceName,
		PlanName:    s.PlanName,
		Price:       s.Quote.Price,
		Tax:         s.Quote.Tax,
		Total:       s.Quote.Total,
	}
}

// Progress reports the session's stage and submit-control state. A stored
// payment error, if present, is delivered here exactly once and cleared.
func (q *checkoutQueriesImpl) Progress(ctx context.Context, sessionID uuid.UUID) (*ProgressView, error) {
	stage := checkout.StageIdle
	if raw, err := q.store.Get(ctx, kvstore.ProgressKey(sessionID)); err == nil {
		if v, perr := strconv.Atoi(raw); perr == nil && checkout.Stage(v).Valid() {
			stage = checkout.Stage(v)
		}
	} else if !errs.Is(err, errs.ErrKeyNotFound) {
		return nil, errs.Wrap(err, "load progress")
	}

	tracker := feedback.NewTracker()
	tracker.Restore(payControl, payIdleLabel)
	if stage == checkout.StageRedirect {
		tracker.ShowBusy(payControl, payBusyLabel)
	}

	first, second := stage.Milestones()
	view := &ProgressView{
		Stage:           stage,
		Description:     stage.Description(),
		FirstMilestone:  first,
		SecondMilestone: second,
		Control: ControlView{
			Busy:  tracker.IsBusy(payControl),
			Label: tracker.Label(payControl),
		},
	}

	errKey := kvstore.StoredErrorKey(sessionID)
	if raw, err := q.store.Get(ctx, errKey); err == nil {
		var stored commands.StoredError
		if uerr := json.Unmarshal([]byte(raw), &stored); uerr == nil {
			view.StoredError = &stored
		}
		// at-most-once delivery
		if cerr := q.store.Clear(ctx, errKey); cerr != nil {
			return nil, errs.Wrap(cerr, "clear stored error")
		}
	} else if !errs.Is(err, errs.ErrKeyNotFound) {
		return nil, errs.Wrap(err, "load stored error")
	}

	return view, nil
}
