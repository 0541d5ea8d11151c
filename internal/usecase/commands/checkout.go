package commands

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"siteforms/internal/domain/checkout"
	"siteforms/internal/domain/forms"
	"siteforms/internal/infra/kvstore"
	"siteforms/internal/pkg/clock"
	"siteforms/internal/pkg/config"
	"siteforms/internal/pkg/errs"
)

type BeginCheckoutRequest struct {
	ServiceSlug string
	Plan        string
	DisplayName string
	Price       decimal.Decimal
	FirstName   string
	LastName    string
	Terms       string
}

type BeginCheckoutResult struct {
	Reference   string
	RedirectURL string
	Amount      decimal.Decimal
}

type ReturnParams struct {
	Status        string
	Reference     string
	TransactionID string
	ErrorCode     string
}

type ReturnOutcome string

const (
	OutcomeSuccess ReturnOutcome = "success"
	OutcomeFailed  ReturnOutcome = "failed"
	OutcomeNone    ReturnOutcome = "none"
)

type ReturnResult struct {
	Outcome      ReturnOutcome
	Receipt      *checkout.Receipt
	ErrorTitle   string
	ErrorMessage string
}

type ReceiptDocument struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// StoredError is a payment failure persisted for the session, surfaced at
// most once by the progress query.
type StoredError struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type CheckoutCommands interface {
	Begin(ctx context.Context, sessionID uuid.UUID, req BeginCheckoutRequest) (*BeginCheckoutResult, error)
	HandleReturn(ctx context.Context, sessionID uuid.UUID, params ReturnParams) (*ReturnResult, error)
	DownloadReceipt(ctx context.Context, sessionID uuid.UUID, reference string) (*ReceiptDocument, error)
	Retry(ctx context.Context, sessionID uuid.UUID) error
	// AdvanceProgress records a client-observed stage (e.g. form input
	// started). Stages only ever move forward.
	AdvanceProgress(ctx context.Context, sessionID uuid.UUID, stage checkout.Stage) error
}

type checkoutUseCaseImpl struct {
	store     kvstore.Store
	clock     clock.Clock
	cfg       config.CheckoutConfig
	refSource checkout.RefSource
}

func NewCheckoutUseCase(store kvstore.Store, clk clock.Clock, cfg config.CheckoutConfig, refSource checkout.RefSource) CheckoutCommands {
	return &checkoutUseCaseImpl{
		store:     store,
		clock:     clk,
		cfg:       cfg,
		refSource: refSource,
	}
}

// Begin validates the payer form, persists the PendingPayment and builds
// the gateway redirect URL. Validation failures never reach the redirect
// step.
func (uc *checkoutUseCaseImpl) Begin(ctx context.Context, sessionID uuid.UUID, req BeginCheckoutRequest) (*BeginCheckoutResult, error) {
	fieldErrs := forms.PaymentForm().Validate(map[string]string{
		"first_name": req.FirstName,
		"last_name":  req.LastName,
		"terms":      req.Terms,
	})
	if len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	summary := checkout.NewOrderSummary(req.ServiceSlug, req.Plan, req.DisplayName, req.Price)
	quote := summary.Quote

	pending, err := checkout.NewPendingPayment(req.FirstName, req.LastName, summary.ServiceName, quote.Total, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	encoded, err := json.Marshal(pending)
	if err != nil {
		return nil, errs.Wrap(err, "encode pending payment")
	}
	if err := uc.store.Set(ctx, kvstore.PendingPaymentKey(sessionID), string(encoded), uc.cfg.PendingTTL); err != nil {
		return nil, errs.Wrap(err, "persist pending payment")
	}

	ref := checkout.NewReference(uc.cfg.RefPrefix, uc.refSource)

	q := url.Values{}
	q.Set("amount", strconv.FormatInt(quote.TotalMinorUnits(), 10))
	q.Set("first_name", req.FirstName)
	q.Set("last_name", req.LastName)
	q.Set("ref", ref)
	q.Set("service", summary.ServiceName)

	uc.advanceProgress(ctx, sessionID, checkout.StageRedirect)

	return &BeginCheckoutResult{
		Reference:   ref,
		RedirectURL: uc.cfg.GatewayURL + "?" + q.Encode(),
		Amount:      quote.Total,
	}, nil
}

// HandleReturn inspects the gateway return parameters and resolves one of
// three branches: success, failure, or no status at all.
func (uc *checkoutUseCaseImpl) HandleReturn(ctx context.Context, sessionID uuid.UUID, params ReturnParams) (*ReturnResult, error) {
	switch {
	case params.Status == "success" && params.Reference != "" && params.TransactionID != "":
		return uc.handleSuccess(ctx, sessionID, params)
	case params.Status == "failed" || params.ErrorCode != "":
		return uc.handleFailure(ctx, sessionID, params)
	default:
		return &ReturnResult{Outcome: OutcomeNone}, nil
	}
}

func (uc *checkoutUseCaseImpl) handleSuccess(ctx context.Context, sessionID uuid.UUID, params ReturnParams) (*ReturnResult, error) {
	key := kvstore.PendingPaymentKey(sessionID)

	raw, err := uc.store.Get(ctx, key)
	if err != nil {
		if errs.Is(err, errs.ErrKeyNotFound) {
			// A success return without a stored record is a fatal flow
			// inconsistency, never a silent success.
			return nil, errs.Mark(errs.ErrPendingNotFound, errs.ErrFlowState)
		}
		return nil, errs.Wrap(err, "load pending payment")
	}

	var pending checkout.PendingPayment
	if err := json.Unmarshal([]byte(raw), &pending); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode pending payment"), errs.ErrFlowState)
	}
	if err := pending.Complete(); err != nil {
		return nil, errs.Mark(err, errs.ErrFlowState)
	}

	receipt := checkout.NewReceipt(&pending, params.Reference, params.TransactionID)
	content, err := receipt.Render(checkout.SupportContact{
		Email: uc.cfg.SupportEmail,
		Phone: uc.cfg.SupportPhone,
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "render receipt"), errs.ErrFlowState)
	}

	doc, err := json.Marshal(ReceiptDocument{Filename: receipt.Filename(), Content: content})
	if err != nil {
		return nil, errs.Wrap(err, "encode receipt")
	}
	if err := uc.store.Set(ctx, kvstore.ReceiptKey(sessionID, params.Reference), string(doc), uc.cfg.ReceiptTTL); err != nil {
		return nil, errs.Wrap(err, "persist receipt")
	}

	// Exactly-once consumption: the record is gone before the caller sees
	// the receipt, so replaying the same return hits the flow-state branch.
	if err := uc.store.Clear(ctx, key); err != nil {
		return nil, errs.Wrap(err, "clear pending payment")
	}

	uc.advanceProgress(ctx, sessionID, checkout.StageComplete)

	return &ReturnResult{Outcome: OutcomeSuccess, Receipt: &receipt}, nil
}

func (uc *checkoutUseCaseImpl) handleFailure(ctx context.Context, sessionID uuid.UUID, params ReturnParams) (*ReturnResult, error) {
	message := checkout.FailureCode(params.ErrorCode).Message()

	stored, err := json.Marshal(StoredError{Title: "Payment Failed", Message: message})
	if err != nil {
		return nil, errs.Wrap(err, "encode stored error")
	}
	if err := uc.store.Set(ctx, kvstore.StoredErrorKey(sessionID), string(stored), uc.cfg.StoredErrorTTL); err != nil {
		return nil, errs.Wrap(err, "persist stored error")
	}

	return &ReturnResult{
		Outcome:      OutcomeFailed,
		ErrorTitle:   "Payment Failed",
		ErrorMessage: message,
	}, nil
}

// DownloadReceipt hands out the rendered document exactly once.
func (uc *checkoutUseCaseImpl) DownloadReceipt(ctx context.Context, sessionID uuid.UUID, reference string) (*ReceiptDocument, error) {
	key := kvstore.ReceiptKey(sessionID, reference)

	raw, err := uc.store.Get(ctx, key)
	if err != nil {
		if errs.Is(err, errs.ErrKeyNotFound) {
			return nil, errs.ErrReceiptNotFound
		}
		return nil, errs.Wrap(err, "load receipt")
	}

	var doc ReceiptDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, errs.Wrap(err, "decode receipt")
	}
	if err := uc.store.Clear(ctx, key); err != nil {
		return nil, errs.Wrap(err, "clear receipt")
	}
	return &doc, nil
}

// Retry clears the stored payment error so the payer can start over.
func (uc *checkoutUseCaseImpl) Retry(ctx context.Context, sessionID uuid.UUID) error {
	if err := uc.store.Clear(ctx, kvstore.StoredErrorKey(sessionID)); err != nil {
		return errs.Wrap(err, "clear stored error")
	}
	return nil
}

func (uc *checkoutUseCaseImpl) AdvanceProgress(ctx context.Context, sessionID uuid.UUID, stage checkout.Stage) error {
	if !stage.Valid() {
		return &ValidationError{Fields: []forms.FieldError{{Field: "stage", Message: "Unknown progress stage"}}}
	}
	uc.advanceProgress(ctx, sessionID, stage)
	return nil
}

// advanceProgress moves the session's stage forward. A stage never moves
// backward; persistence failures here are not fatal to the flow.
func (uc *checkoutUseCaseImpl) advanceProgress(ctx context.Context, sessionID uuid.UUID, stage checkout.Stage) {
	key := kvstore.ProgressKey(sessionID)

	current := checkout.StageIdle
	if raw, err := uc.store.Get(ctx, key); err == nil {
		if v, perr := strconv.Atoi(raw); perr == nil {
			current = checkout.Stage(v)
		}
	}
	if stage <= current {
		return
	}
	_ = uc.store.Set(ctx, key, strconv.Itoa(int(stage)), uc.cfg.PendingTTL)
}
