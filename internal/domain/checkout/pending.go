package checkout

import (
	"time"

	"github.com/shopspring/decimal"

	"siteforms/internal/pkg/errs"
)

var (
	ErrMissingPayerName = errs.New("pending payment is missing payer name")
)

// PendingPayment is the record written when the payer is redirected to the
// gateway and consumed exactly once when a success return arrives. Amount is
// the tax-inclusive total.
type PendingPayment struct {
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	ServiceName string          `json:"service_name"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

func NewPendingPayment(firstName, lastName, serviceName string, amount decimal.Decimal, now time.Time) (*PendingPayment, error) {
	if firstName == "" || lastName == "" {
		return nil, ErrMissingPayerName
	}
	return &PendingPayment{
		FirstName:   firstName,
		LastName:    lastName,
		ServiceName: serviceName,
		Amount:      amount,
		CreatedAt:   now,
	}, nil
}

// Complete checks the invariant a success return relies on: a record that
// lost its payer names cannot produce a receipt.
func (p *PendingPayment) Complete() error {
	if p.FirstName == "" || p.LastName == "" {
		return ErrMissingPayerName
	}
	return nil
}

func (p *PendingPayment) PayerName() string {
	return p.FirstName + " " + p.LastName
}
