package request

import (
	"github.com/shopspring/decimal"

	"siteforms/internal/usecase/commands"
	"siteforms/internal/usecase/queries"
)

// SummaryQuery carries the raw checkout-page query string. Absent values are
// legal; the domain formats them as "Not specified".
type SummaryQuery struct {
	Service string `form:"service"`
	Plan    string `form:"plan"`
	Name    string `form:"name"`
	Price   string `form:"price"`
}

func (r *SummaryQuery) ToQuery() (queries.SummaryRequest, error) {
	price := decimal.Zero
	if r.Price != "" {
		var err error
		price, err = decimal.NewFromString(r.Price)
		if err != nil {
			return queries.SummaryRequest{}, err
		}
	}
	return queries.SummaryRequest{
		ServiceSlug: r.Service,
		Plan:        r.Plan,
		DisplayName: r.Name,
		Price:       price,
	}, nil
}

// BeginCheckoutRequest is the payer form plus the order identity the page
// was rendered with. Field-level validation happens in the usecase so the
// response carries every failing field, not just the first.
type BeginCheckoutRequest struct {
	Service   string `form:"service"`
	Plan      string `form:"plan"`
	Name      string `form:"name"`
	Price     string `form:"price"`
	FirstName string `form:"first_name"`
	LastName  string `form:"last_name"`
	Terms     string `form:"terms"`
}

func (r *BeginCheckoutRequest) ToCommand() (commands.BeginCheckoutRequest, error) {
	price := decimal.Zero
	if r.Price != "" {
		var err error
		price, err = decimal.NewFromString(r.Price)
		if err != nil {
			return commands.BeginCheckoutRequest{}, err
		}
	}
	return commands.BeginCheckoutRequest{
		ServiceSlug: r.Service,
		Plan:        r.Plan,
		DisplayName: r.Name,
		Price:       price,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Terms:       r.Terms,
	}, nil
}

// ReturnQuery is what the gateway appends to the return URL.
type ReturnQuery struct {
	Status        string `form:"status"`
	Reference     string `form:"ref"`
	TransactionID string `form:"transaction"`
	ErrorCode     string `form:"error"`
}

func (r *ReturnQuery) ToCommand() commands.ReturnParams {
	return commands.ReturnParams{
		Status:        r.Status,
		Reference:     r.Reference,
		TransactionID: r.TransactionID,
		ErrorCode:     r.ErrorCode,
	}
}

type AdvanceProgressRequest struct {
	Stage int `form:"stage" json:"stage" binding:"required"`
}
