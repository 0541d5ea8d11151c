package response

import (
	"siteforms/internal/domain/checkout"
	"siteforms/internal/usecase/commands"
	"siteforms/internal/usecase/queries"
)

// Amounts are rendered as display strings ("₦53,750.00") because the page
// shows them verbatim; clients that need the raw number use the *_value
// fields.
type SummaryResponse struct {
	ServiceName string `json:"service_name"`
	PlanName    string `json:"plan_name"`
	Price       string `json:"price"`
	Tax         string `json:"tax"`
	Total       string `json:"total"`
	PriceValue  string `json:"price_value"`
	TaxValue    string `json:"tax_value"`
	TotalValue  string `json:"total_value"`
}

func FromSummaryView(v *queries.SummaryView) SummaryResponse {
	return SummaryResponse{
		ServiceName: v.ServiceName,
		PlanName:    v.PlanName,
		Price:       checkout.FormatAmount(v.Price),
		Tax:         checkout.FormatAmount(v.Tax),
		Total:       checkout.FormatAmount(v.Total),
		PriceValue:  v.Price.StringFixed(2),
		TaxValue:    v.Tax.StringFixed(2),
		TotalValue:  v.Total.StringFixed(2),
	}
}

type BeginCheckoutResponse struct {
	Reference   string `json:"reference"`
	RedirectURL string `json:"redirect_url"`
	Amount      string `json:"amount"`
}

func FromBeginResult(r *commands.BeginCheckoutResult) BeginCheckoutResponse {
	return BeginCheckoutResponse{
		Reference:   r.Reference,
		RedirectURL: r.RedirectURL,
		Amount:      checkout.FormatAmount(r.Amount),
	}
}

type ReceiptSummary struct {
	Reference     string `json:"reference"`
	TransactionID string `json:"transaction_id"`
	PayerName     string `json:"payer_name"`
	ServiceName   string `json:"service_name"`
	Amount        string `json:"amount"`
	Status        string `json:"status"`
	DownloadPath  string `json:"download_path"`
}

type ReturnResponse struct {
	Outcome      string          `json:"outcome"`
	Receipt      *ReceiptSummary `json:"receipt,omitempty"`
	ErrorTitle   string          `json:"error_title,omitempty"`
	ErrorMessage string          `json:"error_message,omitempty"`
}

func FromReturnResult(r *commands.ReturnResult) ReturnResponse {
	resp := ReturnResponse{
		Outcome:      string(r.Outcome),
		ErrorTitle:   r.ErrorTitle,
		ErrorMessage: r.ErrorMessage,
	}
	if r.Receipt != nil {
		resp.Receipt = &ReceiptSummary{
			Reference:     r.Receipt.Reference,
			TransactionID: r.Receipt.TransactionID,
			PayerName:     r.Receipt.FirstName + " " + r.Receipt.LastName,
			ServiceName:   r.Receipt.ServiceName,
			Amount:        checkout.FormatAmount(r.Receipt.Amount),
			Status:        r.Receipt.Status,
			DownloadPath:  "/api/checkout/receipt/" + r.Receipt.Reference,
		}
	}
	return resp
}

type StoredErrorResponse struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type ProgressResponse struct {
	Stage           int                  `json:"stage"`
	Description     string               `json:"description"`
	FirstMilestone  bool                 `json:"first_milestone"`
	SecondMilestone bool                 `json:"second_milestone"`
	ControlBusy     bool                 `json:"control_busy"`
	ControlLabel    string               `json:"control_label"`
	Error           *StoredErrorResponse `json:"error,omitempty"`
}

func FromProgressView(v *queries.ProgressView) ProgressResponse {
	resp := ProgressResponse{
		Stage:           int(v.Stage),
		Description:     v.Description,
		FirstMilestone:  v.FirstMilestone,
		SecondMilestone: v.SecondMilestone,
		ControlBusy:     v.Control.Busy,
		ControlLabel:    v.Control.Label,
	}
	if v.StoredError != nil {
		resp.Error = &StoredErrorResponse{
			Title:   v.StoredError.Title,
			Message: v.StoredError.Message,
		}
	}
	return resp
}
