package checkout

import (
	"strings"
	"text/template"
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is the read-only projection of a completed payment, materialized
// once as a downloadable plain-text document.
type Receipt struct {
	Reference     string          `json:"reference"`
	TransactionID string          `json:"transaction_id"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	ServiceName   string          `json:"service_name"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Status        string          `json:"status"`
}

// SupportContact is the fixed footer on every receipt.
type SupportContact struct {
	Email string
	Phone string
}

func NewReceipt(p *PendingPayment, reference, transactionID string) Receipt {
	return Receipt{
		Reference:     reference,
		TransactionID: transactionID,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		ServiceName:   p.ServiceName,
		Amount:        p.Amount,
		Date:          p.CreatedAt,
		Status:        "Successful",
	}
}

// Filename names the download after the transaction reference.
func (r Receipt) Filename() string {
	return "Receipt_" + r.Reference + ".txt"
}

var receiptTmpl = template.Must(template.New("receipt").Parse(`Payment Receipt
=====================

Transaction Details:
-------------------
Reference: {{.Reference}}
Transaction ID: {{.TransactionID}}
Date: {{.Date}}
Status: {{.Status}}

Customer Details:
----------------
Name: {{.Name}}

Service Details:
---------------
Service: {{.Service}}
Amount: {{.Amount}}

Thank you for your payment!
===========================

For any inquiries, please contact:
Email: {{.SupportEmail}}
Phone: {{.SupportPhone}}
`))

// Render produces the fixed labeled document.
func (r Receipt) Render(support SupportContact) (string, error) {
	var b strings.Builder
	err := receiptTmpl.Execute(&b, map[string]string{
		"Reference":     r.Reference,
		"TransactionID": r.TransactionID,
		"Date":          r.Date.Format("02 Jan 2006 15:04:05"),
		"Status":        r.Status,
		"Name":          r.FirstName + " " + r.LastName,
		"Service":       r.ServiceName,
		"Amount":        FormatAmount(r.Amount),
		"SupportEmail":  support.Email,
		"SupportPhone":  support.Phone,
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
