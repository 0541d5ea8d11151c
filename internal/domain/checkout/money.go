package checkout

import (
	"strings"

	"github.com/shopspring/decimal"
)

// VAT applied to every checkout. Summary display and the amount submitted
// to the gateway must both go through Quote so they can never disagree.
var TaxRate = decimal.RequireFromString("0.075")

// Quote is the priced view of one order: net price, tax and total, all
// rounded to cents.
type Quote struct {
	Price decimal.Decimal
	Tax   decimal.Decimal
	Total decimal.Decimal
}

func NewQuote(price decimal.Decimal) Quote {
	price = price.Round(2)
	tax := price.Mul(TaxRate).Round(2)
	return Quote{
		Price: price,
		Tax:   tax,
		Total: price.Add(tax),
	}
}

// TotalMinorUnits returns the gateway amount: the tax-inclusive total in
// minor units (kobo), rounded.
func (q Quote) TotalMinorUnits() int64 {
	return q.Total.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// FormatAmount renders a decimal as a naira display string with thousands
// grouping, e.g. "₦12,345.68".
func FormatAmount(d decimal.Decimal) string {
	s := d.Round(2).StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := "₦" + b.String() + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
