package checkout

import (
	"strings"

	"github.com/shopspring/decimal"
)

// OrderSummary is what the checkout page shows before the payer fills the
// form: the formatted service/plan names and the shared Quote.
type OrderSummary struct {
	ServiceName string
	PlanName    string
	Quote       Quote
}

// NewOrderSummary formats the raw query inputs. An explicit display name
// beats the service slug; an absent value renders as "Not specified".
func NewOrderSummary(serviceSlug, plan, displayName string, price decimal.Decimal) OrderSummary {
	service := displayName
	if service == "" {
		service = FormatServiceName(serviceSlug)
	}
	if service == "" {
		service = "Not specified"
	}

	planName := FormatPlanName(plan)
	if planName == "" {
		planName = "Not specified"
	}

	return OrderSummary{
		ServiceName: service,
		PlanName:    planName,
		Quote:       NewQuote(price),
	}
}

// FormatServiceName turns a URL slug into a display name:
// "web-design" -> "Web Design".
func FormatServiceName(slug string) string {
	if slug == "" {
		return ""
	}
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// FormatPlanName capitalizes the plan tier and appends " Plan":
// "basic" -> "Basic Plan".
func FormatPlanName(plan string) string {
	if plan == "" {
		return ""
	}
	return strings.ToUpper(plan[:1]) + plan[1:] + " Plan"
}
