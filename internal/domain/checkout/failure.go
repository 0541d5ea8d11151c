package checkout

// FailureCode is the enumerated error a gateway return may carry in its
// `error` query parameter.
type FailureCode string

const (
	FailureInsufficientFunds FailureCode = "insufficient_funds"
	FailureCardDeclined      FailureCode = "card_declined"
	FailureExpiredCard       FailureCode = "expired_card"
	FailureInvalidCard       FailureCode = "invalid_card"
	FailureProcessingError   FailureCode = "processing_error"
	FailureNetworkError      FailureCode = "network_error"
	FailureTimeout           FailureCode = "timeout"
)

const GenericFailureMessage = "Payment failed. Please try again or contact support."

// Message maps every known code to its fixed user-facing text. The default
// arm is the single place unknown codes fall back to, so a new gateway code
// can never leak raw through the UI.
func (c FailureCode) Message() string {
	switch c {
	case FailureInsufficientFunds:
		return "Insufficient funds in your account. Please try another payment method."
	case FailureCardDeclined:
		return "Your card was declined. Please check your card details or try another card."
	case FailureExpiredCard:
		return "Your card has expired. Please use a different card."
	case FailureInvalidCard:
		return "The card details provided are invalid. Please check and try again."
	case FailureProcessingError:
		return "There was an error processing your payment. Please try again."
	case FailureNetworkError:
		return "Network error occurred. Please check your internet connection and try again."
	case FailureTimeout:
		return "Payment timed out. Please try again."
	default:
		return GenericFailureMessage
	}
}

func (c FailureCode) Known() bool {
	switch c {
	case FailureInsufficientFunds, FailureCardDeclined, FailureExpiredCard,
		FailureInvalidCard, FailureProcessingError, FailureNetworkError, FailureTimeout:
		return true
	}
	return false
}
