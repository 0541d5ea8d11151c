package checkout

// Stage is the discrete checkout progress percentage shown to the payer.
// Stages only ever move forward within a session.
type Stage int

const (
	StageIdle     Stage = 0   // nothing started yet
	StageDetails  Stage = 25  // form input in progress
	StageRedirect Stage = 50  // submitted, redirecting to the gateway
	StageComplete Stage = 100 // success return handled
)

func (s Stage) Valid() bool {
	switch s {
	case StageIdle, StageDetails, StageRedirect, StageComplete:
		return true
	}
	return false
}

// Description mirrors the status line under the progress bar.
func (s Stage) Description() string {
	switch {
	case s < 25:
		return "Initializing payment..."
	case s < 50:
		return "Processing your details..."
	case s < 75:
		return "Connecting to payment gateway..."
	default:
		return "Completing transaction..."
	}
}

// Milestones are the two fixed marks on the progress bar.
func (s Stage) Milestones() (first, second bool) {
	return s >= 33, s >= 66
}
