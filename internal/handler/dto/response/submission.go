package response

// SubmissionResponse keeps the original form endpoint's flat contract.
type SubmissionResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func SubmissionSuccess(message string) SubmissionResponse {
	return SubmissionResponse{Status: "success", Message: message}
}
