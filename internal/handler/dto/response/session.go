package response

type SessionResponse struct {
	SessionID string `json:"session_id"`
	CSRFToken string `json:"csrf_token"`
}
