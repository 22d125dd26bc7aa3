package types

type ChatRequest struct {
	SessionID string `json:"sessionId,omitempty"`
	Message   string `json:"message"`
}

type ChatResponse struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
