package apiresponses

// ErrorResponse is the body of every error reply: {"err": {"code", "message"}}.
type ErrorResponse struct {
	Err ErrorDetail `json:"err"`
}

type ErrorDetail struct {
	Code    string `json:"code"`    // Application-specific error code
	Message string `json:"message"` // User-friendly message
}

func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{Err: ErrorDetail{Code: code, Message: message}}
}

// HealthResponse reports service liveness and the state of its dependencies.
type HealthResponse struct {
	Status    string            `json:"status"`
	Service   string            `json:"service,omitempty"`
	Version   string            `json:"version,omitempty"`
	Checks    map[string]string `json:"checks,omitempty"`
	Timestamp string            `json:"timestamp"`
}
