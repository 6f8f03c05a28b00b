package dto

// ErrorResponse is the uniform error envelope returned for every
// non-2xx response. Errors carries per-field messages and is present
// only for request-body validation failures.
type ErrorResponse struct {
	Timestamp LocalDateTime     `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Errors    map[string]string `json:"errors,omitempty"`
}
