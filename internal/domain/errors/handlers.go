package errors

// ErrorInfo is the error payload embedded in ErrorResponse.
type ErrorInfo struct {
	Code    string `json:"code"`              // Stable business code such as "STORE_NOT_FOUND".
	Message string `json:"message"`           // Human-readable message shown to the client.
	Details any    `json:"details,omitempty"` // Optional extra context, e.g. field errors.
}

// MetaInfo carries response metadata shared by every envelope.
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// SuccessResponse is the envelope for 2xx responses.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse is the envelope for non-2xx responses.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}
