// Package apierror provides the error response envelopes for both APIs.
// All errors returned to clients go through this package so internal details
// (stack traces, DB errors) never leak into response bodies.
package apierror

// APIError is the canonical error envelope for 4xx/5xx responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError carries per-field detail for 422 responses.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validación", Fields: fields}
}
