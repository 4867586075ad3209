package providers

import (
	"encoding/json"
	"fmt"
)

// Error is one entry of the platform's structured error list.
type Error struct {
	Category string `json:"category,omitempty"`
	Code     string `json:"code,omitempty"`
	Detail   string `json:"detail,omitempty"`
	Field    string `json:"field,omitempty"`
}

// APIError is a non-2xx response from the commerce platform. Errors holds the
// platform's structured error list when the body carried one; RawBody keeps
// the unparsed response otherwise.
type APIError struct {
	StatusCode int
	Errors     []Error
	RawBody    string
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("square API error (status %d): %s %s", e.StatusCode, e.Errors[0].Code, e.Errors[0].Detail)
	}
	return fmt.Sprintf("square API error (status %d): %s", e.StatusCode, e.RawBody)
}

func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, RawBody: string(body)}
	var envelope struct {
		Errors []Error `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		apiErr.Errors = envelope.Errors
	}
	return apiErr
}
