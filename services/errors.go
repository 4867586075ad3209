package services

import (
	"errors"
	"net/http"

	"storefront-service/providers"
)

// ServiceError is a typed error with an HTTP status code. Upstream carries the
// platform's structured error list verbatim when the failure originated there.
type ServiceError struct {
	StatusCode int
	Message    string
	Upstream   []providers.Error
	Err        error
}

func (e *ServiceError) Error() string { return e.Message }

func (e *ServiceError) Unwrap() error { return e.Err }

// fromProvider wraps a provider failure without reclassifying it: platform
// errors keep the platform's status and error list, transport failures become
// a 502.
func fromProvider(message string, err error) *ServiceError {
	var apiErr *providers.APIError
	if errors.As(err, &apiErr) {
		return &ServiceError{
			StatusCode: apiErr.StatusCode,
			Message:    message,
			Upstream:   apiErr.Errors,
			Err:        err,
		}
	}
	return &ServiceError{
		StatusCode: http.StatusBadGateway,
		Message:    message,
		Err:        err,
	}
}
