package vnish

import (
	"errors"
	"fmt"
)

// APIError represents an error response from the VNish API.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("vnish API error (HTTP %d) at %s: %s", e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("vnish API error (HTTP %d) at %s", e.StatusCode, e.Endpoint)
}

// IsUnauthorized returns true if the error indicates a missing or
// invalid bearer token.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401
}

// IsNotFound returns true if the resource was not found.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsAuthError returns true if authentication or authorization failed.
func IsAuthError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401 || apiErr.StatusCode == 403
	}
	return false
}

// ErrorResponse contains an error message from the API.
type ErrorResponse struct {
	Err string `json:"err"`
}
