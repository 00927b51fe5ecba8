package msg91

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrValidation and ErrUnauthorized are sentinel errors callers can use
// with errors.Is to classify failures without inspecting concrete types.
var (
	ErrValidation   = errors.New("msg91: validation error")
	ErrUnauthorized = errors.New("msg91: unauthorized")
)

// ValidationError reports bad local input. It is always returned before
// any network call is made.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("msg91: invalid %s: %s", e.Field, e.Message)
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// APIError is returned when the provider answers with a non-2xx status.
// Type and Message carry the provider's own error classification when the
// body could be decoded; Raw always holds the response body as received,
// truncated to the transport body limit.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
	Raw        string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("msg91: api error: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("msg91: api error: status %d", e.StatusCode)
}

// Is reports whether target is ErrUnauthorized and the response status
// was 401.
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

func validationErr(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
