package errs

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned when the LLM credential is not configured.
var ErrMissingAPIKey = errors.New("LLM API key is not configured")

// ErrInvalidInput marks request payloads missing required fields.
var ErrInvalidInput = errors.New("invalid input")

// UpstreamError carries a non-success response from the LLM provider so the
// HTTP layer can pass its status through.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream LLM error (status %d): %s", e.StatusCode, e.Message)
}

func InvalidInput(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}
