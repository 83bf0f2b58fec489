package llm

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey indicates the configured API key environment variable is
// unset or empty.
var ErrMissingAPIKey = errors.New("missing API key")

// ProviderError is a failed gateway call. Transient marks timeouts, 5xx,
// rate limiting, and network resets; everything else is permanent. The
// engine treats both the same for degradation and retries neither, but the
// code and message survive into the per-role error field.
type ProviderError struct {
	Model      string
	StatusCode int // 0 for transport-level failures
	Message    string
	Transient  bool
}

// Error returns a formatted error message.
func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("provider error for model %s (status %d): %s", e.Model, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("provider error for model %s: %s", e.Model, e.Message)
}

// IsTransient reports whether err is a ProviderError marked transient.
func IsTransient(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe) && pe.Transient
}

// transientStatus classifies an HTTP status code: server-side failures and
// rate limiting are transient, other client errors are permanent.
func transientStatus(code int) bool {
	return code >= 500 || code == 429
}
