package aigateway

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotConfigured means no credential is set. Callers show a setup prompt
// instead of a generic failure.
var ErrNotConfigured = errors.New("ai gateway is not configured")

// ErrQuotaExhausted is wrapped in a RemoteError with status 429.
var ErrQuotaExhausted = errors.New("ai request quota exhausted")

// RemoteError is a non-2xx response or a transport failure. StatusCode is 0
// when no response was received.
type RemoteError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("ai gateway request failed: %s", e.Message)
	}
	return fmt.Sprintf("ai gateway request failed: status=%d message=%s", e.StatusCode, e.Message)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// MalformedResponseError carries the raw model output that could not be parsed.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("ai response is not valid JSON (%d bytes)", len(e.Raw))
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

func quotaError() error {
	return &RemoteError{StatusCode: http.StatusTooManyRequests, Message: ErrQuotaExhausted.Error(), Err: ErrQuotaExhausted}
}
