package chain

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of failure classes a data source can report.
type ErrorKind string

const (
	// KindNetworkFailure marks transport-level failures. Retryable by the
	// caller, never retried here.
	KindNetworkFailure ErrorKind = "network_failure"
	// KindNotFound marks a transaction absent from the backend's chain view.
	KindNotFound ErrorKind = "not_found"
	// KindInvalidInput marks a query the backend rejected as malformed.
	KindInvalidInput ErrorKind = "invalid_input"
	// KindRateLimited marks an explicit throttling signal from the backend.
	KindRateLimited ErrorKind = "rate_limited"
	// KindDataInconsistency marks a well-formed response that violates the
	// expected schema or fails to decode. A backend contract violation, never
	// to be conflated with KindNotFound.
	KindDataInconsistency ErrorKind = "data_inconsistency"
	// KindOther escapes backend-specific failures not covered above.
	KindOther ErrorKind = "other"
)

// Error carries one taxonomy kind plus a human-readable detail and an optional
// wrapped cause.
type Error struct {
	Kind   ErrorKind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.Detail != "":
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds a taxonomy error.
func NewError(kind ErrorKind, detail string, err error) *Error {
	return &Error{Kind: kind, Detail: detail, Err: err}
}

// NewErrorf builds a taxonomy error with a formatted detail and no cause.
func NewErrorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// KindOf extracts the taxonomy kind from err, or "" when err carries none.
func KindOf(err error) ErrorKind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

func IsNetworkFailure(err error) bool    { return KindOf(err) == KindNetworkFailure }
func IsNotFound(err error) bool          { return KindOf(err) == KindNotFound }
func IsInvalidInput(err error) bool      { return KindOf(err) == KindInvalidInput }
func IsRateLimited(err error) bool       { return KindOf(err) == KindRateLimited }
func IsDataInconsistency(err error) bool { return KindOf(err) == KindDataInconsistency }
func IsOther(err error) bool             { return KindOf(err) == KindOther }
