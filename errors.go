package jobseq

import "fmt"

// Error represents a JobsEQ API error.
type Error struct {
	Code    string
	Message string
	Status  int
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("jobseq: %s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("jobseq: %s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Sentinel errors.
var (
	ErrUnauthorized = &Error{Code: "UNAUTHORIZED", Message: "bad token or credentials", Status: 401}
	ErrNotFound     = &Error{Code: "NOT_FOUND", Message: "resource not found", Status: 404}
	ErrBadRequest   = &Error{Code: "BAD_REQUEST", Message: "invalid request", Status: 400}
	ErrInternal     = &Error{Code: "INTERNAL", Message: "internal server error", Status: 500}
)

// statusError maps a non-200 HTTP status to a typed error.
func statusError(status int) *Error {
	switch status {
	case 401:
		return ErrUnauthorized
	case 404:
		return ErrNotFound
	case 400:
		return ErrBadRequest
	case 500:
		return ErrInternal
	default:
		return &Error{Code: "BAD_STATUS", Message: fmt.Sprintf("unexpected status %d", status), Status: status}
	}
}

// decodeError wraps a JSON decoding failure on a vendor response.
func decodeError(cause error) *Error {
	return &Error{Code: "DECODE", Message: "malformed response body", Cause: cause}
}

// normalizeError reports a vendor response that does not match the shape
// the normalizer was told to expect.
func normalizeError(format string, args ...any) *Error {
	return &Error{Code: "NORMALIZE", Message: fmt.Sprintf(format, args...)}
}

// authError wraps a failure during the password-grant token exchange.
func authError(msg string, cause error) *Error {
	return &Error{Code: "AUTH", Message: msg, Cause: cause}
}
