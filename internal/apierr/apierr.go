// Package apierr classifies failures of catalog API calls.
// This lets callers branch on what went wrong instead of parsing message text.
package apierr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind discriminates the failure modes of an API call.
type Kind int

const (
	// KindInvalidArgument marks caller mistakes caught before any network I/O.
	// Examples: unknown id namespace, empty grid id list.
	KindInvalidArgument Kind = iota

	// KindMalformedResponse marks response bodies that did not parse as the
	// expected JSON, whatever the HTTP status code was.
	KindMalformedResponse

	// KindAPIError marks well-formed envelopes the server answered with
	// success=false.
	KindAPIError

	// KindTransport marks failures below HTTP: DNS, dial, TLS, timeouts,
	// canceled contexts. The original error stays reachable via Unwrap.
	KindTransport
)

// String returns a human-readable representation of the failure kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindMalformedResponse:
		return "malformed response"
	case KindAPIError:
		return "api error"
	case KindTransport:
		return "transport error"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Error wraps a failed API call with classification metadata. Every error
// returned by an operation is one of these.
type Error struct {
	Kind       Kind
	Op         string   // operation, e.g. "get grids"
	StatusCode int      // HTTP status code (0 when no response arrived)
	Messages   []string // server-supplied error strings for KindAPIError
	Underlying error    // the original error, nil for KindAPIError
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(e.Kind.String())
	if detail := e.detail(); detail != "" {
		b.WriteString(": ")
		b.WriteString(detail)
	}
	if e.StatusCode > 0 {
		fmt.Fprintf(&b, " (status %d)", e.StatusCode)
	}
	return b.String()
}

func (e *Error) detail() string {
	if e.Kind == KindAPIError {
		if msg := e.Message(); msg != "" {
			return msg
		}
		return "server reported failure"
	}
	if e.Underlying != nil {
		return e.Underlying.Error()
	}
	return ""
}

// Message returns the server-supplied error text, joined with ", " when
// the server sent several. Empty for kinds other than KindAPIError.
func (e *Error) Message() string {
	return strings.Join(e.Messages, ", ")
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *Error) Unwrap() error {
	return e.Underlying
}

// Is matches any *Error carrying the same Kind, so callers can use
// errors.Is with a bare &Error{Kind: ...} sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// IsKind reports whether err (or anything it wraps) is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// NewInvalidArgument creates an error for a request rejected before any
// network call was made.
func NewInvalidArgument(op string, err error) *Error {
	return &Error{Kind: KindInvalidArgument, Op: op, Underlying: err}
}

// NewMalformedResponse creates an error for a body that did not decode.
func NewMalformedResponse(op string, statusCode int, err error) *Error {
	return &Error{Kind: KindMalformedResponse, Op: op, StatusCode: statusCode, Underlying: err}
}

// NewAPIError creates an error for an envelope with success=false.
func NewAPIError(op string, statusCode int, messages []string) *Error {
	return &Error{Kind: KindAPIError, Op: op, StatusCode: statusCode, Messages: messages}
}

// NewTransport wraps a network-level failure without altering it.
func NewTransport(op string, err error) *Error {
	return &Error{Kind: KindTransport, Op: op, Underlying: err}
}
