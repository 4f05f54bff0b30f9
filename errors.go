package steamgriddb

import "github.com/hollowdex/steamgriddb-go/internal/apierr"

// Error is the concrete type of every error returned by Client methods.
// Callers usually branch with the Is* predicates; errors.As(*Error) is
// there for the rest (operation name, HTTP status, server messages).
type Error = apierr.Error

// Kind discriminates the failure modes of an API call.
type Kind = apierr.Kind

// Failure kinds, re-exported so callers can compare against Error.Kind.
const (
	KindInvalidArgument   = apierr.KindInvalidArgument
	KindMalformedResponse = apierr.KindMalformedResponse
	KindAPIError          = apierr.KindAPIError
	KindTransport         = apierr.KindTransport
)

// IsInvalidArgument reports whether err is a caller mistake that was
// caught before any network I/O.
func IsInvalidArgument(err error) bool { return apierr.IsKind(err, apierr.KindInvalidArgument) }

// IsMalformedResponse reports whether err means the catalog's body did
// not parse as the expected JSON.
func IsMalformedResponse(err error) bool { return apierr.IsKind(err, apierr.KindMalformedResponse) }

// IsAPIError reports whether err is a well-formed envelope the catalog
// answered with success=false.
func IsAPIError(err error) bool { return apierr.IsKind(err, apierr.KindAPIError) }

// IsTransportError reports whether err is a network-level failure. The
// original error stays reachable through errors.Is and errors.As.
func IsTransportError(err error) bool { return apierr.IsKind(err, apierr.KindTransport) }
