package sponge

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a sponge error into one of the three categories named in
// the error handling design: a bad constructor argument, an operation this
// sponge configuration does not support, or an I/O failure surfaced while
// streaming from an io.Reader.
type Kind int

const (
	// InvalidParameter means a Params field failed validation at
	// construction time (e.g. a zero or out-of-range rate), or a
	// WriteBits bit length exceeds the bits supplied.
	InvalidParameter Kind = iota
	// Unsupported means the operation requested is not meaningful in
	// the sponge's current state (absorbing more input after squeezing
	// has begun).
	Unsupported
	// IoError wraps a failure returned by the io.Reader the sponge was
	// streaming from.
	IoError
)

func (k Kind) String() string {
	switch k {
	case InvalidParameter:
		return "invalid parameter"
	case Unsupported:
		return "unsupported"
	case IoError:
		return "io error"
	default:
		return "unknown"
	}
}

// Error is the error type returned by this package. Callers that need to
// distinguish categories should use errors.As to recover it and inspect
// Kind, rather than comparing messages. cause always carries a pkg/errors
// stack trace captured at construction time, recoverable with a %+v
// format; for the two validation kinds it also holds the message (there
// is no further underlying error to wrap).
type Error struct {
	Kind  Kind
	cause error
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.cause.Error()
}

func (e *Error) Unwrap() error { return e.cause }

// Format lets %+v on an *Error recover the pkg/errors stack trace attached
// to cause; %v and %s fall back to Error().
func (e *Error) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%s: %+v", e.Kind, e.cause)
		return
	}
	fmt.Fprint(s, e.Error())
}

// invalidParameterf builds an InvalidParameter error with a formatted
// message and an attached stack trace (via pkg/errors).
func invalidParameterf(format string, args ...interface{}) error {
	return &Error{Kind: InvalidParameter, cause: errors.Errorf(format, args...)}
}

// unsupportedf builds an Unsupported error with a formatted message and an
// attached stack trace.
func unsupportedf(format string, args ...interface{}) error {
	return &Error{Kind: Unsupported, cause: errors.Errorf(format, args...)}
}

// ioError wraps an I/O failure observed while streaming, preserving the
// original error as the cause so errors.Is/errors.As still sees it.
func ioError(context string, cause error) error {
	return &Error{Kind: IoError, cause: errors.Wrap(cause, context)}
}
