package rf

import "github.com/pkg/errors"

// Kind classifies an Error the way callers need to branch on: is this a
// caller mistake, a documented gap, or a genuine bug.
type Kind int

const (
	// InvalidArgument means the caller passed a value outside the
	// documented valid range (e.g. a ratio outside (0, 1]).
	InvalidArgument Kind = iota
	// Unimplemented means the request is well-formed but the requested
	// feature (e.g. the Shannon or MCC impurity metric) has no
	// implementation yet.
	Unimplemented
	// Internal means the failure is not attributable to the caller; the
	// wrapped error carries a stack trace via github.com/pkg/errors.
	Internal
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid_argument"
	case Unimplemented:
		return "unimplemented"
	case Internal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is the error type returned across the package boundary; every
// error a caller can act on programmatically carries a Kind.
type Error struct {
	Kind Kind
	Msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.Kind.String() + ": " + e.Msg + ": " + e.err.Error()
	}
	return e.Kind.String() + ": " + e.Msg
}

func (e *Error) Unwrap() error { return e.err }

func invalidArgument(msg string) error {
	return &Error{Kind: InvalidArgument, Msg: msg}
}

func unimplemented(msg string) error {
	return &Error{Kind: Unimplemented, Msg: msg}
}

func internal(msg string, cause error) error {
	return &Error{Kind: Internal, Msg: msg, err: errors.WithStack(cause)}
}
