package api

import "fmt"

type Kind int

const (
	// KindUnauthenticated means an authenticated call was attempted with
	// no stored token. No network call was made.
	KindUnauthenticated Kind = iota
	// KindTransport means the request could not be sent or no response
	// arrived.
	KindTransport
	// KindRejected means the backend answered with an error status.
	KindRejected
)

func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindTransport:
		return "transport"
	default:
		return "rejected"
	}
}

// Error carries both the failure kind and the human-readable message, so
// callers can decide how to present it instead of depending on a side
// channel.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// IsUnauthenticated reports whether err is the fail-fast missing-token error.
func IsUnauthenticated(err error) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.Kind == KindUnauthenticated
}
