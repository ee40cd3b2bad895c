package remote

import (
	"errors"
	"fmt"
)

// Kind classifies provider failures by how callers should react.
type Kind int

const (
	// KindTransient is a retryable network or server error.
	KindTransient Kind = iota
	// KindRateLimited means the provider asked us to back off.
	KindRateLimited
	// KindNotFound means the calendar or event does not exist remotely.
	KindNotFound
	// KindFatal is an auth/permission failure; never retried.
	KindFatal
)

func (k Kind) String() string {
	switch k {
	case KindTransient:
		return "transient"
	case KindRateLimited:
		return "rate_limited"
	case KindNotFound:
		return "not_found"
	case KindFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Error is the failure type every Client method returns.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("remote: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("remote: %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError wraps err as a provider failure of the given kind.
func NewError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func kindOf(err error) (Kind, bool) {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind, true
	}
	return 0, false
}

// IsRateLimited reports whether err is a provider rate-limit failure.
func IsRateLimited(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindRateLimited
}

// IsNotFound reports whether err is a provider not-found failure.
func IsNotFound(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindNotFound
}

// IsTransient reports whether err is a retryable provider failure.
func IsTransient(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindTransient
}

// IsFatal reports whether err is a non-retryable auth/permission failure.
func IsFatal(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindFatal
}

// Retryable reports whether the failure is worth another attempt after
// backing off.
func Retryable(err error) bool {
	return IsRateLimited(err) || IsTransient(err)
}
