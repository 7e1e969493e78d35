package domain

import (
	"errors"
)

var (
	ErrUnauthorized = errors.New("authentication failed")
	ErrForbidden    = errors.New("forbidden: insufficient permissions")
	ErrNotFound     = errors.New("not found")
	ErrBadRequest   = errors.New("bad request")
	ErrInternal     = errors.New("internal server error")

	// ErrDuplicateKey is returned by stores when a write hits a unique index.
	// Services translate it into ErrBadRequest.
	ErrDuplicateKey = errors.New("duplicate key value violates unique constraint")

	// ErrInvalidToken is reported by the token codec and is a kind of ErrUnauthorized.
	ErrInvalidToken = &Error{Kind: ErrUnauthorized, Msg: "invalid token"}
)

// Error attaches a caller-facing message and an optional cause to one of the kinds above.
type Error struct {
	Kind  error
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.Error()
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func Internal(op string, cause error) error {
	return &Error{Kind: ErrInternal, Msg: op, Cause: cause}
}

func NotFound(what string) error {
	return &Error{Kind: ErrNotFound, Msg: what + " not found"}
}

func BadRequest(reason string) error {
	return &Error{Kind: ErrBadRequest, Msg: reason}
}

func Forbidden(reason string) error {
	return &Error{Kind: ErrForbidden, Msg: reason}
}

// PublicMessage returns the text that may be shown to a caller for err.
// Internal failures never leak their cause.
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrInternal) {
		return ErrInternal.Error()
	}
	var e *Error
	if errors.As(err, &e) && e.Msg != "" {
		return e.Msg
	}
	for _, kind := range []error{ErrUnauthorized, ErrForbidden, ErrNotFound, ErrBadRequest} {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	return ErrInternal.Error()
}
