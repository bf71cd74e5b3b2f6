// Package apperr defines the error kinds returned by every usecase.
// The HTTP layer translates a Kind into exactly one response.
package apperr

import "errors"

// Kind classifies an application error.
type Kind int

const (
	// KindServer is an unexpected or storage failure.
	KindServer Kind = iota
	// KindValidation is bad or missing client input.
	KindValidation
	// KindAuth is a bad credential or token.
	KindAuth
	// KindForbidden is a rejected write on an otherwise valid request.
	KindForbidden
	// KindNotFound is a missing resource.
	KindNotFound
	// KindConflict is a uniqueness violation such as a duplicate email.
	KindConflict
)

// String returns a short name for the kind, used in logs.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "server"
	}
}

// Error is an application error with a client-safe message.
// Err holds the underlying cause and is never sent to clients.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports invalid input for the named field.
func Validation(field, message string) error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

// Auth reports a failed authentication.
func Auth(message string) error {
	return &Error{Kind: KindAuth, Message: message}
}

// Forbidden reports a rejected write.
func Forbidden(message string, cause error) error {
	return &Error{Kind: KindForbidden, Message: message, Err: cause}
}

// NotFound reports a missing resource.
func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Conflict reports a uniqueness violation on the named field.
func Conflict(field, message string) error {
	return &Error{Kind: KindConflict, Field: field, Message: message}
}

// Server wraps an unexpected failure.
func Server(message string, cause error) error {
	return &Error{Kind: KindServer, Message: message, Err: cause}
}

// As extracts the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf returns the kind of err. Errors that are not *Error are server errors.
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return KindServer
}
