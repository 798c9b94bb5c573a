package domain

import "errors"

// ErrorKind is the closed set of failure classes the API distinguishes.
type ErrorKind uint8

const (
	// ErrorKindInternal covers everything not explicitly classified.
	ErrorKindInternal ErrorKind = iota
	// ErrorKindValidation marks client-correctable input failures.
	ErrorKindValidation
	// ErrorKindNotFound marks lookups of identifiers with no record.
	ErrorKindNotFound
)

// Error is a classified failure. Handlers switch on the kind, never on
// the message text.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// ValidationError builds a validation failure.
func ValidationError(msg string) error {
	return &Error{Kind: ErrorKindValidation, Message: msg}
}

// NotFoundError builds a missing-record failure.
func NotFoundError(msg string) error {
	return &Error{Kind: ErrorKindNotFound, Message: msg}
}

// KindOf classifies an error, unwrapping as needed. Anything that does
// not carry a kind is internal.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ErrorKindInternal
}
