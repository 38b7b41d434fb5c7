package httperr

import "errors"

// Kind classifies a failure so callers can branch programmatically instead of
// matching on message strings.
type Kind string

const (
	KindRead       Kind = "read"
	KindWrite      Kind = "write"
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
)

type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

func Read(code string, cause error) error {
	return wrap(KindRead, code, cause)
}

func Write(code string, cause error) error {
	return wrap(KindWrite, code, cause)
}

func Validation(code string) error {
	return &Error{Kind: KindValidation, Code: code}
}

func NotFound(code string) error {
	return &Error{Kind: KindNotFound, Code: code}
}

func wrap(kind Kind, code string, cause error) error {
	e := &Error{Kind: kind, Code: code}
	if cause != nil {
		e.Message = cause.Error()
	}
	return e
}

// KindOf reports the Kind of err, or "" if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err is an *Error with the given code.
func Is(err error, code string) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// CodeOf returns the error code, or "internal_error" for foreign errors.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return "internal_error"
}
