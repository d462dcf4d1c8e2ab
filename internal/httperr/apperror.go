package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuth
	KindNotFound
	KindConflict
)

func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// AppError is the structured error every use case returns. Err carries the
// underlying cause for logs and is never written to clients.
type AppError struct {
	Kind    Kind
	Code    string
	Field   string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	msg := e.Code
	if e.Field != "" {
		msg += " (" + e.Field + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Validation(field, message string) error {
	return &AppError{Kind: KindValidation, Code: "validation_error", Field: field, Message: message}
}

func Validationf(field, format string, args ...any) error {
	return Validation(field, fmt.Sprintf(format, args...))
}

func Auth(code, message string) error {
	return &AppError{Kind: KindAuth, Code: code, Message: message}
}

func NotFound(code, message string) error {
	return &AppError{Kind: KindNotFound, Code: code, Message: message}
}

func Conflict(code, message string) error {
	return &AppError{Kind: KindConflict, Code: code, Message: message}
}

func Internal(err error) error {
	return &AppError{Kind: KindInternal, Code: "internal_error", Message: "Something went wrong.", Err: err}
}

// As extracts an AppError from err. Errors without one are reported as internal.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return &AppError{Kind: KindInternal, Code: "internal_error", Message: "Something went wrong.", Err: err}
}

func IsKind(err error, kind Kind) bool {
	var ae *AppError
	return errors.As(err, &ae) && ae.Kind == kind
}

func IsCode(err error, code string) bool {
	var ae *AppError
	return errors.As(err, &ae) && ae.Code == code
}
