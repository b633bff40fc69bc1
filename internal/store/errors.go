package store

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a persistence failure classified by the HTTP status it maps to.
// The sqlite layer translates driver constraint errors into these.
type Error struct {
	Code    int
	Message string
	Err     error
}

// Sentinels. Compare with errors.Is; variants made by WithMessage or
// WithCause still match because Is compares codes only.
var (
	ErrNotFound      = &Error{Code: http.StatusNotFound, Message: "resource not found"}
	ErrAlreadyExists = &Error{Code: http.StatusConflict, Message: "resource already exists"}
	// ErrInvalidInput covers CHECK and FOREIGN KEY violations.
	ErrInvalidInput = &Error{Code: http.StatusBadRequest, Message: "invalid input"}
)

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	var t *Error
	return errors.As(target, &t) && t.Code == e.Code
}

// HTTPCode returns the HTTP status code associated with this error.
func (e *Error) HTTPCode() int { return e.Code }

// WithMessage copies e with a more specific message.
func (e *Error) WithMessage(msg string) *Error {
	c := *e
	c.Message = msg
	return &c
}

// WithCause copies e wrapping the driver error.
func (e *Error) WithCause(err error) *Error {
	c := *e
	c.Err = err
	return &c
}
