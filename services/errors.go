package services

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error so the HTTP boundary can pick a status
// code without inspecting messages.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindForbidden
	KindConflict
	KindInsufficientStock
	KindUnavailable
)

// Error is a domain error with a caller-safe message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func validationErr(format string, args ...interface{}) *Error {
	return newError(KindValidation, format, args...)
}

func notFoundErr(format string, args ...interface{}) *Error {
	return newError(KindNotFound, format, args...)
}

func forbiddenErr(format string, args ...interface{}) *Error {
	return newError(KindForbidden, format, args...)
}

func conflictErr(format string, args ...interface{}) *Error {
	return newError(KindConflict, format, args...)
}

func insufficientStockErr(format string, args ...interface{}) *Error {
	return newError(KindInsufficientStock, format, args...)
}

// unavailableErr wraps a store failure; the wrapped error is for logs, the
// message is what callers see.
func unavailableErr(err error) *Error {
	return &Error{Kind: KindUnavailable, Message: "storage unavailable", Err: err}
}

// KindOf extracts the kind from err, KindUnknown if err is not a domain
// error.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}
