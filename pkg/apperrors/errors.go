package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for transport mapping.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
)

// Error is the structured error the service layer returns. Field is set for
// validation failures that concern a single input field.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}

// Wrap annotates an unexpected failure; the result maps to an internal
// error at the transport layer.
func Wrap(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf extracts the kind from any error. Unclassified errors are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// FieldOf returns the offending field of a validation error, if present.
func FieldOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}

func IsValidation(err error) bool { return KindOf(err) == KindValidation }
func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }
func IsConflict(err error) bool   { return KindOf(err) == KindConflict }
