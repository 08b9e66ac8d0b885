// Package errors provides coded errors for the turn engine.
//
// Recoverable contract violations (a move off the grid, equipping into an
// occupied slot, quaffing a sword) carry a Code the presentation layer can
// switch on. Player death is not an error; it is a turn outcome.
package errors

import (
	"errors"
	"fmt"
)

// Code classifies an engine error.
type Code string

const (
	CodeOK                  Code = "OK"
	CodeInvalidMove         Code = "INVALID_MOVE"
	CodeInvalidEquip        Code = "INVALID_EQUIP"
	CodeNotEquipped         Code = "NOT_EQUIPPED"
	CodeInvalidItem         Code = "INVALID_ITEM"
	CodeInvalidCommand      Code = "INVALID_COMMAND"
	CodeSessionEnded        Code = "SESSION_ENDED"
	CodeInternalConsistency Code = "INTERNAL_CONSISTENCY"
)

// Recoverable reports whether an error with this code leaves the session
// playable.
func (c Code) Recoverable() bool {
	switch c {
	case CodeInvalidMove, CodeInvalidEquip, CodeNotEquipped, CodeInvalidItem, CodeInvalidCommand:
		return true
	default:
		return false
	}
}

// Error is a structured error with a code, message, and optional metadata.
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithMeta adds metadata to the error
func (e *Error) WithMeta(key string, value interface{}) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with a formatted message
func Newf(code Code, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error, preserving its code if it's an Error.
// Plain errors are classified as internal consistency failures.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var existingErr *Error
	if errors.As(err, &existingErr) {
		return &Error{
			Code:    existingErr.Code,
			Message: message,
			Cause:   err,
			Meta:    existingErr.Meta,
		}
	}

	return &Error{
		Code:    CodeInternalConsistency,
		Message: message,
		Cause:   err,
	}
}

// InvalidMove creates an invalid move error
func InvalidMove(message string) *Error {
	return New(CodeInvalidMove, message)
}

// InvalidMovef creates an invalid move error with formatted message
func InvalidMovef(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidMove, format, args...)
}

// InvalidEquip creates an invalid equip error
func InvalidEquip(message string) *Error {
	return New(CodeInvalidEquip, message)
}

// InvalidEquipf creates an invalid equip error with formatted message
func InvalidEquipf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidEquip, format, args...)
}

// NotEquipped creates a not equipped error
func NotEquipped(message string) *Error {
	return New(CodeNotEquipped, message)
}

// NotEquippedf creates a not equipped error with formatted message
func NotEquippedf(format string, args ...interface{}) *Error {
	return Newf(CodeNotEquipped, format, args...)
}

// InvalidItem creates an invalid item error
func InvalidItem(message string) *Error {
	return New(CodeInvalidItem, message)
}

// InvalidItemf creates an invalid item error with formatted message
func InvalidItemf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidItem, format, args...)
}

// InvalidCommandf creates an invalid command error with formatted message
func InvalidCommandf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidCommand, format, args...)
}

// SessionEnded creates the error returned for commands submitted after death.
func SessionEnded(message string) *Error {
	return New(CodeSessionEnded, message)
}

// InternalConsistency creates an internal consistency error
func InternalConsistency(message string) *Error {
	return New(CodeInternalConsistency, message)
}

// InternalConsistencyf creates an internal consistency error with formatted message
func InternalConsistencyf(format string, args ...interface{}) *Error {
	return Newf(CodeInternalConsistency, format, args...)
}
