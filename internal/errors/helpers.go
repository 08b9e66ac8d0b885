package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternalConsistency
}

// GetMessage extracts the user-facing message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// IsInvalidMove checks if the error is an invalid move error
func IsInvalidMove(err error) bool {
	return GetCode(err) == CodeInvalidMove
}

// IsInvalidEquip checks if the error is an invalid equip error
func IsInvalidEquip(err error) bool {
	return GetCode(err) == CodeInvalidEquip
}

// IsNotEquipped checks if the error is a not equipped error
func IsNotEquipped(err error) bool {
	return GetCode(err) == CodeNotEquipped
}

// IsInvalidItem checks if the error is an invalid item error
func IsInvalidItem(err error) bool {
	return GetCode(err) == CodeInvalidItem
}

// IsSessionEnded checks if the error is a session ended error
func IsSessionEnded(err error) bool {
	return GetCode(err) == CodeSessionEnded
}

// IsInternalConsistency checks if the error is an internal consistency error
func IsInternalConsistency(err error) bool {
	return err != nil && GetCode(err) == CodeInternalConsistency
}
