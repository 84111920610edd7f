package crud

import "errors"

// ErrInvalid matches every *ValidationError.
var ErrInvalid = errors.New("crud: invalid draft")

// ValidationError rejects a draft before any request is issued. Kind is the
// notification kind used to surface Message.
type ValidationError struct {
	Field   string
	Kind    string
	Message string
}

func (e *ValidationError) Error() string {
	return "invalid " + e.Field + ": " + e.Message
}

// Is makes ValidationError match ErrInvalid.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// Warn builds a warning-level validation error.
func Warn(field, message string) *ValidationError {
	return &ValidationError{Field: field, Kind: KindWarning, Message: message}
}

// Reject builds an error-level validation error.
func Reject(field, message string) *ValidationError {
	return &ValidationError{Field: field, Kind: KindError, Message: message}
}
