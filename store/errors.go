package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means an operation referenced a nonexistent id.
	ErrNotFound = errors.New("record not found")
	// ErrItemNotFound means a consumable line referenced an inventory id
	// absent from the catalog.
	ErrItemNotFound = errors.New("inventory item not found")
	// ErrInsufficientStock means a consumption request exceeds the available
	// quantity.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ValidationError reports a required field missing or malformed, or a failed
// business precondition (non-future appointment time, bad phone number).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
