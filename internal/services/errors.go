package services

import (
	"errors"
	"fmt"
)

// ErrItemNotFound is returned when a sale references an item identity that
// does not exist, so HTTP handlers can respond with 404.
var ErrItemNotFound = errors.New("item not found")

// ErrInsufficientStock is returned when a sale asks for more units than the
// item currently holds. The item is left untouched.
var ErrInsufficientStock = errors.New("insufficient stock")

// ValidationError reports malformed input. It is always raised before any
// store access, so a validation failure is never partially applied.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
