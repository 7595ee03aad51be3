package item

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidData = errors.New("invalid item data")
	ErrForbidden   = errors.New("item belongs to another owner")
)

// ValidationError описывает непрошедшее проверку поле черновика.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidData
}
