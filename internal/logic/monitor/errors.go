package monitor

import (
	"errors"
	"fmt"
)

var (
	ErrStorage          = errors.New("storage")
	ErrValidation       = errors.New("invalid settings")
	ErrInvalidLimit     = errors.New("limit must be positive")
	ErrSettingsNotFound = errors.New("settings not found")
	ErrInvalidOutcome   = errors.New("invalid outcome")
)

// ValidationError describes a rejected settings field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap makes errors.Is(err, ErrValidation) hold for every ValidationError.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
