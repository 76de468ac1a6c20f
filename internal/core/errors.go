package core

import (
	"errors"
	"fmt"
)

// Sentinel causes carried by ValidationError.
var (
	ErrSlotTaken     = errors.New("an appointment is already booked for this date and time")
	ErrNotFuture     = errors.New("the appointment date and time must be in the future")
	ErrRequired      = errors.New("value is required")
	ErrInvalidFormat = errors.New("invalid format")
)

// ValidationError indicates a booking was rejected before anything was written
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}

	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// StorageError wraps failures of the appointment store
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NotifyError wraps a failed confirmation email. The appointment it belongs
// to is already stored.
type NotifyError struct {
	Recipient string
	Err       error
}

func (e *NotifyError) Error() string {
	return fmt.Sprintf("could not send confirmation to %q: %v", e.Recipient, e.Err)
}

func (e *NotifyError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
