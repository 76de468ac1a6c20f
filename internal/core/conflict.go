package core

import (
	"context"

	"github.com/Emilio24-dev/Laboratorio/internal/model"
)

// SlotLookup finds the appointment booked at an exact slot.
type SlotLookup interface {
	FindByDateTime(ctx context.Context, date, clock string) (*model.Appointment, error)
}

// IsSlotTaken reports whether an appointment already exists at exactly date and clock.
func IsSlotTaken(ctx context.Context, lookup SlotLookup, date, clock string) (bool, error) {
	appt, err := lookup.FindByDateTime(ctx, date, clock)
	if err != nil {
		return false, &StorageError{Op: "lookup", Err: err}
	}

	return appt != nil, nil
}
