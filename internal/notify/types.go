// Package notify sends appointment confirmations.
package notify

import (
	"context"

	"github.com/Emilio24-dev/Laboratorio/internal/model"
)

// Confirmation carries the fields rendered into a confirmation message.
type Confirmation struct {
	PatientName string
	DoctorName  string
	Date        string
	Time        string

	// Recipient is the destination address, used as given
	Recipient string
}

// NewConfirmation builds the confirmation for a stored appointment.
func NewConfirmation(appt *model.Appointment) *Confirmation {
	return &Confirmation{
		PatientName: appt.PatientName,
		DoctorName:  appt.DoctorName,
		Date:        appt.Date,
		Time:        appt.Time,
		Recipient:   appt.Email,
	}
}

// Sender is the interface for confirmation senders.
type Sender interface {
	// Send delivers exactly one confirmation. It does not retry.
	Send(ctx context.Context, c *Confirmation) error

	// Name returns the sender's name for logging purposes.
	Name() string

	// Test opens and closes an authenticated session to verify configuration.
	Test(ctx context.Context) error
}
