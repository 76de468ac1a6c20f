// Package core provides the booking rules for citas.
//
// This package contains all booking logic separated from UI concerns.
// Functions return errors instead of printing and never touch the terminal.
//
// # Booking
//
// A booking is split into two phases so the Bubbletea UI can run the
// email send off its update loop:
//
//  1. [Booker.Register] - validates the request, rejects slots that are not
//     in the future or already taken, and stores the appointment
//  2. [Booker.Confirm] - sends the confirmation email for a stored appointment
//
// [Booker.Book] runs both. A failed confirmation never removes the stored
// appointment; it is reported as a [NotifyError].
//
// # Availability
//
// [FreeSlotsFor] is a pure function over the booked slots; [Availability]
// reads the store and applies it.
package core
