// Package cli provides the terminal user interface components for citas.
//
// The package uses [Bubbletea] for building interactive terminal UIs and
// [Lipgloss] for styling. All UI components follow the standard Bubbletea
// Model-View-Update (MVU) architecture.
//
// # Components
//
//   - Menu: main interactive menu for selecting an operation
//   - BookingForm: appointment form; registration and the confirmation
//     email run as commands and report back through messages
//   - Availability: free hourly slots for a date, re-read on every change
//   - AppointmentList: filterable list of stored appointments
//
// Results are shown as dialogs: warnings for rejected input, errors for
// storage and mail failures, and a success message once the confirmation
// has been sent.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
