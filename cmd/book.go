package cmd

import (
	"errors"
	"fmt"

	"github.com/Emilio24-dev/Laboratorio/internal/core"
	"github.com/spf13/cobra"
)

var bookReq core.BookingRequest

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Book an appointment and email the confirmation",
	Long: `Register an appointment for a future date and time that is not already
taken, then send a confirmation email to the patient.

The appointment is kept even when the email cannot be sent.`,
	Example: `  citas book --patient "Ana" --doctor "Dr. Ruiz" --date 2025-01-10 --time 10:00 --email ana@example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newSession(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		defer rt.Close()

		appt, err := rt.booker.Book(cmd.Context(), bookReq)
		if appt != nil {
			printInfoBox(cmd.OutOrStdout(), "Appointment Registered", map[string]string{
				"ID":      fmt.Sprintf("%d", appt.ID),
				"Patient": appt.PatientName,
				"Doctor":  appt.DoctorName,
				"Date":    appt.Date,
				"Time":    appt.Time,
				"Email":   appt.Email,
			}, []string{"ID", "Patient", "Doctor", "Date", "Time", "Email"})
		}

		var ne *core.NotifyError
		if errors.As(err, &ne) {
			return fmt.Errorf("appointment saved, but %w", err)
		}

		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Confirmation sent to %s\n", appt.Email)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(bookCmd)
	bookCmd.Flags().StringVar(&bookReq.PatientName, "patient", "", "patient name")
	bookCmd.Flags().StringVar(&bookReq.DoctorName, "doctor", "", "doctor name")
	bookCmd.Flags().StringVar(&bookReq.Date, "date", "", "appointment date (YYYY-MM-DD)")
	bookCmd.Flags().StringVar(&bookReq.Time, "time", "", "appointment time (HH:MM)")
	bookCmd.Flags().StringVar(&bookReq.Email, "email", "", "confirmation recipient")

	for _, name := range []string{"patient", "doctor", "date", "time", "email"} {
		_ = bookCmd.MarkFlagRequired(name)
	}
}
