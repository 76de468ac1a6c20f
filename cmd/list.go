package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/Emilio24-dev/Laboratorio/internal/cli"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var listInteractive bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List booked appointments",
	Long:  `List every booked appointment ordered by date and time. Use --interactive for a filterable list.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newSession(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		defer rt.Close()

		if listInteractive {
			m, err := cli.NewAppointmentList(cmd.Context(), rt.store)
			if err != nil {
				return err
			}

			_, err = tea.NewProgram(m).Run()

			return err
		}

		appts, err := rt.store.ListAppointments(cmd.Context())
		if err != nil {
			return err
		}

		if len(appts) == 0 {
			printEmptyResult(cmd.OutOrStdout(), "appointments", "citas book --help")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "ID\tDATE\tTIME\tPATIENT\tDOCTOR\tEMAIL")

		for _, a := range appts {
			_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				a.ID, a.Date, a.Time, truncateString(a.PatientName, 24), truncateString(a.DoctorName, 24), a.Email)
		}

		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVarP(&listInteractive, "interactive", "i", false, "show an interactive list")
}
