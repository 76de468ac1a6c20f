package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/Emilio24-dev/Laboratorio/internal/core"
	"github.com/spf13/cobra"
)

var availabilityDate string

var availabilityCmd = &cobra.Command{
	Use:     "availability",
	Aliases: []string{"free"},
	Short:   "Show free appointment times for a date",
	Long:    `Show the hourly slots from 09:00 to 17:00 that are not yet booked on a date (default today).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newSession(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		defer rt.Close()

		date := availabilityDate
		if date == "" {
			date = time.Now().Format(core.DateLayout)
		}

		date, err = core.NormalizeDate(date)
		if err != nil {
			return err
		}

		free, err := rt.booker.FreeSlots(cmd.Context(), date)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if len(free) == 0 {
			_, _ = fmt.Fprintf(out, "No free slots on %s\n", date)
			return nil
		}

		_, _ = fmt.Fprintf(out, "Free slots on %s:\n", date)
		_, _ = fmt.Fprintf(out, "  %s\n", strings.Join(free, "\n  "))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(availabilityCmd)
	availabilityCmd.Flags().StringVar(&availabilityDate, "date", "", "date to check (YYYY-MM-DD)")
}
