package cmd

import (
	"fmt"
	"os"

	"github.com/Emilio24-dev/Laboratorio/internal/application"
	"github.com/Emilio24-dev/Laboratorio/internal/cli"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	configFile string
	logLevel   string
	dbPath     string
	dbDriver   string
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "Book medical appointments",
	Long: `Citas books medical appointments, keeps them in a local database,
prevents double-booking a date and time, and emails a confirmation to the
patient.

Run without arguments to open the interactive menu.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractiveMenu(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command with every subcommand attached.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: citas.yaml in the app directory or working directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database file")
	rootCmd.PersistentFlags().StringVar(&dbDriver, "driver", "", "database driver: sqlite or bolt")
}

func runInteractiveMenu(cmd *cobra.Command) error {
	logFile, err := openLogFile()
	if err != nil {
		return err
	}

	defer func() { _ = logFile.Close() }()

	rt, err := newSession(cmd, logFile)
	if err != nil {
		return err
	}

	defer rt.Close()

	ctx := cmd.Context()

	for {
		finalModel, err := tea.NewProgram(cli.NewMainMenu()).Run()
		if err != nil {
			return err
		}

		choice := finalModel.(cli.MainMenuModel).GetChoice()

		switch choice {
		case cli.ActionRegister:
			err = runProgram(cli.NewBookingForm(ctx, rt.booker))
		case cli.ActionAvailability:
			err = runProgram(cli.NewAvailability(ctx, rt.booker, nil))
		case cli.ActionList:
			var m cli.AppointmentListModel

			m, err = cli.NewAppointmentList(ctx, rt.store)
			if err == nil {
				err = runProgram(m)
			}
		default:
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Goodbye!")
			return nil
		}

		if err != nil {
			rt.log.Error().Err(err).Str("action", choice).Msg("menu action failed")
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "\nPress Enter to continue...")
			_, _ = fmt.Scanln()
		}
	}
}

func runProgram(m tea.Model) error {
	_, err := tea.NewProgram(m).Run()
	return err
}
