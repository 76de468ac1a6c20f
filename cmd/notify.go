package cmd

import (
	"fmt"

	"github.com/Emilio24-dev/Laboratorio/internal/logger"
	"github.com/Emilio24-dev/Laboratorio/internal/notify"
	"github.com/spf13/cobra"
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Check the confirmation email setup",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var notifyTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Connect and authenticate to the mail relay without sending",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		log := logger.New(cfg.Log, cmd.ErrOrStderr())
		sender := notify.NewSMTPSender(cfg.SMTP, newSecrets(cfg))

		if err := sender.Test(cmd.Context()); err != nil {
			log.Error().Err(err).Str("sender", sender.Name()).Msg("relay check failed")
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ %s accepted the connection\n", sender.Name())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(notifyCmd)
	notifyCmd.AddCommand(notifyTestCmd)
}
