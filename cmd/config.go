package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var configJSON bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the configuration after merging defaults, the config file, .env,
CITAS_* environment variables and flags. The relay password is never shown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, used, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		if configJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(cfg)
		}

		if used == "" {
			used = "(none, using defaults)"
		}

		password := "(not set, OS keyring is used)"
		if cfg.SMTP.Password != "" {
			password = "********"
		}

		printInfoBox(cmd.OutOrStdout(), "Citas Configuration", map[string]string{
			"Config file": used,
			"DB driver":   cfg.Database.Driver,
			"DB path":     orDefault(cfg.Database.Path, "(application directory)"),
			"SMTP host":   fmt.Sprintf("%s:%d", cfg.SMTP.Host, cfg.SMTP.Port),
			"SMTP user":   orDefault(cfg.SMTP.Username, "(none)"),
			"SMTP from":   orDefault(cfg.SMTP.Sender(), "(none)"),
			"SMTP pass":   password,
			"TLS policy":  cfg.SMTP.TLSPolicy,
			"Timeout":     cfg.SMTP.Timeout.String(),
			"Log level":   cfg.Log.Level,
			"Log format":  cfg.Log.Format,
		}, []string{
			"Config file", "DB driver", "DB path", "SMTP host", "SMTP user", "SMTP from",
			"SMTP pass", "TLS policy", "Timeout", "Log level", "Log format",
		})

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolVar(&configJSON, "json", false, "print as JSON")
}
