package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Emilio24-dev/Laboratorio/internal/application"
	"github.com/Emilio24-dev/Laboratorio/internal/secret"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var secretYes bool

var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Manage the mail relay password in the OS keyring",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var secretSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store the relay password for smtp.username",
	Long: `Read the relay password without echo and store it in the OS keyring
under smtp.username. When stdin is not a terminal the first line is read.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		if cfg.SMTP.Username == "" {
			return errors.New("smtp.username is not configured")
		}

		password, err := readPassword(fmt.Sprintf("Password for %s: ", cfg.SMTP.Username))
		if err != nil {
			return err
		}

		if password == "" {
			return errors.New("password is empty")
		}

		if err := secret.NewKeyring(application.AppName).Set(cmd.Context(), cfg.SMTP.Username, password); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Password stored in the OS keyring for %s\n", cfg.SMTP.Username)

		return nil
	},
}

var secretDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove the relay password from the OS keyring",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		if cfg.SMTP.Username == "" {
			return errors.New("smtp.username is not configured")
		}

		if !secretYes && !promptConfirm(fmt.Sprintf("Delete the stored password for %s? [y/N]: ", cfg.SMTP.Username)) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}

		err = secret.NewKeyring(application.AppName).Delete(cmd.Context(), cfg.SMTP.Username)
		if errors.Is(err, secret.ErrNotFound) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No password stored.")
			return nil
		}

		if err != nil {
			return err
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Password removed.")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(secretCmd)
	secretCmd.AddCommand(secretSetCmd)
	secretCmd.AddCommand(secretDeleteCmd)
	secretDeleteCmd.Flags().BoolVarP(&secretYes, "yes", "y", false, "skip confirmation prompt")
}

// readPassword reads a password without echo from a terminal, or one line
// from piped stdin.
func readPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("reading password: %w", err)
		}

		return strings.TrimRight(line, "\r\n"), nil
	}

	_, _ = fmt.Fprint(os.Stderr, prompt)

	b, err := term.ReadPassword(fd)

	_, _ = fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}

	return string(b), nil
}
