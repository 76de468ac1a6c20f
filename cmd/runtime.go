package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Emilio24-dev/Laboratorio/internal/application"
	"github.com/Emilio24-dev/Laboratorio/internal/config"
	"github.com/Emilio24-dev/Laboratorio/internal/core"
	"github.com/Emilio24-dev/Laboratorio/internal/logger"
	"github.com/Emilio24-dev/Laboratorio/internal/model"
	"github.com/Emilio24-dev/Laboratorio/internal/notify"
	"github.com/Emilio24-dev/Laboratorio/internal/secret"
	"github.com/Emilio24-dev/Laboratorio/internal/store"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// session holds the components shared by a single command invocation.
type session struct {
	cfg    *model.Config
	log    zerolog.Logger
	store  store.Store
	sender notify.Sender
	booker *core.Booker
}

// loadConfig resolves the effective configuration for cmd.
func loadConfig(cmd *cobra.Command) (*model.Config, string, error) {
	cfg, used, err := config.Load(config.Options{
		File:        configFile,
		SearchPaths: config.DefaultSearchPaths(),
		Flags:       cmd.Flags(),
	})
	if err != nil {
		return nil, "", err
	}

	if cfg.Database.Path != "" {
		if cfg.Database.Path, err = expandPath(cfg.Database.Path); err != nil {
			return nil, "", err
		}
	}

	return cfg, used, nil
}

// newSecrets returns the relay password lookup: configuration first, then
// the OS keyring.
func newSecrets(cfg *model.Config) secret.Chain {
	return secret.Chain{
		secret.Static(cfg.SMTP.Password),
		secret.NewKeyring(application.AppName),
	}
}

// newSession loads the configuration, opens the store and wires the booker.
// Logs go to logOut.
func newSession(cmd *cobra.Command, logOut io.Writer) (*session, error) {
	cfg, used, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.Log, logOut)
	log.Debug().Str("config", used).Str("driver", cfg.Database.Driver).Msg("configuration loaded")

	st, err := store.Open(cfg.Database)
	if err != nil {
		log.Error().Err(err).Msg("opening appointment store")
		return nil, &core.StorageError{Op: "open", Err: err}
	}

	sender := notify.NewSMTPSender(cfg.SMTP, newSecrets(cfg))

	return &session{
		cfg:    cfg,
		log:    log,
		store:  st,
		sender: sender,
		booker: core.NewBooker(st, sender, core.WithLogger(log)),
	}, nil
}

func (r *session) Close() {
	if err := r.store.Close(); err != nil {
		r.log.Warn().Err(err).Msg("closing appointment store")
	}
}

// openLogFile opens the log file used while the terminal UI owns the screen.
func openLogFile() (*os.File, error) {
	dir, err := application.EnsureApplicationDirectory()
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(filepath.Join(dir, application.LogFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	return f, nil
}
