// Package config loads the effective configuration from defaults, a config
// file, .env files, CITAS_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/Emilio24-dev/Laboratorio/internal/application"
	"github.com/Emilio24-dev/Laboratorio/internal/model"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. CITAS_SMTP_PASSWORD.
const EnvPrefix = "CITAS"

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"log-level": "log.level",
	"db":        "database.path",
	"driver":    "database.driver",
}

// Options controls where Load looks for settings.
type Options struct {
	// File is an explicit config file. When set it must exist.
	File string

	// SearchPaths are scanned for citas.{yaml,json,toml} and .env.
	SearchPaths []string

	// Flags are bound over every other source when changed.
	Flags *pflag.FlagSet
}

// DefaultSearchPaths returns the application directory followed by the
// working directory.
func DefaultSearchPaths() []string {
	paths := make([]string, 0, 2)

	if dir, err := application.GetApplicationDirectory(); err == nil {
		paths = append(paths, dir)
	}

	return append(paths, ".")
}

// Load resolves the configuration and validates it. It also returns the
// config file that was read, or "" when none was found.
func Load(opts Options) (*model.Config, string, error) {
	if err := loadDotEnv(opts.SearchPaths); err != nil {
		return nil, "", err
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		v.SetConfigName(application.ConfigFile)

		for _, p := range opts.SearchPaths {
			v.AddConfigPath(p)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &notFound) {
			return nil, "", fmt.Errorf("reading config: %w", err)
		}
	}

	if opts.Flags != nil {
		for name, key := range flagKeys {
			f := opts.Flags.Lookup(name)
			if f == nil {
				continue
			}

			if err := v.BindPFlag(key, f); err != nil {
				return nil, "", fmt.Errorf("binding flag --%s: %w", name, err)
			}
		}
	}

	cfg := model.DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, v.ConfigFileUsed(), nil
}

func setDefaults(v *viper.Viper) {
	def := model.DefaultConfig()

	v.SetDefault("database.driver", def.Database.Driver)
	v.SetDefault("database.path", def.Database.Path)

	v.SetDefault("smtp.host", def.SMTP.Host)
	v.SetDefault("smtp.port", def.SMTP.Port)
	v.SetDefault("smtp.username", def.SMTP.Username)
	v.SetDefault("smtp.password", def.SMTP.Password)
	v.SetDefault("smtp.from", def.SMTP.From)
	v.SetDefault("smtp.tls_policy", def.SMTP.TLSPolicy)
	v.SetDefault("smtp.timeout", def.SMTP.Timeout)

	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
}

// loadDotEnv exports .env files found in paths. Variables already set in
// the environment win.
func loadDotEnv(paths []string) error {
	for _, p := range paths {
		file := filepath.Join(p, ".env")

		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return fmt.Errorf("loading %s: %w", file, err)
		}
	}

	return nil
}
