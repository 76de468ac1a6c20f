package model

import (
	"fmt"
	"time"
)

// Storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverBolt   = "bolt"
)

// TLS policies for the mail relay connection.
const (
	TLSMandatory     = "mandatory"
	TLSOpportunistic = "opportunistic"
	TLSNone          = "none"
)

// Config holds the application configuration
type Config struct {
	Database DatabaseConfig `mapstructure:"database" json:"database"`
	SMTP     SMTPConfig     `mapstructure:"smtp" json:"smtp"`
	Log      LogConfig      `mapstructure:"log" json:"log"`
}

// DatabaseConfig selects and locates the appointment store.
type DatabaseConfig struct {
	// Driver is either "sqlite" or "bolt"
	Driver string `mapstructure:"driver" json:"driver"`

	// Path is the database file. Empty means the application directory.
	Path string `mapstructure:"path" json:"path"`
}

// SMTPConfig describes the mail relay used for confirmations.
type SMTPConfig struct {
	Host     string `mapstructure:"host" json:"host"`
	Port     int    `mapstructure:"port" json:"port"`
	Username string `mapstructure:"username" json:"username"`

	// Password is optional; the OS keyring is consulted when empty
	Password string `mapstructure:"password" json:"-"`

	// From defaults to Username
	From      string        `mapstructure:"from" json:"from"`
	TLSPolicy string        `mapstructure:"tls_policy" json:"tls_policy"`
	Timeout   time.Duration `mapstructure:"timeout" json:"timeout"`
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level  string `mapstructure:"level" json:"level"`
	Format string `mapstructure:"format" json:"format"`
}

// Sender returns the From address for outgoing mail.
func (c SMTPConfig) Sender() string {
	if c.From != "" {
		return c.From
	}

	return c.Username
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		Database: DatabaseConfig{
			Driver: DriverSQLite,
		},
		SMTP: SMTPConfig{
			Host:      "smtp.gmail.com",
			Port:      587,
			TLSPolicy: TLSMandatory,
			Timeout:   30 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate reports the first setting that cannot work.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite, DriverBolt:
	default:
		return fmt.Errorf("database.driver must be %q or %q, got %q", DriverSQLite, DriverBolt, c.Database.Driver)
	}

	if c.SMTP.Host == "" {
		return fmt.Errorf("smtp.host is required")
	}

	if c.SMTP.Port <= 0 || c.SMTP.Port > 65535 {
		return fmt.Errorf("smtp.port must be between 1 and 65535, got %d", c.SMTP.Port)
	}

	switch c.SMTP.TLSPolicy {
	case TLSMandatory, TLSOpportunistic, TLSNone:
	default:
		return fmt.Errorf("smtp.tls_policy must be mandatory, opportunistic or none, got %q", c.SMTP.TLSPolicy)
	}

	if c.SMTP.Timeout < 0 {
		return fmt.Errorf("smtp.timeout must not be negative")
	}

	return nil
}
