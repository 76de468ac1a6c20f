package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Emilio24-dev/Laboratorio/internal/model"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	cfg, used, err := Load(Options{SearchPaths: []string{t.TempDir()}})
	require.NoError(t, err)
	require.Empty(t, used)

	def := model.DefaultConfig()
	require.Equal(t, def.Database.Driver, cfg.Database.Driver)
	require.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	require.Equal(t, 587, cfg.SMTP.Port)
	require.Equal(t, model.TLSMandatory, cfg.SMTP.TLSPolicy)
	require.Equal(t, 30*time.Second, cfg.SMTP.Timeout)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "citas.yaml"), `
database:
  driver: bolt
smtp:
  host: mail.example.com
  port: 2525
  username: clinica@example.com
  timeout: 5s
`)

	t.Setenv("CITAS_SMTP_PORT", "465")
	t.Setenv("CITAS_SMTP_PASSWORD", "from-env")

	cfg, used, err := Load(Options{SearchPaths: []string{dir}})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "citas.yaml"), used)

	require.Equal(t, model.DriverBolt, cfg.Database.Driver)
	require.Equal(t, "mail.example.com", cfg.SMTP.Host)
	require.Equal(t, 465, cfg.SMTP.Port)
	require.Equal(t, "from-env", cfg.SMTP.Password)
	require.Equal(t, "clinica@example.com", cfg.SMTP.Sender())
	require.Equal(t, 5*time.Second, cfg.SMTP.Timeout)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"), "CITAS_SMTP_FROM=citas@example.com\n")

	t.Setenv("CITAS_SMTP_FROM", "")
	require.NoError(t, os.Unsetenv("CITAS_SMTP_FROM"))

	cfg, _, err := Load(Options{SearchPaths: []string{dir}})
	require.NoError(t, err)
	require.Equal(t, "citas@example.com", cfg.SMTP.From)
}

func TestLoad_Flags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("log-level", "", "")
	fs.String("db", "", "")
	fs.String("driver", "", "")

	require.NoError(t, fs.Parse([]string{"--log-level", "debug", "--db", "/tmp/x.db"}))

	cfg, _, err := Load(Options{SearchPaths: []string{t.TempDir()}, Flags: fs})
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "/tmp/x.db", cfg.Database.Path)
	require.Equal(t, model.DriverSQLite, cfg.Database.Driver)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("explicit file missing", func(t *testing.T) {
		_, _, err := Load(Options{File: filepath.Join(t.TempDir(), "nope.yaml")})
		require.Error(t, err)
	})

	t.Run("invalid driver", func(t *testing.T) {
		t.Setenv("CITAS_DATABASE_DRIVER", "postgres")

		_, _, err := Load(Options{SearchPaths: []string{t.TempDir()}})
		require.ErrorContains(t, err, "database.driver")
	})

	t.Run("invalid tls policy", func(t *testing.T) {
		t.Setenv("CITAS_SMTP_TLS_POLICY", "sometimes")

		_, _, err := Load(Options{SearchPaths: []string{t.TempDir()}})
		require.ErrorContains(t, err, "tls_policy")
	})
}
