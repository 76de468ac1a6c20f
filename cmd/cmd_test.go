package cmd

import (
	"bytes"
	"net"
	"path/filepath"
	"strconv"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

// isolate points the store at a temp file and the relay at a closed local
// port so commands never touch real user data or the network.
func isolate(t *testing.T) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	dbFile := filepath.Join(t.TempDir(), "citas.db")

	t.Setenv("CITAS_DATABASE_PATH", dbFile)
	t.Setenv("CITAS_DATABASE_DRIVER", "sqlite")
	t.Setenv("CITAS_SMTP_HOST", "127.0.0.1")
	t.Setenv("CITAS_SMTP_PORT", strconv.Itoa(port))
	t.Setenv("CITAS_SMTP_USERNAME", "")
	t.Setenv("CITAS_SMTP_FROM", "clinica@example.com")
	t.Setenv("CITAS_SMTP_TLS_POLICY", "none")
	t.Setenv("CITAS_SMTP_TIMEOUT", "2s")
	t.Setenv("CITAS_LOG_LEVEL", "error")

	return dbFile
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	root := GetRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	t.Cleanup(func() {
		root.SetOut(nil)
		root.SetErr(nil)
		root.SetArgs(nil)
	})

	err := root.Execute()

	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "citas version")
}

func TestBookKeepsAppointmentWhenRelayIsDown(t *testing.T) {
	isolate(t)

	date := time.Now().AddDate(1, 0, 0).Format("2006-01-02")

	out, err := execute(t, "book",
		"--patient", "Ana", "--doctor", "Dr. Ruiz",
		"--date", date, "--time", "10:00", "--email", "ana@example.com")
	require.Error(t, err)
	require.Contains(t, err.Error(), "appointment saved")

	out, err = execute(t, "list")
	require.NoError(t, err)
	require.Contains(t, out, "Ana")
	require.Contains(t, out, date)

	out, err = execute(t, "availability", "--date", date)
	require.NoError(t, err)
	require.NotContains(t, out, "10:00")
	require.Contains(t, out, "11:00")

	_, err = execute(t, "book",
		"--patient", "Bea", "--doctor", "Dr. Paz",
		"--date", date, "--time", "10:00", "--email", "bea@example.com")
	require.ErrorContains(t, err, "already booked")
}

func TestAvailabilityNormalizesDate(t *testing.T) {
	isolate(t)

	out, err := execute(t, "availability", "--date", " 2099-03-04 ")
	require.NoError(t, err)
	require.Contains(t, out, "Free slots on 2099-03-04:\n")

	_, err = execute(t, "availability", "--date", "2099-3-4")
	require.ErrorContains(t, err, "invalid format")
}

func TestBookPrintsAccentedNamesInBox(t *testing.T) {
	isolate(t)

	date := time.Now().AddDate(1, 0, 1).Format("2006-01-02")

	out, err := execute(t, "book",
		"--patient", "María José Gutiérrez Fernández de la Peña Núñez Ibáñez", "--doctor", "Dr. Muñoz",
		"--date", date, "--time", "12:00", "--email", "maria@example.com")
	require.ErrorContains(t, err, "appointment saved")
	require.True(t, utf8.ValidString(out))
	require.Contains(t, out, "Doctor: Dr. Muñoz")
}

func TestBookRejectsPastDate(t *testing.T) {
	isolate(t)

	_, err := execute(t, "book",
		"--patient", "Ana", "--doctor", "Dr. Ruiz",
		"--date", "2000-01-01", "--time", "10:00", "--email", "ana@example.com")
	require.ErrorContains(t, err, "must be in the future")

	out, err := execute(t, "list")
	require.NoError(t, err)
	require.NotContains(t, out, "Dr. Ruiz")
}

func TestConfigCommandRedactsPassword(t *testing.T) {
	isolate(t)
	t.Setenv("CITAS_SMTP_PASSWORD", "s3cret-value")

	out, err := execute(t, "config", "--json")
	require.NoError(t, err)
	require.Contains(t, out, `"host": "127.0.0.1"`)
	require.NotContains(t, out, "s3cret-value")
}
