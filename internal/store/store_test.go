package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Emilio24-dev/Laboratorio/internal/model"
	"github.com/stretchr/testify/require"
)

func TestOpen_Drivers(t *testing.T) {
	tests := []struct {
		name   string
		driver string
		file   string
	}{
		{name: "sqlite", driver: model.DriverSQLite, file: "citas.db"},
		{name: "bolt", driver: model.DriverBolt, file: "citas.bolt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(model.DatabaseConfig{Driver: tt.driver, Path: filepath.Join(t.TempDir(), tt.file)})
			require.NoError(t, err)

			defer func() { _ = s.Close() }()

			require.NoError(t, s.Ping())

			appt := &model.Appointment{PatientName: "Ana", DoctorName: "Dr. Ruiz", Date: "2025-01-10", Time: "10:00", Email: "ana@example.com"}
			_, err = s.Insert(context.Background(), appt)
			require.NoError(t, err)

			got, err := s.FindByDateTime(context.Background(), "2025-01-10", "10:00")
			require.NoError(t, err)
			require.Equal(t, appt, got)
		})
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(model.DatabaseConfig{Driver: "postgres", Path: filepath.Join(t.TempDir(), "x")})
	require.Error(t, err)
}

func TestResolvePath(t *testing.T) {
	p, err := ResolvePath(model.DatabaseConfig{Driver: model.DriverSQLite, Path: "/tmp/custom.db"})
	require.NoError(t, err)
	require.Equal(t, "/tmp/custom.db", p)

	p, err = ResolvePath(model.DatabaseConfig{Driver: model.DriverSQLite})
	require.NoError(t, err)
	require.Equal(t, "citas.db", filepath.Base(p))

	p, err = ResolvePath(model.DatabaseConfig{Driver: model.DriverBolt})
	require.NoError(t, err)
	require.Equal(t, "citas.bolt", filepath.Base(p))
}
