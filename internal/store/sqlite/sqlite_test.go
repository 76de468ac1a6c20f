package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Emilio24-dev/Laboratorio/internal/model"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "citas.db")

	s, err := New(path)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Logf("failed to close database: %v", err)
		}
	})

	return s, path
}

func TestStore_Ping(t *testing.T) {
	s, _ := setupTestDB(t)

	require.NoError(t, s.Ping())
}

func TestStore_InsertAndFind(t *testing.T) {
	s, _ := setupTestDB(t)
	ctx := context.Background()

	appt := &model.Appointment{
		PatientName: "Ana",
		DoctorName:  "Dr. Ruiz",
		Date:        "2025-01-10",
		Time:        "10:00",
		Email:       "ana@example.com",
	}

	id, err := s.Insert(ctx, appt)
	require.NoError(t, err)
	require.Positive(t, id)
	require.Equal(t, id, appt.ID)

	got, err := s.FindByDateTime(ctx, "2025-01-10", "10:00")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, *appt, *got)
}

func TestStore_FindByDateTime_ExactMatch(t *testing.T) {
	s, _ := setupTestDB(t)
	ctx := context.Background()

	_, err := s.Insert(ctx, &model.Appointment{PatientName: "Ana", DoctorName: "Dr. Ruiz", Date: "2025-01-10", Time: "10:00"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		date  string
		clock string
	}{
		{name: "other hour", date: "2025-01-10", clock: "11:00"},
		{name: "other minute", date: "2025-01-10", clock: "10:01"},
		{name: "other day", date: "2025-01-11", clock: "10:00"},
		{name: "unpadded hour", date: "2025-01-10", clock: "10:0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.FindByDateTime(ctx, tt.date, tt.clock)
			require.NoError(t, err)
			require.Nil(t, got)
		})
	}
}

func TestStore_IDsIncrease(t *testing.T) {
	s, _ := setupTestDB(t)
	ctx := context.Background()

	first, err := s.Insert(ctx, &model.Appointment{PatientName: "Ana", DoctorName: "Dr. Ruiz", Date: "2025-01-10", Time: "09:00"})
	require.NoError(t, err)

	second, err := s.Insert(ctx, &model.Appointment{PatientName: "Luis", DoctorName: "Dr. Ruiz", Date: "2025-01-10", Time: "13:00"})
	require.NoError(t, err)

	require.Greater(t, second, first)
}

func TestStore_ListAll(t *testing.T) {
	s, _ := setupTestDB(t)
	ctx := context.Background()

	slots, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Empty(t, slots)

	for _, clock := range []string{"13:00", "09:00"} {
		_, err := s.Insert(ctx, &model.Appointment{PatientName: "Ana", DoctorName: "Dr. Ruiz", Date: "2025-01-10", Time: clock})
		require.NoError(t, err)
	}

	slots, err = s.ListAll(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []model.Slot{
		{Date: "2025-01-10", Time: "09:00"},
		{Date: "2025-01-10", Time: "13:00"},
	}, slots)
}

func TestStore_ListAppointments_Ordered(t *testing.T) {
	s, _ := setupTestDB(t)
	ctx := context.Background()

	inputs := []model.Appointment{
		{PatientName: "C", DoctorName: "Dr. Ruiz", Date: "2025-01-11", Time: "09:00"},
		{PatientName: "B", DoctorName: "Dr. Ruiz", Date: "2025-01-10", Time: "15:00"},
		{PatientName: "A", DoctorName: "Dr. Ruiz", Date: "2025-01-10", Time: "09:00"},
	}

	for i := range inputs {
		_, err := s.Insert(ctx, &inputs[i])
		require.NoError(t, err)
	}

	appts, err := s.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, appts, 3)
	require.Equal(t, "A", appts[0].PatientName)
	require.Equal(t, "B", appts[1].PatientName)
	require.Equal(t, "C", appts[2].PatientName)
}

func TestNew_IdempotentAcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "citas.db")
	ctx := context.Background()

	s, err := New(path)
	require.NoError(t, err)

	_, err = s.Insert(ctx, &model.Appointment{PatientName: "Ana", DoctorName: "Dr. Ruiz", Date: "2025-01-10", Time: "10:00"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := New(path)
	require.NoError(t, err)

	defer func() { _ = reopened.Close() }()

	version, err := NewMigrator(reopened.db).CurrentVersion(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, version)

	got, err := reopened.FindByDateTime(ctx, "2025-01-10", "10:00")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Ana", got.PatientName)
}

func TestNew_UnwritableLocation(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := New(filepath.Join(blocker, "citas.db"))
	require.Error(t, err)
}

func TestMigrator_LoadMigrations(t *testing.T) {
	s, _ := setupTestDB(t)

	migrations, err := NewMigrator(s.db).LoadMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)
	require.Equal(t, 1, migrations[0].Version)
	require.Equal(t, "create citas", migrations[0].Description)
	require.Contains(t, migrations[0].UpSQL, "CREATE TABLE IF NOT EXISTS citas")
	require.NotEmpty(t, migrations[0].DownSQL)
}
