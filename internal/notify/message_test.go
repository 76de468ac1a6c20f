package notify

import (
	"testing"

	"github.com/Emilio24-dev/Laboratorio/internal/model"
	"github.com/stretchr/testify/require"
)

func TestFormatConfirmation(t *testing.T) {
	body, err := FormatConfirmation(testConfirmation())
	require.NoError(t, err)

	require.Contains(t, body, "Estimado/a Ana,")
	require.Contains(t, body, "Doctor: Dr. Ruiz")
	require.Contains(t, body, "Fecha: 2025-01-10")
	require.Contains(t, body, "Hora: 10:00")
}

func TestNewConfirmation(t *testing.T) {
	appt := &model.Appointment{
		ID:          7,
		PatientName: "Ana",
		DoctorName:  "Dr. Ruiz",
		Date:        "2025-01-10",
		Time:        "10:00",
		Email:       "ana@example.com",
	}

	require.Equal(t, testConfirmation(), NewConfirmation(appt))
}
