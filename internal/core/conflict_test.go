package core

import (
	"context"
	"errors"
	"testing"

	"github.com/Emilio24-dev/Laboratorio/internal/model"
	"github.com/stretchr/testify/require"
)

func TestIsSlotTaken(t *testing.T) {
	ctx := context.Background()
	store := &memStore{}

	_, err := store.Insert(ctx, &model.Appointment{Date: "2025-01-10", Time: "10:00"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		date  string
		clock string
		want  bool
	}{
		{"exact match", "2025-01-10", "10:00", true},
		{"other time", "2025-01-10", "11:00", false},
		{"other date", "2025-01-11", "10:00", false},
		{"not normalized", "2025-01-10", "10:00:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsSlotTaken(ctx, store, tt.date, tt.clock)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestIsSlotTaken_LookupError(t *testing.T) {
	store := &memStore{lookupErr: errors.New("database is locked")}

	_, err := IsSlotTaken(context.Background(), store, "2025-01-10", "10:00")

	var se *StorageError
	require.ErrorAs(t, err, &se)
	require.Equal(t, "lookup", se.Op)
}
