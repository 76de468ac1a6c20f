package core

import (
	"context"
	"errors"
	"testing"

	"github.com/Emilio24-dev/Laboratorio/internal/model"
	"github.com/stretchr/testify/require"
)

func TestCandidateSlots(t *testing.T) {
	require.Equal(t, []string{
		"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00",
	}, CandidateSlots())
}

func TestFreeSlotsFor(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		bookings []model.Slot
		want     []string
	}{
		{
			name: "no bookings",
			date: "2025-01-10",
			want: CandidateSlots(),
		},
		{
			name: "some taken",
			date: "2025-01-10",
			bookings: []model.Slot{
				{Date: "2025-01-10", Time: "09:00"},
				{Date: "2025-01-10", Time: "13:00"},
				{Date: "2025-01-11", Time: "10:00"},
			},
			want: []string{"10:00", "11:00", "12:00", "14:00", "15:00", "16:00", "17:00"},
		},
		{
			name: "off-hour booking ignored",
			date: "2025-01-10",
			bookings: []model.Slot{
				{Date: "2025-01-10", Time: "09:30"},
			},
			want: CandidateSlots(),
		},
		{
			name: "other dates only",
			date: "2025-01-12",
			bookings: []model.Slot{
				{Date: "2025-01-10", Time: "09:00"},
			},
			want: CandidateSlots(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FreeSlotsFor(tt.date, tt.bookings))
		})
	}
}

func TestFreeSlotsFor_FullyBooked(t *testing.T) {
	var bookings []model.Slot
	for _, c := range CandidateSlots() {
		bookings = append(bookings, model.Slot{Date: "2025-01-10", Time: c})
	}

	free := FreeSlotsFor("2025-01-10", bookings)
	require.NotNil(t, free)
	require.Empty(t, free)
}

func TestAvailability(t *testing.T) {
	store := &memStore{}
	ctx := context.Background()

	free, err := Availability(ctx, store, "2025-01-10")
	require.NoError(t, err)
	require.Len(t, free, 9)

	_, err = store.Insert(ctx, &model.Appointment{Date: "2025-01-10", Time: "12:00"})
	require.NoError(t, err)

	free, err = Availability(ctx, store, "2025-01-10")
	require.NoError(t, err)
	require.NotContains(t, free, "12:00")
	require.Len(t, free, 8)

	_, err = Availability(ctx, store, "tomorrow")
	require.ErrorIs(t, err, ErrInvalidFormat)

	store.lookupErr = errors.New("database is locked")
	_, err = Availability(ctx, store, "2025-01-10")

	var se *StorageError
	require.ErrorAs(t, err, &se)
	require.Equal(t, "list", se.Op)
}
