package core

import (
	"context"
	"fmt"

	"github.com/Emilio24-dev/Laboratorio/internal/model"
)

// Opening hours for candidate slots: every whole hour from FirstHour up to
// and including LastHour.
const (
	FirstHour = 9
	LastHour  = 17
)

// SlotLister returns every booked slot.
type SlotLister interface {
	ListAll(ctx context.Context) ([]model.Slot, error)
}

// CandidateSlots returns the hourly times offered each day.
func CandidateSlots() []string {
	out := make([]string, 0, LastHour-FirstHour+1)
	for hour := FirstHour; hour <= LastHour; hour++ {
		out = append(out, fmt.Sprintf("%02d:00", hour))
	}

	return out
}

// FreeSlotsFor returns the candidate times on date not present in bookings,
// in ascending order.
func FreeSlotsFor(date string, bookings []model.Slot) []string {
	taken := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		if b.Date == date {
			taken[b.Time] = struct{}{}
		}
	}

	free := make([]string, 0, LastHour-FirstHour+1)
	for _, candidate := range CandidateSlots() {
		if _, ok := taken[candidate]; !ok {
			free = append(free, candidate)
		}
	}

	return free
}

// Availability reads all bookings and returns the free times on date.
func Availability(ctx context.Context, lister SlotLister, date string) ([]string, error) {
	d, err := NormalizeDate(date)
	if err != nil {
		return nil, err
	}

	bookings, err := lister.ListAll(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}

	return FreeSlotsFor(d, bookings), nil
}
