package core

import "time"

// IsFuture reports whether the slot lies strictly after now. The slot is
// read in now's location; an instant equal to now is not in the future.
func IsFuture(date, clock string, now time.Time) (bool, error) {
	at, err := SlotTime(date, clock, now.Location())
	if err != nil {
		return false, err
	}

	return at.After(now), nil
}
