package core

import (
	"strings"
	"time"
)

// Layouts used for the persisted date and time columns.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// NormalizeDate parses a YYYY-MM-DD date and returns it in canonical form.
func NormalizeDate(date string) (string, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return "", &ValidationError{Field: "date", Err: ErrInvalidFormat}
	}

	return d.Format(DateLayout), nil
}

// NormalizeTime parses an HH:MM time and returns it zero-padded.
func NormalizeTime(clock string) (string, error) {
	c, err := time.Parse(TimeLayout, strings.TrimSpace(clock))
	if err != nil {
		return "", &ValidationError{Field: "time", Err: ErrInvalidFormat}
	}

	return c.Format(TimeLayout), nil
}

// SlotTime combines date and clock into one instant in loc.
func SlotTime(date, clock string, loc *time.Location) (time.Time, error) {
	d, err := NormalizeDate(date)
	if err != nil {
		return time.Time{}, err
	}

	c, err := NormalizeTime(clock)
	if err != nil {
		return time.Time{}, err
	}

	return time.ParseInLocation(DateLayout+" "+TimeLayout, d+" "+c, loc)
}
