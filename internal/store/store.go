package store

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Emilio24-dev/Laboratorio/internal/application"
	"github.com/Emilio24-dev/Laboratorio/internal/model"
	"github.com/Emilio24-dev/Laboratorio/internal/store/sqlite"
)

// Store defines the appointment persistence operations used by the app.
type Store interface {
	Ping() error
	Close() error

	// FindByDateTime returns the appointment booked at the exact slot, or nil.
	FindByDateTime(ctx context.Context, date, clock string) (*model.Appointment, error)

	// Insert stores a new appointment, sets its ID and returns it.
	Insert(ctx context.Context, appt *model.Appointment) (int64, error)

	// ListAll returns every booked slot in no particular order.
	ListAll(ctx context.Context) ([]model.Slot, error)

	// ListAppointments returns every appointment ordered by date and time.
	ListAppointments(ctx context.Context) ([]model.Appointment, error)
}

// Open opens the store selected by cfg, creating the backing file if needed.
func Open(cfg model.DatabaseConfig) (Store, error) {
	path, err := ResolvePath(cfg)
	if err != nil {
		return nil, err
	}

	switch cfg.Driver {
	case model.DriverBolt:
		b, err := NewBolt(path)
		if err != nil {
			return nil, err
		}

		return b, nil
	case model.DriverSQLite, "":
		s, err := sqlite.New(path)
		if err != nil {
			return nil, err
		}

		return s, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// ResolvePath returns the database file for cfg, defaulting to the application directory.
func ResolvePath(cfg model.DatabaseConfig) (string, error) {
	if cfg.Path != "" {
		return cfg.Path, nil
	}

	dir, err := application.GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	if cfg.Driver == model.DriverBolt {
		return filepath.Join(dir, application.BoltFile), nil
	}

	return filepath.Join(dir, application.DatabaseFile), nil
}
