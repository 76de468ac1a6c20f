// Package sqlite provides SQLite database storage for citas.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Emilio24-dev/Laboratorio/internal/model"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const driverName = "sqlite"

func init() {
	sqlx.BindDriver(driverName, sqlx.QUESTION)
}

const appointmentColumns = `id, paciente, doctor, fecha, hora, correo`

// Store implements the store.Store interface using SQLite.
type Store struct {
	db *sqlx.DB
	mu sync.RWMutex
}

// New opens (or creates) the SQLite file at dbPath and makes sure the schema exists.
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sqlx.Open(driverName, dbPath+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't handle multiple writers well
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := NewMigrator(db).MigrateUp(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks if the database is accessible.
func (s *Store) Ping() error {
	return s.db.Ping()
}

func (s *Store) FindByDateTime(ctx context.Context, date, clock string) (*model.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var appt model.Appointment

	err := s.db.GetContext(ctx, &appt,
		`SELECT `+appointmentColumns+` FROM citas WHERE fecha = ? AND hora = ? LIMIT 1`,
		date, clock,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("finding appointment at %s %s: %w", date, clock, err)
	}

	return &appt, nil
}

func (s *Store) Insert(ctx context.Context, appt *model.Appointment) (int64, error) {
	if appt == nil {
		return 0, errors.New("appointment is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO citas (paciente, doctor, fecha, hora, correo) VALUES (?, ?, ?, ?, ?)`,
		appt.PatientName, appt.DoctorName, appt.Date, appt.Time, appt.Email,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting appointment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading appointment id: %w", err)
	}

	appt.ID = id

	return id, nil
}

func (s *Store) ListAll(ctx context.Context) ([]model.Slot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var slots []model.Slot
	if err := s.db.SelectContext(ctx, &slots, `SELECT fecha, hora FROM citas`); err != nil {
		return nil, fmt.Errorf("listing slots: %w", err)
	}

	return slots, nil
}

func (s *Store) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var appts []model.Appointment
	if err := s.db.SelectContext(ctx, &appts,
		`SELECT `+appointmentColumns+` FROM citas ORDER BY fecha, hora, id`,
	); err != nil {
		return nil, fmt.Errorf("listing appointments: %w", err)
	}

	return appts, nil
}
