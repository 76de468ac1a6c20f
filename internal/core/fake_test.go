package core

import (
	"context"
	"errors"
	"sync"

	"github.com/Emilio24-dev/Laboratorio/internal/model"
	"github.com/Emilio24-dev/Laboratorio/internal/notify"
)

type memStore struct {
	mu        sync.Mutex
	rows      []model.Appointment
	nextID    int64
	insertErr error
	lookupErr error
}

func (m *memStore) FindByDateTime(_ context.Context, date, clock string) (*model.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.lookupErr != nil {
		return nil, m.lookupErr
	}

	for i := range m.rows {
		if m.rows[i].Date == date && m.rows[i].Time == clock {
			appt := m.rows[i]
			return &appt, nil
		}
	}

	return nil, nil
}

func (m *memStore) Insert(_ context.Context, appt *model.Appointment) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.insertErr != nil {
		return 0, m.insertErr
	}

	m.nextID++
	appt.ID = m.nextID
	m.rows = append(m.rows, *appt)

	return appt.ID, nil
}

func (m *memStore) ListAll(_ context.Context) ([]model.Slot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.lookupErr != nil {
		return nil, m.lookupErr
	}

	slots := make([]model.Slot, 0, len(m.rows))
	for i := range m.rows {
		slots = append(slots, m.rows[i].Slot())
	}

	return slots, nil
}

func (m *memStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.rows)
}

type fakeSender struct {
	mu   sync.Mutex
	sent []notify.Confirmation
	err  error
}

func (f *fakeSender) Send(_ context.Context, c *notify.Confirmation) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}

	f.sent = append(f.sent, *c)

	return nil
}

func (f *fakeSender) Name() string { return "fake" }

func (f *fakeSender) Test(context.Context) error { return f.err }

var errRelayDown = errors.New("dial tcp: connection refused")
