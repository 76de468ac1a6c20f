package core

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Emilio24-dev/Laboratorio/internal/model"
	"github.com/Emilio24-dev/Laboratorio/internal/notify"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AppointmentStore is the part of the store the booker needs.
type AppointmentStore interface {
	SlotLookup
	SlotLister
	Insert(ctx context.Context, appt *model.Appointment) (int64, error)
}

// BookingRequest holds the raw form values for a new appointment.
type BookingRequest struct {
	PatientName string
	DoctorName  string
	Date        string
	Time        string
	Email       string
}

// Booker validates, stores and confirms appointments.
type Booker struct {
	store  AppointmentStore
	sender notify.Sender
	now    func() time.Time
	log    zerolog.Logger

	// mu serializes the slot check and the insert that follows it.
	mu sync.Mutex
}

// Option configures a Booker.
type Option func(*Booker)

// WithClock overrides the wall clock used for the future check.
func WithClock(now func() time.Time) Option {
	return func(b *Booker) {
		b.now = now
	}
}

// WithLogger sets the logger used for booking events.
func WithLogger(log zerolog.Logger) Option {
	return func(b *Booker) {
		b.log = log
	}
}

// NewBooker creates a Booker over store that confirms through sender.
func NewBooker(store AppointmentStore, sender notify.Sender, opts ...Option) *Booker {
	b := &Booker{
		store:  store,
		sender: sender,
		now:    time.Now,
		log:    zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Book registers the appointment and sends its confirmation. When only the
// confirmation fails the stored appointment is returned with a *NotifyError.
func (b *Booker) Book(ctx context.Context, req BookingRequest) (*model.Appointment, error) {
	appt, err := b.Register(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := b.Confirm(ctx, appt); err != nil {
		return appt, err
	}

	return appt, nil
}

// Register validates req, checks the slot and stores the appointment.
// Validation failures return a *ValidationError and write nothing.
func (b *Booker) Register(ctx context.Context, req BookingRequest) (*model.Appointment, error) {
	log := b.log.With().Str("request_id", uuid.NewString()).Logger()

	appt, err := normalize(req)
	if err != nil {
		log.Warn().Err(err).Msg("booking rejected")
		return nil, err
	}

	log = log.With().Str("date", appt.Date).Str("time", appt.Time).Logger()

	future, err := IsFuture(appt.Date, appt.Time, b.now())
	if err != nil {
		return nil, err
	}

	if !future {
		log.Warn().Msg("booking rejected: slot is not in the future")
		return nil, &ValidationError{Err: ErrNotFuture}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	taken, err := IsSlotTaken(ctx, b.store, appt.Date, appt.Time)
	if err != nil {
		log.Error().Err(err).Msg("slot lookup failed")
		return nil, err
	}

	if taken {
		log.Warn().Msg("booking rejected: slot already taken")
		return nil, &ValidationError{Err: ErrSlotTaken}
	}

	if _, err := b.store.Insert(ctx, appt); err != nil {
		log.Error().Err(err).Msg("insert failed")
		return nil, &StorageError{Op: "insert", Err: err}
	}

	log.Info().Int64("id", appt.ID).Str("doctor", appt.DoctorName).Msg("appointment registered")

	return appt, nil
}

// Confirm sends the confirmation email for a stored appointment. It never
// modifies the store.
func (b *Booker) Confirm(ctx context.Context, appt *model.Appointment) error {
	log := b.log.With().Int64("id", appt.ID).Str("recipient", appt.Email).Logger()

	if err := b.sender.Send(ctx, notify.NewConfirmation(appt)); err != nil {
		log.Error().Err(err).Str("sender", b.sender.Name()).Msg("confirmation not sent")
		return &NotifyError{Recipient: appt.Email, Err: err}
	}

	log.Info().Str("sender", b.sender.Name()).Msg("confirmation sent")

	return nil
}

// FreeSlots returns the free times on date, read fresh from the store.
func (b *Booker) FreeSlots(ctx context.Context, date string) ([]string, error) {
	return Availability(ctx, b.store, date)
}

func normalize(req BookingRequest) (*model.Appointment, error) {
	appt := &model.Appointment{
		PatientName: strings.TrimSpace(req.PatientName),
		DoctorName:  strings.TrimSpace(req.DoctorName),
		Email:       strings.TrimSpace(req.Email),
	}

	if appt.PatientName == "" {
		return nil, &ValidationError{Field: "patient", Err: ErrRequired}
	}

	if appt.DoctorName == "" {
		return nil, &ValidationError{Field: "doctor", Err: ErrRequired}
	}

	var err error

	if appt.Date, err = NormalizeDate(req.Date); err != nil {
		return nil, err
	}

	if appt.Time, err = NormalizeTime(req.Time); err != nil {
		return nil, err
	}

	return appt, nil
}
