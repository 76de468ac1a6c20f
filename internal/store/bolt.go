package store

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/Emilio24-dev/Laboratorio/internal/model"
	"go.etcd.io/bbolt"
)

const (
	boltBucketAppointments = "appointments" // key: big-endian id -> Appointment JSON
	boltBucketSlots        = "slots"        // key: "YYYY-MM-DD HH:MM" -> big-endian id
)

// Bolt stores appointments in a BoltDB file.
type Bolt struct {
	storage *bbolt.DB
}

// NewBolt creates or opens a Bolt database at the specified path.
func NewBolt(path string) (*Bolt, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	instance, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bolt database: %w", err)
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketAppointments)); err != nil {
			return err
		}

		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketSlots)); err != nil {
			return err
		}

		return nil
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &Bolt{storage: instance}, nil
}

func (b *Bolt) Ping() error {
	return b.storage.View(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(boltBucketAppointments)) == nil {
			return errors.New("appointments bucket missing")
		}

		return nil
	})
}

func (b *Bolt) Close() error {
	return b.storage.Close()
}

func (b *Bolt) FindByDateTime(_ context.Context, date, clock string) (*model.Appointment, error) {
	var appt *model.Appointment

	err := b.storage.View(func(tx *bbolt.Tx) error {
		id := tx.Bucket([]byte(boltBucketSlots)).Get([]byte(model.Slot{Date: date, Time: clock}.Key()))
		if id == nil {
			return nil
		}

		v := tx.Bucket([]byte(boltBucketAppointments)).Get(id)
		if v == nil {
			return fmt.Errorf("slot %s %s points to missing appointment", date, clock)
		}

		var a model.Appointment
		if err := json.Unmarshal(v, &a); err != nil {
			return err
		}

		appt = &a

		return nil
	})

	return appt, err
}

func (b *Bolt) Insert(_ context.Context, appt *model.Appointment) (int64, error) {
	if appt == nil {
		return 0, errors.New("appointment is required")
	}

	err := b.storage.Update(func(tx *bbolt.Tx) error {
		var (
			appts = tx.Bucket([]byte(boltBucketAppointments))
			slots = tx.Bucket([]byte(boltBucketSlots))
		)

		seq, err := appts.NextSequence()
		if err != nil {
			return err
		}

		stored := *appt
		stored.ID = int64(seq)

		data, err := json.Marshal(&stored)
		if err != nil {
			return err
		}

		key := idKey(stored.ID)

		if err := appts.Put(key, data); err != nil {
			return err
		}

		// The slot index keeps the first appointment for a slot, like a
		// table scan with LIMIT 1 would.
		slotKey := []byte(stored.Slot().Key())
		if slots.Get(slotKey) == nil {
			if err := slots.Put(slotKey, key); err != nil {
				return err
			}
		}

		appt.ID = stored.ID

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("inserting appointment: %w", err)
	}

	return appt.ID, nil
}

func (b *Bolt) ListAll(ctx context.Context) ([]model.Slot, error) {
	appts, err := b.scan(ctx)
	if err != nil {
		return nil, err
	}

	slots := make([]model.Slot, len(appts))
	for i := range appts {
		slots[i] = appts[i].Slot()
	}

	return slots, nil
}

func (b *Bolt) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	appts, err := b.scan(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(appts, func(i, j int) bool {
		if appts[i].Date != appts[j].Date {
			return appts[i].Date < appts[j].Date
		}

		return appts[i].Time < appts[j].Time
	})

	return appts, nil
}

func (b *Bolt) scan(_ context.Context) ([]model.Appointment, error) {
	var out []model.Appointment

	err := b.storage.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketAppointments)).ForEach(func(_, v []byte) error {
			var a model.Appointment

			if err := json.Unmarshal(v, &a); err != nil {
				return err
			}

			out = append(out, a)

			return nil
		})
	})

	return out, err
}

func idKey(id int64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(id))

	return key
}
