// Package model defines the data structures used throughout citas.
//
// # Appointment
//
// The [Appointment] struct is the only persisted entity:
//
//	type Appointment struct {
//	    ID          int64  // Assigned by the store
//	    PatientName string // Patient being seen
//	    DoctorName  string // Attending doctor
//	    Date        string // YYYY-MM-DD
//	    Time        string // HH:MM, 24-hour
//	    Email       string // Confirmation destination
//	}
//
// A [Slot] is the (date, time) pair an appointment occupies. No two
// appointments share a slot.
//
// # Config
//
// The [Config] struct holds application configuration loaded by the
// config package: database driver and path, mail relay settings and
// logging.
package model
