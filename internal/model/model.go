package model

// Appointment is a booked consultation. Column names follow the citas table.
type Appointment struct {
	// ID is assigned by the store on insert
	ID int64 `db:"id" json:"id"`

	// PatientName is the name of the person being seen
	PatientName string `db:"paciente" json:"patient_name"`

	// DoctorName is the name of the attending doctor
	DoctorName string `db:"doctor" json:"doctor_name"`

	// Date is the calendar day in YYYY-MM-DD form
	Date string `db:"fecha" json:"date"`

	// Time is the time of day in 24-hour HH:MM form
	Time string `db:"hora" json:"time"`

	// Email is where the confirmation is sent
	Email string `db:"correo" json:"email"`
}

// Slot returns the (date, time) pair the appointment occupies.
func (a *Appointment) Slot() Slot {
	return Slot{Date: a.Date, Time: a.Time}
}

// Slot is one bookable (date, time) pair.
type Slot struct {
	Date string `db:"fecha" json:"date"`
	Time string `db:"hora" json:"time"`
}

// Key returns the slot in "YYYY-MM-DD HH:MM" form.
func (s Slot) Key() string {
	return s.Date + " " + s.Time
}
