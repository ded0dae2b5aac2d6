package model

import "time"

// DateLayout is the calendar date format appointments are stored with.
const DateLayout = "2006-01-02"

// Appointment is a scheduled event owned by exactly one practitioner. The
// patient display name is denormalized at creation time; no overlap checking
// is performed between appointments.
type Appointment struct {
	ID             string    `bson:"id" json:"id"`
	PractitionerID string    `bson:"practitioner_id" json:"practitioner_id"`
	PatientID      string    `bson:"patient_id" json:"patient_id"`
	PatientName    string    `bson:"patient_name" json:"patient_name"`
	Date           string    `bson:"date" json:"date"`         // YYYY-MM-DD
	Time           string    `bson:"time" json:"time"`         // HH:MM
	Duration       int       `bson:"duration" json:"duration"` // minutes
	Notes          string    `bson:"notes" json:"notes"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}

// AppointmentUpdate carries a partial appointment update; nil means leave unchanged.
type AppointmentUpdate struct {
	PatientID   *string `json:"patient_id"`
	PatientName *string `json:"patient_name"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Duration    *int    `json:"duration"`
	Notes       *string `json:"notes"`
}

// Fields returns the set bson field names and values for non-nil entries.
func (u *AppointmentUpdate) Fields() map[string]interface{} {
	set := map[string]interface{}{}
	if u.PatientID != nil {
		set["patient_id"] = *u.PatientID
	}
	if u.PatientName != nil {
		set["patient_name"] = *u.PatientName
	}
	if u.Date != nil {
		set["date"] = *u.Date
	}
	if u.Time != nil {
		set["time"] = *u.Time
	}
	if u.Duration != nil {
		set["duration"] = *u.Duration
	}
	if u.Notes != nil {
		set["notes"] = *u.Notes
	}
	return set
}
