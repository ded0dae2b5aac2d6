package model

import "time"

// Patient is a contact record owned by exactly one practitioner.
type Patient struct {
	ID             string    `bson:"id" json:"id"`
	PractitionerID string    `bson:"practitioner_id" json:"practitioner_id"`
	FullName       string    `bson:"full_name" json:"full_name"`
	Email          string    `bson:"email" json:"email"`
	Phone          string    `bson:"phone" json:"phone"`
	Notes          string    `bson:"notes" json:"notes"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}

// PatientUpdate carries a partial patient update; nil means leave unchanged.
type PatientUpdate struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone"`
	Notes    *string `json:"notes"`
}

// Fields returns the set bson field names and values for non-nil entries.
func (u *PatientUpdate) Fields() map[string]interface{} {
	set := map[string]interface{}{}
	if u.FullName != nil {
		set["full_name"] = *u.FullName
	}
	if u.Email != nil {
		set["email"] = *u.Email
	}
	if u.Phone != nil {
		set["phone"] = *u.Phone
	}
	if u.Notes != nil {
		set["notes"] = *u.Notes
	}
	return set
}
