package model

import "time"

// Practitioner is the full practitioner document, including the password
// hash. The hash is never serialized to JSON.
type Practitioner struct {
	ID           string    `bson:"id" json:"id"`
	FullName     string    `bson:"full_name" json:"full_name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password" json:"-"` // Never expose in JSON
	Specialty    string    `bson:"specialty" json:"specialty"`
	Description  string    `bson:"description" json:"description"`
	Phone        string    `bson:"phone" json:"phone"`
	Schedule     string    `bson:"schedule" json:"schedule"`
	Address      string    `bson:"address" json:"address"`
	City         string    `bson:"city" json:"city"`
	PhotoURL     string    `bson:"photo_url" json:"photo_url"`
	Rating       float64   `bson:"rating" json:"rating"`
	ReviewsCount int       `bson:"reviews_count" json:"reviews_count"`
	Category     string    `bson:"category" json:"category"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// PractitionerPublic is the public-facing view served by the directory.
// It never carries the email or the password hash.
type PractitionerPublic struct {
	ID           string  `bson:"id" json:"id"`
	FullName     string  `bson:"full_name" json:"full_name"`
	Specialty    string  `bson:"specialty" json:"specialty"`
	Description  string  `bson:"description" json:"description"`
	Phone        string  `bson:"phone" json:"phone"`
	Schedule     string  `bson:"schedule" json:"schedule"`
	Address      string  `bson:"address" json:"address"`
	City         string  `bson:"city" json:"city"`
	PhotoURL     string  `bson:"photo_url" json:"photo_url"`
	Rating       float64 `bson:"rating" json:"rating"`
	ReviewsCount int     `bson:"reviews_count" json:"reviews_count"`
	Category     string  `bson:"category" json:"category"`
}

// Public strips the practitioner down to its public view.
func (p *Practitioner) Public() *PractitionerPublic {
	return &PractitionerPublic{
		ID:           p.ID,
		FullName:     p.FullName,
		Specialty:    p.Specialty,
		Description:  p.Description,
		Phone:        p.Phone,
		Schedule:     p.Schedule,
		Address:      p.Address,
		City:         p.City,
		PhotoURL:     p.PhotoURL,
		Rating:       p.Rating,
		ReviewsCount: p.ReviewsCount,
		Category:     p.Category,
	}
}

// PractitionerUpdate carries a partial profile update. Nil fields are left
// unchanged; there is no way to clear a field back to empty.
type PractitionerUpdate struct {
	FullName    *string `json:"full_name"`
	Specialty   *string `json:"specialty"`
	Description *string `json:"description"`
	Phone       *string `json:"phone"`
	Schedule    *string `json:"schedule"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	PhotoURL    *string `json:"photo_url"`
	Category    *string `json:"category"`
}

// Fields returns the set bson field names and values for non-nil entries.
func (u *PractitionerUpdate) Fields() map[string]interface{} {
	set := map[string]interface{}{}
	if u.FullName != nil {
		set["full_name"] = *u.FullName
	}
	if u.Specialty != nil {
		set["specialty"] = *u.Specialty
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Phone != nil {
		set["phone"] = *u.Phone
	}
	if u.Schedule != nil {
		set["schedule"] = *u.Schedule
	}
	if u.Address != nil {
		set["address"] = *u.Address
	}
	if u.City != nil {
		set["city"] = *u.City
	}
	if u.PhotoURL != nil {
		set["photo_url"] = *u.PhotoURL
	}
	if u.Category != nil {
		set["category"] = *u.Category
	}
	return set
}
