package models

import "time"

type Profile struct {
	ID          string    `json:"id" db:"id"`
	Email       *string   `json:"email,omitempty" db:"email"`
	DisplayName string    `json:"display_name" db:"display_name"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// EmailAddress returns the profile's email, or "" when none is on file.
func (p *Profile) EmailAddress() string {
	if p.Email == nil {
		return ""
	}
	return *p.Email
}
