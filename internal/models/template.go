package models

import "time"

// EmailTemplate holds the subject and body templates for one notification
// category. Bodies may contain {{variableName}} placeholders.
type EmailTemplate struct {
	ID        string    `json:"id" db:"id"`
	Category  Category  `json:"category" db:"category"`
	Subject   string    `json:"subject" db:"subject"`
	HTMLBody  string    `json:"html_body" db:"html_body"`
	TextBody  string    `json:"text_body" db:"text_body"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
