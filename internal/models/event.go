package models

import "encoding/json"

const (
	ChangeEventInsert = "INSERT"

	NotificationsTable = "notifications"
)

// ChangeEvent is the row-change envelope posted by the database webhook when
// a table row is created, updated or deleted.
type ChangeEvent struct {
	Type      string          `json:"type"`
	Table     string          `json:"table"`
	Record    *Notification   `json:"record"`
	OldRecord json.RawMessage `json:"old_record"`
}
