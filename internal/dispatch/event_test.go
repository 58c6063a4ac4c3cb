package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/givecircle/dispatch-api/internal/models"
)

func TestExtractNotification(t *testing.T) {
	record := &models.Notification{
		ID:       "notif-1",
		UserID:   "user-1",
		Category: models.CategoryDonationReceived,
		Title:    "New donation",
	}

	tests := []struct {
		name string
		evt  models.ChangeEvent
		ok   bool
	}{
		{
			name: "insert on notifications",
			evt:  models.ChangeEvent{Type: "INSERT", Table: "notifications", Record: record},
			ok:   true,
		},
		{
			name: "update event",
			evt:  models.ChangeEvent{Type: "UPDATE", Table: "notifications", Record: record},
		},
		{
			name: "delete event",
			evt:  models.ChangeEvent{Type: "DELETE", Table: "notifications", Record: record},
		},
		{
			name: "lowercase insert",
			evt:  models.ChangeEvent{Type: "insert", Table: "notifications", Record: record},
		},
		{
			name: "other table",
			evt:  models.ChangeEvent{Type: "INSERT", Table: "profiles", Record: record},
		},
		{
			name: "missing record",
			evt:  models.ChangeEvent{Type: "INSERT", Table: "notifications"},
		},
		{
			name: "empty envelope",
			evt:  models.ChangeEvent{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notif, ok := ExtractNotification(tt.evt)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, *record, notif)
			} else {
				assert.Equal(t, models.Notification{}, notif)
			}
		})
	}
}
