package dispatch

import "github.com/givecircle/dispatch-api/internal/models"

// ExtractNotification unwraps a row-change event. Only INSERT events on the
// notifications table carry work for the pipeline; every other event type,
// table or empty payload is ignored.
func ExtractNotification(evt models.ChangeEvent) (models.Notification, bool) {
	if evt.Type != models.ChangeEventInsert {
		return models.Notification{}, false
	}
	if evt.Table != models.NotificationsTable {
		return models.Notification{}, false
	}
	if evt.Record == nil {
		return models.Notification{}, false
	}
	return *evt.Record, true
}
