package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/givecircle/dispatch-api/internal/models"
)

type NotificationRepository interface {
	GetByID(ctx context.Context, id string) (models.Notification, error)
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]models.Notification, error)
	MarkEmailed(ctx context.Context, id string, at time.Time) error
}

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) GetByID(ctx context.Context, id string) (models.Notification, error) {
	const query = `
		SELECT id, user_id, category, title, message, metadata, emailed, emailed_at, created_at
		FROM notifications
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, query, strings.TrimSpace(id))
	return scanNotification(row)
}

func (r *notificationRepository) ListRecentByUser(ctx context.Context, userID string, limit int) ([]models.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}

	const query = `
		SELECT id, user_id, category, title, message, metadata, emailed, emailed_at, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, strings.TrimSpace(userID), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		notif, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, notif)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkEmailed overwrites the delivery flag and timestamp. Re-applying it to
// an already emailed row leaves the flag true, so duplicate webhook
// deliveries are harmless.
func (r *notificationRepository) MarkEmailed(ctx context.Context, id string, at time.Time) error {
	const query = `
		UPDATE notifications
		SET emailed = TRUE, emailed_at = $2
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, strings.TrimSpace(id), at)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func scanNotification(scanner interface {
	Scan(dest ...interface{}) error
}) (models.Notification, error) {
	var (
		notif       models.Notification
		metadataRaw []byte
		emailedAt   sql.NullTime
	)

	if err := scanner.Scan(
		&notif.ID,
		&notif.UserID,
		&notif.Category,
		&notif.Title,
		&notif.Message,
		&metadataRaw,
		&notif.Emailed,
		&emailedAt,
		&notif.CreatedAt,
	); err != nil {
		return models.Notification{}, err
	}

	if len(metadataRaw) > 0 {
		notif.Metadata = metadataRaw
	}
	if emailedAt.Valid {
		t := emailedAt.Time
		notif.EmailedAt = &t
	}

	return notif, nil
}
