package repository

import (
	"context"
	"database/sql"

	"github.com/givecircle/dispatch-api/internal/models"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (models.Profile, error)
}

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (models.Profile, error) {
	const query = `
		SELECT id, email, display_name, created_at
		FROM profiles
		WHERE id = $1
	`

	var (
		profile     models.Profile
		email       sql.NullString
		displayName sql.NullString
	)

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&profile.ID,
		&email,
		&displayName,
		&profile.CreatedAt,
	)
	if err != nil {
		return models.Profile{}, err
	}

	if email.Valid {
		val := email.String
		profile.Email = &val
	}
	profile.DisplayName = displayName.String

	return profile, nil
}
