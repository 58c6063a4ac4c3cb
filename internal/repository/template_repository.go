package repository

import (
	"context"
	"database/sql"

	"github.com/givecircle/dispatch-api/internal/models"
)

type TemplateRepository interface {
	GetByCategory(ctx context.Context, category models.Category) (models.EmailTemplate, error)
}

type templateRepository struct {
	db *sql.DB
}

func NewTemplateRepository(db *sql.DB) TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) GetByCategory(ctx context.Context, category models.Category) (models.EmailTemplate, error) {
	const query = `
		SELECT id, category, subject, html_body, text_body, updated_at
		FROM email_templates
		WHERE category = $1
	`

	var tmpl models.EmailTemplate
	err := r.db.QueryRowContext(ctx, query, category).Scan(
		&tmpl.ID,
		&tmpl.Category,
		&tmpl.Subject,
		&tmpl.HTMLBody,
		&tmpl.TextBody,
		&tmpl.UpdatedAt,
	)
	if err != nil {
		return models.EmailTemplate{}, err
	}

	return tmpl, nil
}
