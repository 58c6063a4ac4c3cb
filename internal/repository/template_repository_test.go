package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/givecircle/dispatch-api/internal/models"
)

func TestTemplateRepository_GetByCategory(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	updated := time.Date(2025, 2, 20, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "category", "subject", "html_body", "text_body", "updated_at"}).
		AddRow("tmpl-1", "donation_received", "You received {{amount}}",
			"<p>Hi {{donorName}}</p>", "Hi {{donorName}}", updated)
	mock.ExpectQuery(`SELECT id, category, subject, html_body, text_body, updated_at FROM email_templates WHERE category = \$1`).
		WithArgs("donation_received").
		WillReturnRows(rows)

	repo := NewTemplateRepository(db)
	tmpl, err := repo.GetByCategory(context.Background(), models.CategoryDonationReceived)

	require.NoError(t, err)
	assert.Equal(t, "tmpl-1", tmpl.ID)
	assert.Equal(t, models.CategoryDonationReceived, tmpl.Category)
	assert.Equal(t, "You received {{amount}}", tmpl.Subject)
	assert.Equal(t, "<p>Hi {{donorName}}</p>", tmpl.HTMLBody)
	assert.Equal(t, "Hi {{donorName}}", tmpl.TextBody)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTemplateRepository_GetByCategory_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, category, subject, html_body, text_body, updated_at FROM email_templates WHERE category = \$1`).
		WithArgs("campaign_update_posted").
		WillReturnError(sql.ErrNoRows)

	repo := NewTemplateRepository(db)
	_, err = repo.GetByCategory(context.Background(), models.CategoryCampaignUpdatePosted)

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
