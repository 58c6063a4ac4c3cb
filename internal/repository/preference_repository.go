package repository

import (
	"context"
	"database/sql"

	"github.com/givecircle/dispatch-api/internal/models"
)

type PreferenceRepository interface {
	GetByUserID(ctx context.Context, userID string) (models.Preferences, error)
}

type preferenceRepository struct {
	db *sql.DB
}

func NewPreferenceRepository(db *sql.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) GetByUserID(ctx context.Context, userID string) (models.Preferences, error) {
	const query = `
		SELECT user_id, email_enabled,
			donation_received, donation_refunded,
			campaign_approved, campaign_rejected, campaign_goal_reached,
			campaign_ending_soon, campaign_update_posted,
			milestone_submitted, milestone_verified, milestone_rejected,
			payout_initiated, payout_completed,
			review_update, comment_received,
			updated_at
		FROM notification_preferences
		WHERE user_id = $1
	`

	var prefs models.Preferences
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&prefs.UserID,
		&prefs.EmailEnabled,
		&prefs.DonationReceived,
		&prefs.DonationRefunded,
		&prefs.CampaignApproved,
		&prefs.CampaignRejected,
		&prefs.CampaignGoalReached,
		&prefs.CampaignEndingSoon,
		&prefs.CampaignUpdatePosted,
		&prefs.MilestoneSubmitted,
		&prefs.MilestoneVerified,
		&prefs.MilestoneRejected,
		&prefs.PayoutInitiated,
		&prefs.PayoutCompleted,
		&prefs.ReviewUpdate,
		&prefs.CommentReceived,
		&prefs.UpdatedAt,
	)
	if err != nil {
		return models.Preferences{}, err
	}

	return prefs, nil
}
