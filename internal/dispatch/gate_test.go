package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/givecircle/dispatch-api/internal/models"
)

func allEnabledPreferences() models.Preferences {
	return models.Preferences{
		UserID:               "user-1",
		EmailEnabled:         true,
		DonationReceived:     true,
		DonationRefunded:     true,
		CampaignApproved:     true,
		CampaignRejected:     true,
		CampaignGoalReached:  true,
		CampaignEndingSoon:   true,
		CampaignUpdatePosted: true,
		MilestoneSubmitted:   true,
		MilestoneVerified:    true,
		MilestoneRejected:    true,
		PayoutInitiated:      true,
		PayoutCompleted:      true,
		ReviewUpdate:         true,
		CommentReceived:      true,
	}
}

func TestEvaluateGate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(p *models.Preferences)
		category models.Category
		allowed  bool
		reason   string
	}{
		{
			name:     "all switches on",
			category: models.CategoryDonationReceived,
			allowed:  true,
		},
		{
			name:     "global switch off",
			mutate:   func(p *models.Preferences) { p.EmailEnabled = false },
			category: models.CategoryDonationReceived,
			reason:   ReasonEmailDisabled,
		},
		{
			name: "global switch off reported before type switch",
			mutate: func(p *models.Preferences) {
				p.EmailEnabled = false
				p.CommentReceived = false
			},
			category: models.CategoryCommentReceived,
			reason:   ReasonEmailDisabled,
		},
		{
			name:     "type switch off",
			mutate:   func(p *models.Preferences) { p.PayoutCompleted = false },
			category: models.CategoryPayoutCompleted,
			reason:   ReasonTypeDisabled,
		},
		{
			name:     "review approved gated by review_update",
			mutate:   func(p *models.Preferences) { p.ReviewUpdate = false },
			category: models.CategoryReviewApproved,
			reason:   ReasonTypeDisabled,
		},
		{
			name:     "review rejected gated by review_update",
			mutate:   func(p *models.Preferences) { p.ReviewUpdate = false },
			category: models.CategoryReviewRejected,
			reason:   ReasonTypeDisabled,
		},
		{
			name:     "unmapped category is deliverable",
			category: models.Category("account_created"),
			allowed:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := allEnabledPreferences()
			if tt.mutate != nil {
				tt.mutate(&prefs)
			}

			decision := EvaluateGate(prefs, tt.category)

			assert.Equal(t, tt.allowed, decision.Allowed)
			assert.Equal(t, tt.reason, decision.Reason)
		})
	}
}
