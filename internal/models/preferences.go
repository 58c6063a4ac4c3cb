package models

import "time"

// Preferences is a user's email notification settings: one global switch and
// one switch per notification type. Rows are created by the platform when a
// user signs up, so a missing row is an error, not a default.
type Preferences struct {
	UserID               string    `json:"user_id" db:"user_id"`
	EmailEnabled         bool      `json:"email_enabled" db:"email_enabled"`
	DonationReceived     bool      `json:"donation_received" db:"donation_received"`
	DonationRefunded     bool      `json:"donation_refunded" db:"donation_refunded"`
	CampaignApproved     bool      `json:"campaign_approved" db:"campaign_approved"`
	CampaignRejected     bool      `json:"campaign_rejected" db:"campaign_rejected"`
	CampaignGoalReached  bool      `json:"campaign_goal_reached" db:"campaign_goal_reached"`
	CampaignEndingSoon   bool      `json:"campaign_ending_soon" db:"campaign_ending_soon"`
	CampaignUpdatePosted bool      `json:"campaign_update_posted" db:"campaign_update_posted"`
	MilestoneSubmitted   bool      `json:"milestone_submitted" db:"milestone_submitted"`
	MilestoneVerified    bool      `json:"milestone_verified" db:"milestone_verified"`
	MilestoneRejected    bool      `json:"milestone_rejected" db:"milestone_rejected"`
	PayoutInitiated      bool      `json:"payout_initiated" db:"payout_initiated"`
	PayoutCompleted      bool      `json:"payout_completed" db:"payout_completed"`
	ReviewUpdate         bool      `json:"review_update" db:"review_update"`
	CommentReceived      bool      `json:"comment_received" db:"comment_received"`
	UpdatedAt            time.Time `json:"updated_at" db:"updated_at"`
}

// CategoryEnabled reports whether the per-type switch for the given category
// is on. Both review outcomes share the single review_update switch.
// Categories without a switch are always deliverable.
func (p *Preferences) CategoryEnabled(category Category) bool {
	switch category {
	case CategoryDonationReceived:
		return p.DonationReceived
	case CategoryDonationRefunded:
		return p.DonationRefunded
	case CategoryCampaignApproved:
		return p.CampaignApproved
	case CategoryCampaignRejected:
		return p.CampaignRejected
	case CategoryCampaignGoalReached:
		return p.CampaignGoalReached
	case CategoryCampaignEndingSoon:
		return p.CampaignEndingSoon
	case CategoryCampaignUpdatePosted:
		return p.CampaignUpdatePosted
	case CategoryMilestoneSubmitted:
		return p.MilestoneSubmitted
	case CategoryMilestoneVerified:
		return p.MilestoneVerified
	case CategoryMilestoneRejected:
		return p.MilestoneRejected
	case CategoryPayoutInitiated:
		return p.PayoutInitiated
	case CategoryPayoutCompleted:
		return p.PayoutCompleted
	case CategoryReviewApproved, CategoryReviewRejected:
		return p.ReviewUpdate
	case CategoryCommentReceived:
		return p.CommentReceived
	default:
		return true
	}
}
