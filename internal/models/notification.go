package models

import (
	"encoding/json"
	"time"
)

type Category string

const (
	CategoryDonationReceived     Category = "donation_received"
	CategoryDonationRefunded     Category = "donation_refunded"
	CategoryCampaignApproved     Category = "campaign_approved"
	CategoryCampaignRejected     Category = "campaign_rejected"
	CategoryCampaignGoalReached  Category = "campaign_goal_reached"
	CategoryCampaignEndingSoon   Category = "campaign_ending_soon"
	CategoryCampaignUpdatePosted Category = "campaign_update_posted"
	CategoryMilestoneSubmitted   Category = "milestone_submitted"
	CategoryMilestoneVerified    Category = "milestone_verified"
	CategoryMilestoneRejected    Category = "milestone_rejected"
	CategoryPayoutInitiated      Category = "payout_initiated"
	CategoryPayoutCompleted      Category = "payout_completed"
	CategoryReviewApproved       Category = "review_approved"
	CategoryReviewRejected       Category = "review_rejected"
	CategoryCommentReceived      Category = "comment_received"
)

type Notification struct {
	ID        string          `json:"id" db:"id"`
	UserID    string          `json:"user_id" db:"user_id"`
	Category  Category        `json:"category" db:"category"`
	Title     string          `json:"title" db:"title"`
	Message   string          `json:"message" db:"message"`
	Metadata  json.RawMessage `json:"metadata,omitempty" db:"metadata"`
	Emailed   bool            `json:"emailed" db:"emailed"`
	EmailedAt *time.Time      `json:"emailed_at,omitempty" db:"emailed_at"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

// MetadataMap decodes the stored metadata object. A missing or invalid
// payload yields an empty map rather than an error.
func (n *Notification) MetadataMap() map[string]interface{} {
	if len(n.Metadata) == 0 {
		return map[string]interface{}{}
	}
	var values map[string]interface{}
	if err := json.Unmarshal(n.Metadata, &values); err != nil {
		return map[string]interface{}{}
	}
	return values
}
