// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// InfluencerStatus is the review state of an influencer profile.
type InfluencerStatus string

const (
	// InfluencerStatusPending indicates a profile awaiting approval.
	InfluencerStatusPending InfluencerStatus = "PENDING"
	// InfluencerStatusApproved indicates a profile allowed to apply to campaigns.
	InfluencerStatusApproved InfluencerStatus = "APPROVED"
)

// Influencer is the content-creator profile of a user.
type Influencer struct {
	ID             uuid.UUID        `json:"id"`              // The Global Unique Identifier (GUID) for the influencer profile.
	UserID         uuid.UUID        `json:"user_id"`         // The user this profile belongs to; one profile per user.
	DisplayName    string           `json:"display_name"`    // Public creator name.
	Bio            string           `json:"bio"`             // Short self-description.
	Status         InfluencerStatus `json:"status"`          // PENDING until approved.
	SocialAccounts []SocialAccount  `json:"social_accounts"` // Linked social media accounts.
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// SocialAccount is one linked social media presence of an influencer.
type SocialAccount struct {
	ID            uuid.UUID `json:"id"`
	InfluencerID  uuid.UUID `json:"influencer_id"`
	Platform      string    `json:"platform"` // e.g. "instagram", "tiktok", "youtube".
	Handle        string    `json:"handle"`
	URL           string    `json:"url"`
	FollowerCount int       `json:"follower_count"`
}
