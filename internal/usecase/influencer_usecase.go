package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// SocialAccountInput defines a single social media account of an influencer.
type SocialAccountInput struct {
	Platform      string
	Handle        string
	URL           string
	FollowerCount int
}

// RegisterInfluencerInput defines the data required to register an influencer profile.
type RegisterInfluencerInput struct {
	DisplayName    string
	Bio            string
	SocialAccounts []SocialAccountInput
}

// UpdateInfluencerInput defines the mutable fields of an influencer profile.
// Replacing social accounts resets the profile to pending review.
type UpdateInfluencerInput struct {
	DisplayName    *string
	Bio            *string
	SocialAccounts []SocialAccountInput
}

// ListInfluencersInput narrows down influencer listings.
type ListInfluencersInput struct {
	Status *entity.InfluencerStatus
	Limit  int
	Offset int
}

// InfluencerListOutput bundles a page of influencers with the total match count.
type InfluencerListOutput struct {
	Influencers []*entity.Influencer
	Total       int64
}

// InfluencerUsecase defines the interface for influencer profile operations.
type InfluencerUsecase interface {
	RegisterInfluencer(ctx context.Context, userID uuid.UUID, input RegisterInfluencerInput) (*entity.Influencer, error)
	GetInfluencer(ctx context.Context, influencerID uuid.UUID) (*entity.Influencer, error)
	GetOwnProfile(ctx context.Context, userID uuid.UUID) (*entity.Influencer, error)
	ListInfluencers(ctx context.Context, input ListInfluencersInput) (*InfluencerListOutput, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateInfluencerInput) (*entity.Influencer, error)

	// ApproveInfluencer moves a pending profile to approved and grants the
	// influencer role to the underlying user.
	ApproveInfluencer(ctx context.Context, influencerID uuid.UUID) (*entity.Influencer, error)

	// ResetProfile removes the caller's influencer profile, including social
	// accounts, and demotes the user back to a regular role.
	ResetProfile(ctx context.Context, userID uuid.UUID) error
}
