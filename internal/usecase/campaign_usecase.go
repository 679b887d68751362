package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCampaignInput defines the data required to create a draft campaign.
type CreateCampaignInput struct {
	StoreID          uuid.UUID
	Title            string
	Description      string
	Budget           float64
	Currency         string
	Type             entity.CampaignType
	ProductID        *uuid.UUID
	TypeSpecificData map[string]any
}

// UpdateCampaignInput defines the mutable fields of a draft campaign.
type UpdateCampaignInput struct {
	Title            *string
	Description      *string
	Budget           *float64
	Currency         *string
	Type             *entity.CampaignType
	ProductID        *uuid.UUID
	TypeSpecificData map[string]any
}

// ListCampaignsInput narrows down campaign listings.
type ListCampaignsInput struct {
	StoreID *uuid.UUID
	Status  *entity.CampaignStatus
	Type    *entity.CampaignType
	Limit   int
	Offset  int
}

// CampaignListOutput bundles a page of campaigns with the total match count.
type CampaignListOutput struct {
	Campaigns []*entity.Campaign
	Total     int64
}

// ApplyToCampaignInput defines the data an influencer submits when applying.
type ApplyToCampaignInput struct {
	CampaignID uuid.UUID
	Message    string
}

// CampaignUsecase defines the interface for campaign lifecycle operations.
// Store-side mutations are restricted to the campaign's store owner;
// applications are restricted to approved influencers.
type CampaignUsecase interface {
	CreateCampaign(ctx context.Context, ownerID uuid.UUID, input CreateCampaignInput) (*entity.Campaign, error)
	GetCampaign(ctx context.Context, campaignID uuid.UUID) (*entity.Campaign, error)
	ListCampaigns(ctx context.Context, input ListCampaignsInput) (*CampaignListOutput, error)
	UpdateCampaign(ctx context.Context, ownerID, campaignID uuid.UUID, input UpdateCampaignInput) (*entity.Campaign, error)
	PublishCampaign(ctx context.Context, ownerID, campaignID uuid.UUID) (*entity.Campaign, error)
	DeleteCampaign(ctx context.Context, ownerID, campaignID uuid.UUID) error

	ApplyToCampaign(ctx context.Context, userID uuid.UUID, input ApplyToCampaignInput) (*entity.CampaignApplication, error)
	ListApplications(ctx context.Context, ownerID, campaignID uuid.UUID) ([]*entity.CampaignApplication, error)
	ListOwnApplications(ctx context.Context, userID uuid.UUID) ([]*entity.CampaignApplication, error)
	SelectInfluencer(ctx context.Context, ownerID, campaignID, applicationID uuid.UUID) (*entity.CampaignApplication, error)
}
