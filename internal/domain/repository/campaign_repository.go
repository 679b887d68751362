// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for campaign persistence.
var (
	// ErrCampaignNotFound is returned when a campaign is not found.
	ErrCampaignNotFound = errors.New("campaign not found")
	// ErrApplicationNotFound is returned when a campaign application is not found.
	ErrApplicationNotFound = errors.New("campaign application not found")
	// ErrDuplicateApplication is returned when an influencer has already applied to a campaign.
	ErrDuplicateApplication = errors.New("influencer already applied to campaign")
)

// CampaignListFilter narrows down campaign listing queries.
type CampaignListFilter struct {
	StoreID *uuid.UUID
	Status  *entity.CampaignStatus
	Type    *entity.CampaignType
	Limit   int
	Offset  int
}

// CampaignRepository defines the standard operations for campaign and application persistence.
type CampaignRepository interface {
	// Create persists a new campaign entity to the storage.
	Create(ctx context.Context, campaign *entity.Campaign) error

	// FindByID retrieves a single campaign by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error)

	// List retrieves campaigns matching the given filter, newest first.
	List(ctx context.Context, filter CampaignListFilter) ([]*entity.Campaign, int64, error)

	// Update modifies an existing campaign entity in the storage.
	Update(ctx context.Context, campaign *entity.Campaign) error

	// Delete removes a campaign and its applications.
	Delete(ctx context.Context, id uuid.UUID) error

	// CreateApplication persists a new campaign application.
	// Returns ErrDuplicateApplication when the influencer already applied.
	CreateApplication(ctx context.Context, application *entity.CampaignApplication) error

	// FindApplicationByID retrieves a single application by its unique ID.
	FindApplicationByID(ctx context.Context, id uuid.UUID) (*entity.CampaignApplication, error)

	// FindApplicationsByCampaign retrieves all applications for a campaign, oldest first.
	FindApplicationsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*entity.CampaignApplication, error)

	// FindApplicationsByInfluencer retrieves all applications submitted by an influencer.
	FindApplicationsByInfluencer(ctx context.Context, influencerID uuid.UUID) ([]*entity.CampaignApplication, error)

	// UpdateApplication modifies an existing campaign application.
	UpdateApplication(ctx context.Context, application *entity.CampaignApplication) error
}
