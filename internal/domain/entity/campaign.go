// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CampaignStatus represents the lifecycle state of a campaign.
type CampaignStatus string

const (
	// CampaignStatusDraft indicates a campaign still editable by the brand.
	CampaignStatusDraft CampaignStatus = "DRAFT"
	// CampaignStatusPublished indicates a campaign open for influencer applications.
	CampaignStatusPublished CampaignStatus = "PUBLISHED"
)

// CampaignType determines the shape of a campaign's type-specific data blob.
type CampaignType string

const (
	// CampaignTypeProduct promotes a concrete product of the store.
	CampaignTypeProduct CampaignType = "PRODUCT"
	// CampaignTypeDiscount promotes a discount code.
	CampaignTypeDiscount CampaignType = "DISCOUNT"
	// CampaignTypeProfile promotes the store profile itself.
	CampaignTypeProfile CampaignType = "PROFILE"
)

// IsValid checks if the CampaignType is a valid value.
func (t CampaignType) IsValid() bool {
	switch t {
	case CampaignTypeProduct, CampaignTypeDiscount, CampaignTypeProfile:
		return true
	default:
		return false
	}
}

// Campaign is an influencer-marketing engagement created by a store.
// Only DRAFT campaigns may be edited, deleted or published.
type Campaign struct {
	ID               uuid.UUID      `json:"id"`                 // The Global Unique Identifier (GUID) for the campaign.
	StoreID          uuid.UUID      `json:"store_id"`           // The ID of the brand store running this campaign.
	Title            string         `json:"title"`              // The campaign title; required for publishing.
	Description      string         `json:"description"`        // Long-form campaign brief.
	Budget           float64        `json:"budget"`             // The campaign budget; must be positive for publishing.
	Currency         string         `json:"currency"`           // ISO 4217 currency code.
	Status           CampaignStatus `json:"status"`             // DRAFT or PUBLISHED.
	Type             CampaignType   `json:"type"`               // PRODUCT, DISCOUNT or PROFILE.
	ProductID        *uuid.UUID     `json:"product_id"`         // For PRODUCT campaigns, the promoted product; must belong to the store.
	TypeSpecificData map[string]any `json:"type_specific_data"` // Loosely-typed per-type payload, merged shallowly on update.
	PublishedAt      *time.Time     `json:"published_at"`       // Timestamp of publishing; nil while DRAFT.
	CreatedAt        time.Time      `json:"created_at"`         // Timestamp of when this campaign was created.
	UpdatedAt        time.Time      `json:"updated_at"`         // Timestamp of the last modification.
}

// ApplicationStatus is the state of one influencer's application to a campaign.
type ApplicationStatus string

const (
	// ApplicationStatusApplied indicates a pending application.
	ApplicationStatusApplied ApplicationStatus = "APPLIED"
	// ApplicationStatusSelected indicates the brand selected this influencer.
	ApplicationStatusSelected ApplicationStatus = "SELECTED"
)

// CampaignApplication records one influencer's application to one campaign.
// At most one application exists per (CampaignID, InfluencerID) pair.
type CampaignApplication struct {
	ID           uuid.UUID         `json:"id"`
	CampaignID   uuid.UUID         `json:"campaign_id"`
	InfluencerID uuid.UUID         `json:"influencer_id"`
	Status       ApplicationStatus `json:"status"`
	Message      string            `json:"message"` // Optional pitch the influencer attaches when applying.
	AppliedAt    time.Time         `json:"applied_at"`
	SelectedAt   *time.Time        `json:"selected_at"`
}
