package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CampaignModel mirrors the 'campaigns' table. TypeSpecificData keeps the
// per-type payload as a JSONB column.
type CampaignModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Title            string    `gorm:"type:varchar(200)"`
	Description      string    `gorm:"type:text"`
	Budget           float64   `gorm:"type:numeric(12,2);not null;default:0"`
	Currency         string    `gorm:"type:varchar(3);not null;default:'TWD'"`
	Status           string    `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	Type             string    `gorm:"type:varchar(20);not null"`
	ProductID        *uuid.UUID `gorm:"type:uuid;index"`
	TypeSpecificData datatypes.JSON `gorm:"type:jsonb"`
	PublishedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time `gorm:"index"`

	Applications []CampaignApplicationModel `gorm:"foreignKey:CampaignID"`
}

// TableName explicitly sets the table name for GORM.
func (CampaignModel) TableName() string {
	return "campaigns"
}

// CampaignApplicationModel mirrors the 'campaign_applications' table.
// The composite unique index enforces one application per influencer per campaign.
type CampaignApplicationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CampaignID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_campaign_influencer"`
	InfluencerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_campaign_influencer"`
	Status       string    `gorm:"type:varchar(20);not null;default:'APPLIED'"`
	Message      string    `gorm:"type:text"`
	AppliedAt    time.Time `gorm:"not null"`
	SelectedAt   *time.Time
}

// TableName explicitly sets the table name for GORM.
func (CampaignApplicationModel) TableName() string {
	return "campaign_applications"
}
