package model

import (
	"time"

	"github.com/google/uuid"
)

// InfluencerModel mirrors the 'influencers' table. One profile per user.
type InfluencerModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;unique"`
	DisplayName string    `gorm:"type:varchar(100);not null"`
	Bio         string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time `gorm:"index"`

	SocialAccounts []SocialAccountModel `gorm:"foreignKey:InfluencerID"`
}

// TableName explicitly sets the table name for GORM.
func (InfluencerModel) TableName() string {
	return "influencers"
}

// SocialAccountModel mirrors the 'influencer_social_accounts' table.
type SocialAccountModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	InfluencerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Platform      string    `gorm:"type:varchar(50);not null"`
	Handle        string    `gorm:"type:varchar(100);not null"`
	URL           string    `gorm:"type:varchar(500)"`
	FollowerCount int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (SocialAccountModel) TableName() string {
	return "influencer_social_accounts"
}
