package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreModel mirrors the 'stores' table. OwnerID references users.id (UUID).
type StoreModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	Category    string    `gorm:"type:varchar(50);index"`
	LogoURL     string    `gorm:"type:varchar(500)"`
	CoverURL    string    `gorm:"type:varchar(500)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time `gorm:"index"`

	Products  []ProductModel     `gorm:"foreignKey:StoreID"`
	Campaigns []CampaignModel    `gorm:"foreignKey:StoreID"`
	Reviews   []StoreReviewModel `gorm:"foreignKey:StoreID"`
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
