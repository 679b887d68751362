package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreReviewModel mirrors the 'store_reviews' table.
// The composite unique index enforces one review per user per store.
type StoreReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_store_user"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_store_user"`
	Rating    int       `gorm:"not null"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreReviewModel) TableName() string {
	return "store_reviews"
}
