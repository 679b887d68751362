package model

import (
	"time"

	"github.com/google/uuid"
)

// ConversationModel mirrors the 'conversations' table. One conversation per store/user pair.
type ConversationModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_conversations_store_user"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_conversations_store_user"`
	LastMessage   string    `gorm:"type:text"`
	LastMessageAt *time.Time `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Messages []MessageModel `gorm:"foreignKey:ConversationID"`
}

// TableName explicitly sets the table name for GORM.
func (ConversationModel) TableName() string {
	return "conversations"
}

// MessageModel mirrors the 'messages' table.
type MessageModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ConversationID uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderType     string    `gorm:"type:varchar(20);not null"`
	Body           string    `gorm:"type:text;not null"`
	IsRead         bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
