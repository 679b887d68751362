// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SenderType identifies which side of a conversation authored a message.
type SenderType string

const (
	// SenderTypeUser marks a message written by the customer.
	SenderTypeUser SenderType = "USER"
	// SenderTypeStore marks a message written on behalf of the store.
	SenderTypeStore SenderType = "STORE"
)

// Opposite returns the other side of the conversation.
func (s SenderType) Opposite() SenderType {
	if s == SenderTypeUser {
		return SenderTypeStore
	}

	return SenderTypeUser
}

// Conversation is a persistent messaging thread between one user and one store,
// unique on the (StoreID, UserID) pair.
type Conversation struct {
	ID            uuid.UUID  `json:"id"`
	StoreID       uuid.UUID  `json:"store_id"`
	UserID        uuid.UUID  `json:"user_id"`
	LastMessage   string     `json:"last_message"`    // Denormalized preview of the newest message.
	LastMessageAt *time.Time `json:"last_message_at"` // Denormalized timestamp of the newest message.
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Message is a single message inside a conversation.
type Message struct {
	ID             uuid.UUID  `json:"id"`
	ConversationID uuid.UUID  `json:"conversation_id"`
	SenderType     SenderType `json:"sender_type"`
	Body           string     `json:"body"`
	IsRead         bool       `json:"is_read"`
	CreatedAt      time.Time  `json:"created_at"`
}
