package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// SendMessageInput defines the data required to send a message to a store.
// The conversation is created on first contact.
type SendMessageInput struct {
	StoreID uuid.UUID
	Body    string
}

// ReplyMessageInput defines the data a store owner sends into an existing conversation.
type ReplyMessageInput struct {
	ConversationID uuid.UUID
	Body           string
}

// ConversationOutput pairs a conversation with its unread count for the viewer.
type ConversationOutput struct {
	Conversation *entity.Conversation
	Messages     []*entity.Message
}

// MessageUsecase defines the interface for store/user messaging operations.
type MessageUsecase interface {
	// SendMessage delivers a user's message to a store, creating the
	// conversation on first contact.
	SendMessage(ctx context.Context, userID uuid.UUID, input SendMessageInput) (*entity.Message, error)

	// ReplyAsStore delivers a store owner's reply into an existing conversation.
	ReplyAsStore(ctx context.Context, ownerID uuid.UUID, input ReplyMessageInput) (*entity.Message, error)

	// ListConversations returns the conversations the user participates in as a customer.
	ListConversations(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error)

	// ListStoreConversations returns a store's conversations, restricted to its owner.
	ListStoreConversations(ctx context.Context, ownerID, storeID uuid.UUID) ([]*entity.Conversation, error)

	// GetConversation returns a conversation and its messages, marking the
	// viewer's unread messages as read. Only participants may view.
	GetConversation(ctx context.Context, viewerID, conversationID uuid.UUID, limit, offset int) (*ConversationOutput, error)
}
