// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for messaging persistence.
var (
	// ErrConversationNotFound is returned when a conversation is not found.
	ErrConversationNotFound = errors.New("conversation not found")
	// ErrConversationExists is returned when the store/user pair already has a
	// conversation, e.g. when two first messages race.
	ErrConversationExists = errors.New("conversation already exists")
)

// ConversationRepository defines the standard operations for messaging persistence.
type ConversationRepository interface {
	// Create persists a new conversation between a user and a store.
	Create(ctx context.Context, conversation *entity.Conversation) error

	// FindByID retrieves a single conversation by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error)

	// FindByStoreAndUser retrieves the conversation for a store/user pair, if any.
	FindByStoreAndUser(ctx context.Context, storeID, userID uuid.UUID) (*entity.Conversation, error)

	// FindByUserID retrieves all conversations the user participates in, most recent first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error)

	// FindByStoreID retrieves all conversations for a store, most recent first.
	FindByStoreID(ctx context.Context, storeID uuid.UUID) ([]*entity.Conversation, error)

	// Update modifies an existing conversation, e.g. its last-message snapshot.
	Update(ctx context.Context, conversation *entity.Conversation) error

	// CreateMessage persists a new message within a conversation.
	CreateMessage(ctx context.Context, message *entity.Message) error

	// FindMessages retrieves messages of a conversation, oldest first.
	FindMessages(ctx context.Context, conversationID uuid.UUID, limit, offset int) ([]*entity.Message, error)

	// MarkMessagesRead marks as read all messages in a conversation not sent by the given side.
	MarkMessagesRead(ctx context.Context, conversationID uuid.UUID, reader entity.SenderType) error
}
