// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// conversationRepository implements the repository.ConversationRepository interface using GORM.
type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository is the constructor for conversationRepository.
func NewConversationRepository(db *gorm.DB) repository.ConversationRepository {
	return &conversationRepository{
		db: db,
	}
}

// Create persists a new conversation between a user and a store.
func (repo *conversationRepository) Create(ctx context.Context, conversation *entity.Conversation) error {
	conversationM := fromConversationDomain(conversation)

	if err := repo.db.WithContext(ctx).Create(conversationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrConversationExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrStoreNotFound.WrapMessage("invalid store or user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create conversation")
	}

	conversation.ID = conversationM.ID
	conversation.CreatedAt = conversationM.CreatedAt
	conversation.UpdatedAt = conversationM.UpdatedAt

	return nil
}

// FindByID retrieves a single conversation by its unique ID.
func (repo *conversationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	var conversationM model.ConversationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&conversationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation by id")
	}

	return toConversationDomain(&conversationM), nil
}

// FindByStoreAndUser retrieves the conversation for a store/user pair, if any.
func (repo *conversationRepository) FindByStoreAndUser(ctx context.Context, storeID, userID uuid.UUID) (*entity.Conversation, error) {
	var conversationM model.ConversationModel

	if err := repo.db.WithContext(ctx).
		Where("store_id = ? AND user_id = ?", storeID, userID).
		First(&conversationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation by store and user")
	}

	return toConversationDomain(&conversationM), nil
}

// FindByUserID retrieves all conversations the user participates in, most recent first.
func (repo *conversationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error) {
	var conversationModels []*model.ConversationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("last_message_at DESC NULLS LAST").
		Find(&conversationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find conversations by user")
	}

	conversations := make([]*entity.Conversation, 0, len(conversationModels))
	for _, conversationM := range conversationModels {
		conversations = append(conversations, toConversationDomain(conversationM))
	}

	return conversations, nil
}

// FindByStoreID retrieves all conversations for a store, most recent first.
func (repo *conversationRepository) FindByStoreID(ctx context.Context, storeID uuid.UUID) ([]*entity.Conversation, error) {
	var conversationModels []*model.ConversationModel

	if err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("last_message_at DESC NULLS LAST").
		Find(&conversationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find conversations by store")
	}

	conversations := make([]*entity.Conversation, 0, len(conversationModels))
	for _, conversationM := range conversationModels {
		conversations = append(conversations, toConversationDomain(conversationM))
	}

	return conversations, nil
}

// Update modifies an existing conversation, e.g. its last-message snapshot.
func (repo *conversationRepository) Update(ctx context.Context, conversation *entity.Conversation) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ConversationModel{}).
		Where("id = ?", conversation.ID).
		Updates(map[string]any{
			"last_message":    conversation.LastMessage,
			"last_message_at": conversation.LastMessageAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update conversation")
	}
	if result.RowsAffected == 0 {
		return repository.ErrConversationNotFound
	}

	return nil
}

// CreateMessage persists a new message within a conversation.
func (repo *conversationRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrConversationNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// FindMessages retrieves messages of a conversation, oldest first.
func (repo *conversationRepository) FindMessages(ctx context.Context, conversationID uuid.UUID, limit, offset int) ([]*entity.Message, error) {
	query := repo.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var messageModels []*model.MessageModel
	if err := query.Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find messages")
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toMessageDomain(messageM))
	}

	return messages, nil
}

// MarkMessagesRead marks as read all messages in a conversation not sent by the given side.
func (repo *conversationRepository) MarkMessagesRead(ctx context.Context, conversationID uuid.UUID, reader entity.SenderType) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("conversation_id = ? AND sender_type = ? AND is_read = false", conversationID, string(reader.Opposite())).
		Update("is_read", true).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark messages read")
	}

	return nil
}

// toConversationDomain maps a persistence model back to a pure domain entity.
func toConversationDomain(m *model.ConversationModel) *entity.Conversation {
	return &entity.Conversation{
		ID:            m.ID,
		StoreID:       m.StoreID,
		UserID:        m.UserID,
		LastMessage:   m.LastMessage,
		LastMessageAt: m.LastMessageAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// fromConversationDomain maps a pure domain entity to a GORM persistence model.
func fromConversationDomain(conversation *entity.Conversation) *model.ConversationModel {
	return &model.ConversationModel{
		ID:            conversation.ID,
		StoreID:       conversation.StoreID,
		UserID:        conversation.UserID,
		LastMessage:   conversation.LastMessage,
		LastMessageAt: conversation.LastMessageAt,
		CreatedAt:     conversation.CreatedAt,
		UpdatedAt:     conversation.UpdatedAt,
	}
}

// toMessageDomain maps a persistence model back to a pure domain entity.
func toMessageDomain(m *model.MessageModel) *entity.Message {
	return &entity.Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderType:     entity.SenderType(m.SenderType),
		Body:           m.Body,
		IsRead:         m.IsRead,
		CreatedAt:      m.CreatedAt,
	}
}

// fromMessageDomain maps a pure domain entity to a GORM persistence model.
func fromMessageDomain(message *entity.Message) *model.MessageModel {
	return &model.MessageModel{
		ID:             message.ID,
		ConversationID: message.ConversationID,
		SenderType:     string(message.SenderType),
		Body:           message.Body,
		IsRead:         message.IsRead,
		CreatedAt:      message.CreatedAt,
	}
}
