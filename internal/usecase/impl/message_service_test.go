package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// messageServiceFixtures holds all test dependencies for message service tests.
type messageServiceFixtures struct {
	service          usecase.MessageUsecase
	txManager        *mockRepo.MockTransactionManager
	conversationRepo *mockRepo.MockConversationRepository
	storeRepo        *mockRepo.MockStoreRepository
	userRepo         *mockRepo.MockUserRepository
	pushService      *mockSvc.MockPushService
}

func createTestMessageService(t *testing.T) messageServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	conversationRepo := mockRepo.NewMockConversationRepository(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	pushService := mockSvc.NewMockPushService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewMessageService(txManager, conversationRepo, storeRepo, userRepo, pushService, logger)

	return messageServiceFixtures{
		service:          service,
		txManager:        txManager,
		conversationRepo: conversationRepo,
		storeRepo:        storeRepo,
		userRepo:         userRepo,
		pushService:      pushService,
	}
}

func TestMessageService_SendMessage_CreatesConversationOnFirstContact(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	userID := uuid.New()
	ownerID := uuid.New()
	storeID := uuid.New()

	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConversationRepo := mockRepo.NewMockConversationRepository(t)
			mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)

			mockFactory.EXPECT().NewConversationRepository().Return(mockConversationRepo)
			mockFactory.EXPECT().NewNotificationRepository().Return(mockNotificationRepo)

			mockConversationRepo.EXPECT().
				FindByStoreAndUser(ctx, storeID, userID).
				Return(nil, repository.ErrConversationNotFound)

			mockConversationRepo.EXPECT().
				Create(ctx, mock.MatchedBy(func(conversation *entity.Conversation) bool {
					return conversation.StoreID == storeID && conversation.UserID == userID
				})).
				Run(func(ctx context.Context, conversation *entity.Conversation) {
					conversation.ID = uuid.New()
				}).
				Return(nil)

			mockConversationRepo.EXPECT().
				CreateMessage(ctx, mock.MatchedBy(func(message *entity.Message) bool {
					return message.SenderType == entity.SenderTypeUser && message.Body == "Hello"
				})).
				Return(nil)

			mockConversationRepo.EXPECT().
				Update(ctx, mock.MatchedBy(func(conversation *entity.Conversation) bool {
					return conversation.LastMessage == "Hello" && conversation.LastMessageAt != nil
				})).
				Return(nil)

			mockNotificationRepo.EXPECT().
				Create(ctx, mock.MatchedBy(func(notification *entity.Notification) bool {
					return notification.UserID == ownerID && notification.Type == entity.NotificationTypeMessage
				})).
				Return(nil)

			return fn(mockFactory)
		})

	fx.userRepo.EXPECT().
		FindByID(ctx, ownerID).
		Return(&entity.User{ID: ownerID, FCMToken: "owner-token"}, nil)
	fx.pushService.EXPECT().
		SendPush(ctx, "owner-token", mock.Anything, "Hello", mock.Anything).
		Return(nil)

	message, err := fx.service.SendMessage(ctx, userID, usecase.SendMessageInput{
		StoreID: storeID,
		Body:    "Hello",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.SenderTypeUser, message.SenderType)
}

func TestMessageService_SendMessage_AdoptsConversationWonByConcurrentSender(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	userID := uuid.New()
	ownerID := uuid.New()
	storeID := uuid.New()
	conversationID := uuid.New()

	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConversationRepo := mockRepo.NewMockConversationRepository(t)
			mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)

			mockFactory.EXPECT().NewConversationRepository().Return(mockConversationRepo)
			mockFactory.EXPECT().NewNotificationRepository().Return(mockNotificationRepo)

			// The first lookup misses, the insert loses the unique-index race,
			// and the second lookup adopts the winner's conversation.
			mockConversationRepo.EXPECT().
				FindByStoreAndUser(ctx, storeID, userID).
				Return(nil, repository.ErrConversationNotFound).
				Once()

			mockConversationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Conversation")).
				Return(repository.ErrConversationExists)

			mockConversationRepo.EXPECT().
				FindByStoreAndUser(ctx, storeID, userID).
				Return(&entity.Conversation{ID: conversationID, StoreID: storeID, UserID: userID}, nil).
				Once()

			mockConversationRepo.EXPECT().
				CreateMessage(ctx, mock.MatchedBy(func(message *entity.Message) bool {
					return message.ConversationID == conversationID
				})).
				Return(nil)

			mockConversationRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Conversation")).
				Return(nil)

			mockNotificationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Notification")).
				Return(nil)

			return fn(mockFactory)
		})

	fx.userRepo.EXPECT().
		FindByID(ctx, ownerID).
		Return(&entity.User{ID: ownerID}, nil)

	message, err := fx.service.SendMessage(ctx, userID, usecase.SendMessageInput{
		StoreID: storeID,
		Body:    "Hello",
	})

	require.NoError(t, err)
	assert.Equal(t, conversationID, message.ConversationID)
}

func TestMessageService_SendMessage_ReusesExistingConversation(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	userID := uuid.New()
	ownerID := uuid.New()
	storeID := uuid.New()
	conversationID := uuid.New()

	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConversationRepo := mockRepo.NewMockConversationRepository(t)
			mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)

			mockFactory.EXPECT().NewConversationRepository().Return(mockConversationRepo)
			mockFactory.EXPECT().NewNotificationRepository().Return(mockNotificationRepo)

			mockConversationRepo.EXPECT().
				FindByStoreAndUser(ctx, storeID, userID).
				Return(&entity.Conversation{ID: conversationID, StoreID: storeID, UserID: userID}, nil)

			mockConversationRepo.EXPECT().
				CreateMessage(ctx, mock.MatchedBy(func(message *entity.Message) bool {
					return message.ConversationID == conversationID
				})).
				Return(nil)

			mockConversationRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Conversation")).
				Return(nil)

			mockNotificationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Notification")).
				Return(nil)

			return fn(mockFactory)
		})

	fx.userRepo.EXPECT().
		FindByID(ctx, ownerID).
		Return(&entity.User{ID: ownerID}, nil)

	message, err := fx.service.SendMessage(ctx, userID, usecase.SendMessageInput{
		StoreID: storeID,
		Body:    "Again",
	})

	require.NoError(t, err)
	assert.Equal(t, conversationID, message.ConversationID)
}

func TestMessageService_SendMessage_OwnStoreRejected(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()

	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil)

	message, err := fx.service.SendMessage(ctx, ownerID, usecase.SendMessageInput{
		StoreID: storeID,
		Body:    "Hi me",
	})

	assert.Error(t, err)
	assert.Nil(t, message)
	assert.True(t, errors.Is(err, domainerrors.ErrSelfConversation))
}

func TestMessageService_ReplyAsStore_NotOwner(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	storeID := uuid.New()
	conversationID := uuid.New()

	fx.conversationRepo.EXPECT().
		FindByID(ctx, conversationID).
		Return(&entity.Conversation{ID: conversationID, StoreID: storeID, UserID: uuid.New()}, nil)
	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: uuid.New()}, nil)

	message, err := fx.service.ReplyAsStore(ctx, uuid.New(), usecase.ReplyMessageInput{
		ConversationID: conversationID,
		Body:           "Thanks for reaching out",
	})

	assert.Error(t, err)
	assert.Nil(t, message)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreOwnershipViolation))
}

func TestMessageService_GetConversation_MarksViewerUnreadRead(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	userID := uuid.New()
	conversationID := uuid.New()
	conversation := &entity.Conversation{ID: conversationID, StoreID: uuid.New(), UserID: userID}
	messages := []*entity.Message{
		{ID: uuid.New(), ConversationID: conversationID, SenderType: entity.SenderTypeStore, Body: "Hi"},
	}

	fx.conversationRepo.EXPECT().FindByID(ctx, conversationID).Return(conversation, nil)
	fx.conversationRepo.EXPECT().FindMessages(ctx, conversationID, 50, 0).Return(messages, nil)
	fx.conversationRepo.EXPECT().
		MarkMessagesRead(ctx, conversationID, entity.SenderTypeUser).
		Return(nil)

	output, err := fx.service.GetConversation(ctx, userID, conversationID, 50, 0)

	require.NoError(t, err)
	assert.Equal(t, conversation, output.Conversation)
	assert.Len(t, output.Messages, 1)
}

func TestMessageService_GetConversation_NonParticipantForbidden(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	storeID := uuid.New()
	conversationID := uuid.New()

	fx.conversationRepo.EXPECT().
		FindByID(ctx, conversationID).
		Return(&entity.Conversation{ID: conversationID, StoreID: storeID, UserID: uuid.New()}, nil)
	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: uuid.New()}, nil)

	output, err := fx.service.GetConversation(ctx, uuid.New(), conversationID, 50, 0)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestMessageService_ListStoreConversations_OwnerOnly(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()
	conversations := []*entity.Conversation{{ID: uuid.New(), StoreID: storeID}}

	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil)
	fx.conversationRepo.EXPECT().FindByStoreID(ctx, storeID).Return(conversations, nil)

	got, err := fx.service.ListStoreConversations(ctx, ownerID, storeID)

	require.NoError(t, err)
	assert.Equal(t, conversations, got)
}
