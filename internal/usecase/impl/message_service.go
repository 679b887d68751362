package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// messageService implements the MessageUsecase interface.
type messageService struct {
	txManager        repository.TransactionManager
	conversationRepo repository.ConversationRepository
	storeRepo        repository.StoreRepository
	userRepo         repository.UserRepository
	pushService      service.PushService
	logger           *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(
	txManager repository.TransactionManager,
	conversationRepo repository.ConversationRepository,
	storeRepo repository.StoreRepository,
	userRepo repository.UserRepository,
	pushService service.PushService,
	logger *slog.Logger,
) usecase.MessageUsecase {
	return &messageService{
		txManager:        txManager,
		conversationRepo: conversationRepo,
		storeRepo:        storeRepo,
		userRepo:         userRepo,
		pushService:      pushService,
		logger:           logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendMessage delivers a user's message to a store, creating the conversation
// on first contact. Store owners cannot open conversations with their own store.
func (srv *messageService) SendMessage(ctx context.Context, userID uuid.UUID, input usecase.SendMessageInput) (*entity.Message, error) {
	if input.Body == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message body is required")
	}

	store, err := srv.storeRepo.FindByID(ctx, input.StoreID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound.WrapMessage("send message rejected")
		}

		return nil, errors.Wrap(err, "failed to find store")
	}
	if store.OwnerID == userID {
		return nil, domainerrors.ErrSelfConversation.WrapMessage("send message rejected")
	}

	var message *entity.Message
	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		conversationRepo := txRepoFactory.NewConversationRepository()
		notificationRepo := txRepoFactory.NewNotificationRepository()

		conversation, err := conversationRepo.FindByStoreAndUser(ctx, input.StoreID, userID)
		if err != nil {
			if !errors.Is(err, repository.ErrConversationNotFound) {
				return errors.Wrap(err, "failed to find conversation")
			}
			conversation = &entity.Conversation{
				StoreID: input.StoreID,
				UserID:  userID,
			}
			if err := conversationRepo.Create(ctx, conversation); err != nil {
				if !errors.Is(err, repository.ErrConversationExists) {
					return errors.Wrap(err, "failed to create conversation")
				}
				// Two first messages raced on the unique (store, user) pair;
				// the loser picks up the winner's conversation.
				conversation, err = conversationRepo.FindByStoreAndUser(ctx, input.StoreID, userID)
				if err != nil {
					return errors.Wrap(err, "failed to find conversation after create race")
				}
			}
		}

		created, err := srv.appendMessage(ctx, conversationRepo, conversation, entity.SenderTypeUser, input.Body)
		if err != nil {
			return err
		}

		notification := &entity.Notification{
			UserID: store.OwnerID,
			Type:   entity.NotificationTypeMessage,
			Title:  "你有新訊息",
			Body:   input.Body,
			Data: map[string]string{
				"conversation_id": conversation.ID.String(),
			},
		}
		if err := notificationRepo.Create(ctx, notification); err != nil {
			return errors.Wrap(err, "failed to create notification")
		}

		message = created

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.notifyPush(ctx, store.OwnerID, input.Body, message.ConversationID)

	return message, nil
}

// ReplyAsStore delivers a store owner's reply into an existing conversation.
func (srv *messageService) ReplyAsStore(ctx context.Context, ownerID uuid.UUID, input usecase.ReplyMessageInput) (*entity.Message, error) {
	if input.Body == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message body is required")
	}

	conversation, err := srv.getConversation(ctx, input.ConversationID)
	if err != nil {
		return nil, err
	}
	store, err := srv.storeRepo.FindByID(ctx, conversation.StoreID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find store")
	}
	if store.OwnerID != ownerID {
		return nil, domainerrors.ErrStoreOwnershipViolation.WrapMessage("reply rejected")
	}

	var message *entity.Message
	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		conversationRepo := txRepoFactory.NewConversationRepository()
		notificationRepo := txRepoFactory.NewNotificationRepository()

		created, err := srv.appendMessage(ctx, conversationRepo, conversation, entity.SenderTypeStore, input.Body)
		if err != nil {
			return err
		}

		notification := &entity.Notification{
			UserID: conversation.UserID,
			Type:   entity.NotificationTypeMessage,
			Title:  "你有新訊息",
			Body:   input.Body,
			Data: map[string]string{
				"conversation_id": conversation.ID.String(),
			},
		}
		if err := notificationRepo.Create(ctx, notification); err != nil {
			return errors.Wrap(err, "failed to create notification")
		}

		message = created

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.notifyPush(ctx, conversation.UserID, input.Body, conversation.ID)

	return message, nil
}

// ListConversations returns the conversations the user participates in as a customer.
func (srv *messageService) ListConversations(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error) {
	conversations, err := srv.conversationRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversations")
	}

	return conversations, nil
}

// ListStoreConversations returns a store's conversations, restricted to its owner.
func (srv *messageService) ListStoreConversations(ctx context.Context, ownerID, storeID uuid.UUID) ([]*entity.Conversation, error) {
	store, err := srv.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound.WrapMessage("list conversations rejected")
		}

		return nil, errors.Wrap(err, "failed to find store")
	}
	if store.OwnerID != ownerID {
		return nil, domainerrors.ErrStoreOwnershipViolation.WrapMessage("list conversations rejected")
	}

	conversations, err := srv.conversationRepo.FindByStoreID(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list store conversations")
	}

	return conversations, nil
}

// GetConversation returns a conversation and its messages, marking the
// viewer's unread messages as read. Only participants may view.
func (srv *messageService) GetConversation(ctx context.Context, viewerID, conversationID uuid.UUID, limit, offset int) (*usecase.ConversationOutput, error) {
	conversation, err := srv.getConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	viewerSide, err := srv.viewerSide(ctx, viewerID, conversation)
	if err != nil {
		return nil, err
	}

	messages, err := srv.conversationRepo.FindMessages(ctx, conversationID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	if err := srv.conversationRepo.MarkMessagesRead(ctx, conversationID, viewerSide); err != nil {
		srv.log(ctx).Warn("Failed to mark messages read",
			slog.Any("conversationID", conversationID), slog.Any("error", err))
	}

	return &usecase.ConversationOutput{Conversation: conversation, Messages: messages}, nil
}

// appendMessage persists a message and refreshes the conversation's
// last-message snapshot.
func (srv *messageService) appendMessage(ctx context.Context, conversationRepo repository.ConversationRepository, conversation *entity.Conversation, sender entity.SenderType, body string) (*entity.Message, error) {
	message := &entity.Message{
		ConversationID: conversation.ID,
		SenderType:     sender,
		Body:           body,
	}
	if err := conversationRepo.CreateMessage(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to create message")
	}

	now := time.Now()
	conversation.LastMessage = body
	conversation.LastMessageAt = &now
	if err := conversationRepo.Update(ctx, conversation); err != nil {
		return nil, errors.Wrap(err, "failed to update conversation snapshot")
	}

	return message, nil
}

// notifyPush best-effort delivers a new-message push to the recipient's device.
func (srv *messageService) notifyPush(ctx context.Context, recipientID uuid.UUID, body string, conversationID uuid.UUID) {
	recipient, err := srv.userRepo.FindByID(ctx, recipientID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load push recipient", slog.Any("error", err))

		return
	}
	if recipient.FCMToken == "" {
		return
	}

	pushData := map[string]string{"conversation_id": conversationID.String()}
	if err := srv.pushService.SendPush(ctx, recipient.FCMToken, "你有新訊息", body, pushData); err != nil {
		srv.log(ctx).Warn("Failed to send message push", slog.Any("error", err))
	}
}

// getConversation loads a conversation, mapping not-found to the domain error.
func (srv *messageService) getConversation(ctx context.Context, conversationID uuid.UUID) (*entity.Conversation, error) {
	conversation, err := srv.conversationRepo.FindByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, domainerrors.ErrConversationNotFound.WrapMessage("conversation lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find conversation")
	}

	return conversation, nil
}

// viewerSide resolves which side of the conversation the viewer is on.
func (srv *messageService) viewerSide(ctx context.Context, viewerID uuid.UUID, conversation *entity.Conversation) (entity.SenderType, error) {
	if conversation.UserID == viewerID {
		return entity.SenderTypeUser, nil
	}

	store, err := srv.storeRepo.FindByID(ctx, conversation.StoreID)
	if err != nil {
		return "", errors.Wrap(err, "failed to find store")
	}
	if store.OwnerID == viewerID {
		return entity.SenderTypeStore, nil
	}

	return "", domainerrors.ErrForbidden.WrapMessage("conversation access denied")
}
