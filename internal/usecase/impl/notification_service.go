package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListNotifications returns the user's notifications with the unread count.
func (srv *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) (*usecase.NotificationListOutput, error) {
	notifications, err := srv.notificationRepo.FindByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	unread, err := srv.notificationRepo.CountUnreadByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count unread notifications")
	}

	return &usecase.NotificationListOutput{Notifications: notifications, UnreadCount: unread}, nil
}

// MarkRead marks one of the user's notifications as read.
func (srv *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	notification, err := srv.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound.WrapMessage("mark read failed")
		}

		return errors.Wrap(err, "failed to find notification")
	}
	if notification.UserID != userID {
		return domainerrors.ErrNotificationNotFound.WrapMessage("notification belongs to another user")
	}

	if err := srv.notificationRepo.MarkRead(ctx, notificationID); err != nil {
		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

// MarkAllRead marks all of the user's notifications as read.
func (srv *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if err := srv.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to mark notifications read")
	}
	srv.log(ctx).Info("All notifications marked read", slog.Any("userID", userID))

	return nil
}
