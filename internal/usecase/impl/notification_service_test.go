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
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (usecase.NotificationUsecase, *mockRepo.MockNotificationRepository) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewNotificationService(notificationRepo, logger)

	return service, notificationRepo
}

func TestNotificationService_ListNotifications_WithUnreadCount(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	notifications := []*entity.Notification{
		{ID: uuid.New(), UserID: userID, Type: entity.NotificationTypeMessage, Title: "你有新訊息"},
		{ID: uuid.New(), UserID: userID, Type: entity.NotificationTypeCampaignSelected, Title: "你已獲選參與活動", IsRead: true},
	}

	notificationRepo.EXPECT().FindByUserID(ctx, userID, 20, 0).Return(notifications, nil)
	notificationRepo.EXPECT().CountUnreadByUserID(ctx, userID).Return(int64(1), nil)

	output, err := service.ListNotifications(ctx, userID, 20, 0)

	require.NoError(t, err)
	assert.Len(t, output.Notifications, 2)
	assert.Equal(t, int64(1), output.UnreadCount)
}

func TestNotificationService_MarkRead_Success(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	notificationRepo.EXPECT().
		FindByID(ctx, notificationID).
		Return(&entity.Notification{ID: notificationID, UserID: userID}, nil)
	notificationRepo.EXPECT().MarkRead(ctx, notificationID).Return(nil)

	err := service.MarkRead(ctx, userID, notificationID)

	assert.NoError(t, err)
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	notificationID := uuid.New()

	notificationRepo.EXPECT().
		FindByID(ctx, notificationID).
		Return(nil, repository.ErrNotificationNotFound)

	err := service.MarkRead(ctx, uuid.New(), notificationID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotificationNotFound))
}

func TestNotificationService_MarkRead_OtherUsersNotification(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	notificationID := uuid.New()

	notificationRepo.EXPECT().
		FindByID(ctx, notificationID).
		Return(&entity.Notification{ID: notificationID, UserID: uuid.New()}, nil)

	err := service.MarkRead(ctx, uuid.New(), notificationID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotificationNotFound))
}

func TestNotificationService_MarkAllRead_Success(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	notificationRepo.EXPECT().MarkAllRead(ctx, userID).Return(nil)

	err := service.MarkAllRead(ctx, userID)

	assert.NoError(t, err)
}
