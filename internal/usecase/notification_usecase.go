package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationListOutput bundles a page of notifications with the unread count.
type NotificationListOutput struct {
	Notifications []*entity.Notification
	UnreadCount   int64
}

// NotificationUsecase defines the interface for in-app notification operations.
// Creation happens inside the campaign and messaging flows; this surface is
// the user-facing read side.
type NotificationUsecase interface {
	ListNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) (*NotificationListOutput, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}
