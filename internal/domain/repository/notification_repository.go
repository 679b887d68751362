// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// Create persists a new in-app notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByID retrieves a notification by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindByUserID retrieves notifications for a user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// CountUnreadByUserID returns the number of unread notifications for a user.
	CountUnreadByUserID(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkRead marks a single notification as read.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// MarkAllRead marks all of a user's notifications as read.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}
