package handler

import (
	"net/http"

	"marketplace/internal/delivery/http/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for in-app notification handlers.
type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// ListNotifications returns the caller's notifications with the unread count.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}
	limit, offset := pagination(c)

	output, err := h.uc.ListNotifications(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"notifications": output.Notifications,
		"unread_count":  output.UnreadCount,
	})
}

// MarkRead marks one of the caller's notifications as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}
	notificationID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.MarkRead(c.Request().Context(), userID, notificationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "通知已標記為已讀"})
}

// MarkAllRead marks all of the caller's notifications as read.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}

	if err := h.uc.MarkAllRead(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "所有通知已標記為已讀"})
}
