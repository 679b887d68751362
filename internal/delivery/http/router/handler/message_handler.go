package handler

import (
	"net/http"

	"marketplace/internal/delivery/http/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MessageHandler holds dependencies for store/user messaging handlers.
type MessageHandler struct {
	uc usecase.MessageUsecase
}

// NewMessageHandler is the constructor for MessageHandler, injected by Fx.
func NewMessageHandler(uc usecase.MessageUsecase) *MessageHandler {
	return &MessageHandler{uc: uc}
}

type sendMessageRequest struct {
	Body string `json:"body" validate:"required"`
}

// SendMessage delivers the caller's message to a store.
func (h *MessageHandler) SendMessage(c echo.Context) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}
	storeID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "無效的訊息資料", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	message, err := h.uc.SendMessage(c.Request().Context(), userID, usecase.SendMessageInput{
		StoreID: storeID,
		Body:    req.Body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message)
}

// ReplyAsStore delivers the store owner's reply into a conversation.
func (h *MessageHandler) ReplyAsStore(c echo.Context) error {
	ownerID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}
	conversationID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "無效的訊息資料", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	message, err := h.uc.ReplyAsStore(c.Request().Context(), ownerID, usecase.ReplyMessageInput{
		ConversationID: conversationID,
		Body:           req.Body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message)
}

// ListConversations returns the caller's conversations as a customer.
func (h *MessageHandler) ListConversations(c echo.Context) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}

	conversations, err := h.uc.ListConversations(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, conversations)
}

// ListStoreConversations returns a store's conversations to its owner.
func (h *MessageHandler) ListStoreConversations(c echo.Context) error {
	ownerID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}
	storeID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	conversations, err := h.uc.ListStoreConversations(c.Request().Context(), ownerID, storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, conversations)
}

// GetConversation returns a conversation's messages to a participant.
func (h *MessageHandler) GetConversation(c echo.Context) error {
	viewerID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}
	conversationID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	limit, offset := pagination(c)

	output, err := h.uc.GetConversation(c.Request().Context(), viewerID, conversationID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"conversation": output.Conversation,
		"messages":     output.Messages,
	})
}
