package service

import (
	"context"
)

// PushService defines the interface for push notification delivery
type PushService interface {
	// SendPush sends a push notification to a single device token
	SendPush(ctx context.Context, token, title, body string, data map[string]string) error

	// SendBatchPush sends push notifications to multiple device tokens.
	// Returns success count, failure count, list of invalid tokens, and error
	SendBatchPush(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}
