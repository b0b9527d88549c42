package service

import (
	"context"
)

// NotificationService defines the interface for push notification delivery
type NotificationService interface {
	// SendBatchNotification sends push notifications to multiple device tokens
	// Returns success count, failure count, list of invalid tokens, and error
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}
