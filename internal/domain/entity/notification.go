// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType categorizes in-app notifications.
type NotificationType string

const (
	// NotificationTypeCampaignSelected tells an influencer they were selected for a campaign.
	NotificationTypeCampaignSelected NotificationType = "CAMPAIGN_SELECTED"
	// NotificationTypeMessage tells a user a new message arrived.
	NotificationTypeMessage NotificationType = "MESSAGE"
	// NotificationTypeSystem is a general platform announcement.
	NotificationTypeSystem NotificationType = "SYSTEM"
)

// Notification is a per-user, typed, read/unread notification record.
type Notification struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"user_id"`
	Type      NotificationType  `json:"type"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data"` // Optional deep-link payload (campaign id, conversation id...).
	IsRead    bool              `json:"is_read"`
	CreatedAt time.Time         `json:"created_at"`
}
