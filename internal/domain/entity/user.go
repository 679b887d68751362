// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
// It contains only the most fundamental identity information shared across all roles.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email     string    // The user's primary contact email, used as the login identifier.
	Name      string    // The user's display name or real name.
	Role      Role      // The user's current role; upgraded to influencer by influencer registration.
	AvatarURL string    // Optional avatar image URL.
	FCMToken  string    // Optional Firebase Cloud Messaging device token for push notifications.
	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}
