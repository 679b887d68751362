// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Store represents a seller/brand tenant in the marketplace.
// One user may own multiple stores.
type Store struct {
	ID          uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the store.
	OwnerID     uuid.UUID `json:"owner_id"`    // The ID of the user who owns this store.
	Name        string    `json:"name"`        // The store's public display name.
	Description string    `json:"description"` // A description of the store and what it sells.
	Category    string    `json:"category"`    // Free-form category label, e.g. "fashion", "beauty".
	LogoURL     string    `json:"logo_url"`    // Optional logo image URL.
	CoverURL    string    `json:"cover_url"`   // Optional cover/banner image URL.
	CreatedAt   time.Time `json:"created_at"`  // Timestamp of when this store was created.
	UpdatedAt   time.Time `json:"updated_at"`  // Timestamp of the last modification.
}
