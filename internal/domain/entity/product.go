// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProductStatus represents the publication state of a listing.
type ProductStatus string

const (
	// ProductStatusDraft indicates a listing that is not yet visible to buyers.
	ProductStatusDraft ProductStatus = "DRAFT"
	// ProductStatusActive indicates a published, purchasable listing.
	ProductStatusActive ProductStatus = "ACTIVE"
	// ProductStatusArchived indicates a listing withdrawn from the storefront.
	ProductStatusArchived ProductStatus = "ARCHIVED"
)

// IsValid checks if the ProductStatus is a valid value.
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusDraft, ProductStatusActive, ProductStatusArchived:
		return true
	default:
		return false
	}
}

// ProductKind discriminates physical product listings from service listings.
// Both share the products table; the kind column replaces the legacy
// sentinel-variation marker.
type ProductKind string

const (
	// KindProduct is a physical or digital goods listing.
	KindProduct ProductKind = "PRODUCT"
	// KindService is a service listing (e.g. content production, consulting).
	KindService ProductKind = "SERVICE"
)

// IsValid checks if the ProductKind is a valid value.
func (k ProductKind) IsValid() bool {
	return k == KindProduct || k == KindService
}

// Product represents a listing that belongs to a store.
type Product struct {
	ID                   uuid.UUID          `json:"id"`                     // The Global Unique Identifier (GUID) for the listing.
	StoreID              uuid.UUID          `json:"store_id"`               // The ID of the store this listing belongs to.
	Kind                 ProductKind        `json:"kind"`                   // PRODUCT or SERVICE.
	Title                string             `json:"title"`                  // The listing title.
	Description          string             `json:"description"`            // Long-form listing description.
	Price                float64            `json:"price"`                  // The base price of the listing.
	Currency             string             `json:"currency"`               // ISO 4217 currency code, e.g. "USD".
	Status               ProductStatus      `json:"status"`                 // DRAFT, ACTIVE or ARCHIVED.
	ScheduledPublishAt   *time.Time         `json:"scheduled_publish_at"`   // Optional time at which the sweep publishes this listing.
	ScheduledUnpublishAt *time.Time         `json:"scheduled_unpublish_at"` // Optional time at which the sweep archives this listing.
	Variations           []ProductVariation `json:"variations"`             // Nested variation rows (size, color, tier...).
	Media                []ProductMedia     `json:"media"`                  // Nested image/video rows.
	CreatedAt            time.Time          `json:"created_at"`             // Timestamp of when this listing was created.
	UpdatedAt            time.Time          `json:"updated_at"`             // Timestamp of the last modification.
}

/// ProductVariation is a single option row under a listing, e.g. {Name:"size", Value:"M"}.
type ProductVariation struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	Price     float64   `json:"price"` // Price override for this variation; 0 means the base price applies.
	Stock     int       `json:"stock"`
}

// ProductMedia is an uploaded image or video attached to a listing.
type ProductMedia struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	Kind        string    `json:"kind"` // "image" or "video".
	URL         string    `json:"url"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	Position    int       `json:"position"`
}
