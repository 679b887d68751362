// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product or service listing is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrVariationNotFound is returned when a product variation is not found.
	ErrVariationNotFound = errors.New("product variation not found")
)

// ProductListFilter narrows down product listing queries.
type ProductListFilter struct {
	StoreID *uuid.UUID
	Kind    *entity.ProductKind
	Status  *entity.ProductStatus
	Search  string
	Limit   int
	Offset  int
}

// ProductRepository defines the standard operations for product and service listing persistence.
// Services share the same aggregate as products, discriminated by the Kind column.
type ProductRepository interface {
	// Create persists a new product entity, including its variations and media.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a single product by its unique ID, with variations and media preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List retrieves products matching the given filter, newest first.
	List(ctx context.Context, filter ProductListFilter) ([]*entity.Product, int64, error)

	// Update modifies an existing product entity in the storage.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product and its dependent variations and media.
	Delete(ctx context.Context, id uuid.UUID) error

	// ReplaceVariations swaps the full variation set of a product.
	ReplaceVariations(ctx context.Context, productID uuid.UUID, variations []entity.ProductVariation) error

	// AddMedia attaches an uploaded media asset to a product.
	AddMedia(ctx context.Context, media *entity.ProductMedia) error

	// FindDueForPublish retrieves non-active products whose scheduled publish time
	// is at or before the given instant.
	FindDueForPublish(ctx context.Context, now time.Time) ([]*entity.Product, error)

	// FindDueForUnpublish retrieves active products whose scheduled unpublish time
	// is at or before the given instant.
	FindDueForUnpublish(ctx context.Context, now time.Time) ([]*entity.Product, error)

	// UpdateStatus transitions a product to the given status and clears the
	// schedule field that triggered the transition.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ProductStatus) error
}
