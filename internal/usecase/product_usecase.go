package usecase

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// VariationInput defines a single product variation.
type VariationInput struct {
	Name  string
	Value string
	Price float64
	Stock int
}

// CreateProductInput defines the data required to create a product or service listing.
type CreateProductInput struct {
	StoreID              uuid.UUID
	Kind                 entity.ProductKind
	Title                string
	Description          string
	Price                float64
	Currency             string
	ScheduledPublishAt   *time.Time
	ScheduledUnpublishAt *time.Time
	Variations           []VariationInput
}

// UpdateProductInput defines the mutable fields of a product.
// A nil pointer leaves the field untouched; schedule fields use the
// Clear flags to distinguish "unset" from "unchanged".
type UpdateProductInput struct {
	Title                  *string
	Description            *string
	Price                  *float64
	Currency               *string
	Status                 *entity.ProductStatus
	ScheduledPublishAt     *time.Time
	ClearScheduledPublish  bool
	ScheduledUnpublishAt   *time.Time
	ClearScheduledUnpublish bool
	Variations             []VariationInput
}

// ListProductsInput narrows down product listings.
type ListProductsInput struct {
	StoreID *uuid.UUID
	Kind    *entity.ProductKind
	Status  *entity.ProductStatus
	Search  string
	Limit   int
	Offset  int
}

// ProductListOutput bundles a page of products with the total match count.
type ProductListOutput struct {
	Products []*entity.Product
	Total    int64
}

// SweepResult reports what a scheduled publish/unpublish sweep changed.
type SweepResult struct {
	Published   int
	Unpublished int
}

// ProductUsecase defines the interface for product and service listing operations.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, ownerID uuid.UUID, input CreateProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)
	ListProducts(ctx context.Context, input ListProductsInput) (*ProductListOutput, error)
	UpdateProduct(ctx context.Context, ownerID, productID uuid.UUID, input UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, ownerID, productID uuid.UUID) error

	// RunScheduledSweep publishes and unpublishes listings whose schedule
	// has come due at the given instant. It is safe to run repeatedly.
	RunScheduledSweep(ctx context.Context, now time.Time) (*SweepResult, error)
}
