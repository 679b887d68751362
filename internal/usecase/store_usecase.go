package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateStoreInput defines the data required to open a new store.
type CreateStoreInput struct {
	Name        string
	Description string
	Category    string
	LogoURL     string
	CoverURL    string
}

// UpdateStoreInput defines the mutable fields of a store.
type UpdateStoreInput struct {
	Name        *string
	Description *string
	Category    *string
	LogoURL     *string
	CoverURL    *string
}

// ListStoresInput narrows down public store listings.
type ListStoresInput struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

// StoreListOutput bundles a page of stores with the total match count.
type StoreListOutput struct {
	Stores []*entity.Store
	Total  int64
}

// StoreUsecase defines the interface for store-related business operations.
// Mutations are restricted to the store owner.
type StoreUsecase interface {
	CreateStore(ctx context.Context, ownerID uuid.UUID, input CreateStoreInput) (*entity.Store, error)
	GetStore(ctx context.Context, storeID uuid.UUID) (*entity.Store, error)
	ListStores(ctx context.Context, input ListStoresInput) (*StoreListOutput, error)
	ListOwnStores(ctx context.Context, ownerID uuid.UUID) ([]*entity.Store, error)
	UpdateStore(ctx context.Context, ownerID, storeID uuid.UUID, input UpdateStoreInput) (*entity.Store, error)
	DeleteStore(ctx context.Context, ownerID, storeID uuid.UUID) error

	// GetStoreShareQR renders a PNG QR code linking to the store page.
	GetStoreShareQR(ctx context.Context, storeID uuid.UUID) ([]byte, error)
}
