// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStoreNotFound is returned when a store is not found.
var ErrStoreNotFound = errors.New("store not found")

// StoreListFilter narrows down store listing queries.
type StoreListFilter struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

// StoreRepository defines the standard operations for store persistence.
type StoreRepository interface {
	// Create persists a new store entity to the storage.
	Create(ctx context.Context, store *entity.Store) error

	// FindByID retrieves a single store by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// FindByOwnerID retrieves all stores owned by a specific user.
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Store, error)

	// List retrieves stores matching the given filter, newest first.
	List(ctx context.Context, filter StoreListFilter) ([]*entity.Store, int64, error)

	// Update modifies an existing store entity in the storage.
	Update(ctx context.Context, store *entity.Store) error

	// Delete removes a store and its dependent records.
	Delete(ctx context.Context, id uuid.UUID) error
}
