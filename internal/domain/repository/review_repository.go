// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for review persistence.
var (
	// ErrReviewNotFound is returned when a store review is not found.
	ErrReviewNotFound = errors.New("review not found")
	// ErrDuplicateReview is returned when a user has already reviewed a store.
	ErrDuplicateReview = errors.New("user already reviewed store")
)

// ReviewRepository defines the standard operations for store review persistence.
type ReviewRepository interface {
	// Create persists a new store review.
	// Returns ErrDuplicateReview when the user already reviewed the store.
	Create(ctx context.Context, review *entity.StoreReview) error

	// FindByID retrieves a single review by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.StoreReview, error)

	// FindByStoreAndUser retrieves the review a user left on a store, if any.
	FindByStoreAndUser(ctx context.Context, storeID, userID uuid.UUID) (*entity.StoreReview, error)

	// FindByStoreID retrieves reviews for a store, newest first.
	FindByStoreID(ctx context.Context, storeID uuid.UUID, limit, offset int) ([]*entity.StoreReview, error)

	// Update modifies an existing review in the storage.
	Update(ctx context.Context, review *entity.StoreReview) error

	// Delete removes a review from the storage.
	Delete(ctx context.Context, id uuid.UUID) error

	// Summarize computes the review count and average rating for a store.
	Summarize(ctx context.Context, storeID uuid.UUID) (*entity.RatingSummary, error)
}
