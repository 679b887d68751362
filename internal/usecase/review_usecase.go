package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput defines the data required to review a store.
type CreateReviewInput struct {
	StoreID uuid.UUID
	Rating  int
	Comment string
}

// UpdateReviewInput defines the mutable fields of a review.
type UpdateReviewInput struct {
	Rating  *int
	Comment *string
}

// ReviewListOutput bundles a store's reviews with its rating summary.
type ReviewListOutput struct {
	Reviews []*entity.StoreReview
	Summary *entity.RatingSummary
}

// ReviewUsecase defines the interface for store review operations.
// One review per user per store; authors may edit or remove their own review.
type ReviewUsecase interface {
	CreateReview(ctx context.Context, userID uuid.UUID, input CreateReviewInput) (*entity.StoreReview, error)
	UpdateReview(ctx context.Context, userID, reviewID uuid.UUID, input UpdateReviewInput) (*entity.StoreReview, error)
	DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error
	ListStoreReviews(ctx context.Context, storeID uuid.UUID, limit, offset int) (*ReviewListOutput, error)
}
