package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo repository.ReviewRepository
	storeRepo  repository.StoreRepository
	logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	storeRepo repository.StoreRepository,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo: reviewRepo,
		storeRepo:  storeRepo,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReview creates a review of a store. Owners cannot review their own
// store, and the unique index on (store, user) rejects a second review.
func (srv *reviewService) CreateReview(ctx context.Context, userID uuid.UUID, input usecase.CreateReviewInput) (*entity.StoreReview, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrInvalidRating.WrapMessage("create review rejected")
	}

	store, err := srv.storeRepo.FindByID(ctx, input.StoreID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound.WrapMessage("create review rejected")
		}

		return nil, errors.Wrap(err, "failed to find store")
	}
	if store.OwnerID == userID {
		return nil, domainerrors.ErrForbidden.WrapMessage("owners cannot review their own store")
	}

	review := &entity.StoreReview{
		StoreID: input.StoreID,
		UserID:  userID,
		Rating:  input.Rating,
		Comment: input.Comment,
	}
	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicateReview) {
			return nil, domainerrors.ErrDuplicateReview.WrapMessage("create review rejected")
		}

		return nil, errors.Wrap(err, "failed to create review")
	}
	srv.log(ctx).Info("Review created",
		slog.Any("storeID", input.StoreID),
		slog.Int("rating", input.Rating),
	)

	return review, nil
}

// UpdateReview applies a partial update to the caller's own review.
func (srv *reviewService) UpdateReview(ctx context.Context, userID, reviewID uuid.UUID, input usecase.UpdateReviewInput) (*entity.StoreReview, error) {
	review, err := srv.requireOwnReview(ctx, userID, reviewID)
	if err != nil {
		return nil, err
	}

	if input.Rating != nil {
		if *input.Rating < 1 || *input.Rating > 5 {
			return nil, domainerrors.ErrInvalidRating.WrapMessage("update review rejected")
		}
		review.Rating = *input.Rating
	}
	if input.Comment != nil {
		review.Comment = *input.Comment
	}

	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to update review")
	}

	return review, nil
}

// DeleteReview removes the caller's own review.
func (srv *reviewService) DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error {
	if _, err := srv.requireOwnReview(ctx, userID, reviewID); err != nil {
		return err
	}

	if err := srv.reviewRepo.Delete(ctx, reviewID); err != nil {
		return errors.Wrap(err, "failed to delete review")
	}
	srv.log(ctx).Info("Review deleted", slog.Any("reviewID", reviewID))

	return nil
}

// ListStoreReviews returns a store's reviews together with its rating summary.
func (srv *reviewService) ListStoreReviews(ctx context.Context, storeID uuid.UUID, limit, offset int) (*usecase.ReviewListOutput, error) {
	if _, err := srv.storeRepo.FindByID(ctx, storeID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound.WrapMessage("list reviews rejected")
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	reviews, err := srv.reviewRepo.FindByStoreID(ctx, storeID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	summary, err := srv.reviewRepo.Summarize(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize reviews")
	}

	return &usecase.ReviewListOutput{Reviews: reviews, Summary: summary}, nil
}

// requireOwnReview loads a review and verifies the caller authored it.
func (srv *reviewService) requireOwnReview(ctx context.Context, userID, reviewID uuid.UUID) (*entity.StoreReview, error) {
	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound.WrapMessage("review lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find review")
	}
	if review.UserID != userID {
		return nil, domainerrors.ErrForbidden.WrapMessage("review belongs to another user")
	}

	return review, nil
}
