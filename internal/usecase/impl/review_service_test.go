package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestReviewService(t *testing.T) (usecase.ReviewUsecase, *mockRepo.MockReviewRepository, *mockRepo.MockStoreRepository) {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewReviewService(reviewRepo, storeRepo, logger)

	return service, reviewRepo, storeRepo
}

func TestReviewService_CreateReview_Success(t *testing.T) {
	service, reviewRepo, storeRepo := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	storeID := uuid.New()

	storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: uuid.New()}, nil)
	reviewRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(review *entity.StoreReview) bool {
			return review.StoreID == storeID && review.UserID == userID && review.Rating == 4
		})).
		Run(func(ctx context.Context, review *entity.StoreReview) {
			review.ID = uuid.New()
		}).
		Return(nil)

	review, err := service.CreateReview(ctx, userID, usecase.CreateReviewInput{
		StoreID: storeID,
		Rating:  4,
		Comment: "Solid food, slow service",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, review.ID)
	assert.Equal(t, 4, review.Rating)
}

func TestReviewService_CreateReview_InvalidRating(t *testing.T) {
	service, _, _ := createTestReviewService(t)

	ctx := context.Background()

	review, err := service.CreateReview(ctx, uuid.New(), usecase.CreateReviewInput{
		StoreID: uuid.New(),
		Rating:  6,
	})

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRating))
}

func TestReviewService_CreateReview_OwnStoreForbidden(t *testing.T) {
	service, _, storeRepo := createTestReviewService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()

	storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil)

	review, err := service.CreateReview(ctx, ownerID, usecase.CreateReviewInput{
		StoreID: storeID,
		Rating:  5,
	})

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestReviewService_CreateReview_Duplicate(t *testing.T) {
	service, reviewRepo, storeRepo := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	storeID := uuid.New()

	storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: uuid.New()}, nil)
	reviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.StoreReview")).
		Return(repository.ErrDuplicateReview)

	review, err := service.CreateReview(ctx, userID, usecase.CreateReviewInput{
		StoreID: storeID,
		Rating:  3,
	})

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateReview))
}

func TestReviewService_UpdateReview_NotAuthor(t *testing.T) {
	service, reviewRepo, _ := createTestReviewService(t)

	ctx := context.Background()
	reviewID := uuid.New()

	reviewRepo.EXPECT().
		FindByID(ctx, reviewID).
		Return(&entity.StoreReview{ID: reviewID, UserID: uuid.New()}, nil)

	newRating := 2
	review, err := service.UpdateReview(ctx, uuid.New(), reviewID, usecase.UpdateReviewInput{
		Rating: &newRating,
	})

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestReviewService_UpdateReview_Success(t *testing.T) {
	service, reviewRepo, _ := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	reviewID := uuid.New()

	reviewRepo.EXPECT().
		FindByID(ctx, reviewID).
		Return(&entity.StoreReview{ID: reviewID, UserID: userID, Rating: 2, Comment: "meh"}, nil)
	reviewRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(review *entity.StoreReview) bool {
			return review.Rating == 5 && review.Comment == "They fixed everything"
		})).
		Return(nil)

	newRating := 5
	newComment := "They fixed everything"
	review, err := service.UpdateReview(ctx, userID, reviewID, usecase.UpdateReviewInput{
		Rating:  &newRating,
		Comment: &newComment,
	})

	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
}

func TestReviewService_DeleteReview_Success(t *testing.T) {
	service, reviewRepo, _ := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	reviewID := uuid.New()

	reviewRepo.EXPECT().
		FindByID(ctx, reviewID).
		Return(&entity.StoreReview{ID: reviewID, UserID: userID}, nil)
	reviewRepo.EXPECT().Delete(ctx, reviewID).Return(nil)

	err := service.DeleteReview(ctx, userID, reviewID)

	assert.NoError(t, err)
}

func TestReviewService_ListStoreReviews_WithSummary(t *testing.T) {
	service, reviewRepo, storeRepo := createTestReviewService(t)

	ctx := context.Background()
	storeID := uuid.New()
	reviews := []*entity.StoreReview{
		{ID: uuid.New(), StoreID: storeID, Rating: 5},
		{ID: uuid.New(), StoreID: storeID, Rating: 3},
	}
	summary := &entity.RatingSummary{ReviewCount: 2, AverageRating: 4.0}

	storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID}, nil)
	reviewRepo.EXPECT().FindByStoreID(ctx, storeID, 20, 0).Return(reviews, nil)
	reviewRepo.EXPECT().Summarize(ctx, storeID).Return(summary, nil)

	output, err := service.ListStoreReviews(ctx, storeID, 20, 0)

	require.NoError(t, err)
	assert.Len(t, output.Reviews, 2)
	assert.InDelta(t, 4.0, output.Summary.AverageRating, 0.001)
}

func TestReviewService_ListStoreReviews_StoreNotFound(t *testing.T) {
	service, _, storeRepo := createTestReviewService(t)

	ctx := context.Background()
	storeID := uuid.New()

	storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(nil, repository.ErrStoreNotFound)

	output, err := service.ListStoreReviews(ctx, storeID, 20, 0)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreNotFound))
}
