// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// Create persists a new store review.
// The composite unique index maps duplicate reviews to ErrDuplicateReview.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.StoreReview) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReview
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrStoreNotFound.WrapMessage("invalid store or user reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRating
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// FindByID retrieves a single review by its unique ID.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.StoreReview, error) {
	var reviewM model.StoreReviewModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&reviewM), nil
}

// FindByStoreAndUser retrieves the review a user left on a store, if any.
func (repo *reviewRepository) FindByStoreAndUser(ctx context.Context, storeID, userID uuid.UUID) (*entity.StoreReview, error) {
	var reviewM model.StoreReviewModel

	if err := repo.db.WithContext(ctx).
		Where("store_id = ? AND user_id = ?", storeID, userID).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by store and user")
	}

	return toReviewDomain(&reviewM), nil
}

// FindByStoreID retrieves reviews for a store, newest first.
func (repo *reviewRepository) FindByStoreID(ctx context.Context, storeID uuid.UUID, limit, offset int) ([]*entity.StoreReview, error) {
	query := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var reviewModels []*model.StoreReviewModel
	if err := query.Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by store")
	}

	reviews := make([]*entity.StoreReview, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// Update modifies an existing review in the database.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.StoreReview) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StoreReviewModel{}).
		Where("id = ?", review.ID).
		Updates(map[string]any{
			"rating":  review.Rating,
			"comment": review.Comment,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// Delete removes a review from the database.
func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.StoreReviewModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// Summarize computes the review count and average rating for a store.
func (repo *reviewRepository) Summarize(ctx context.Context, storeID uuid.UUID) (*entity.RatingSummary, error) {
	var row struct {
		ReviewCount   int64
		AverageRating float64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.StoreReviewModel{}).
		Select("COUNT(*) AS review_count, COALESCE(AVG(rating), 0) AS average_rating").
		Where("store_id = ?", storeID).
		Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to summarize reviews")
	}

	return &entity.RatingSummary{
		StoreID:       storeID,
		ReviewCount:   row.ReviewCount,
		AverageRating: row.AverageRating,
	}, nil
}

// toReviewDomain maps a persistence model back to a pure domain entity.
func toReviewDomain(m *model.StoreReviewModel) *entity.StoreReview {
	return &entity.StoreReview{
		ID:        m.ID,
		StoreID:   m.StoreID,
		UserID:    m.UserID,
		Rating:    m.Rating,
		Comment:   m.Comment,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// fromReviewDomain maps a pure domain entity to a GORM persistence model.
func fromReviewDomain(review *entity.StoreReview) *model.StoreReviewModel {
	return &model.StoreReviewModel{
		ID:        review.ID,
		StoreID:   review.StoreID,
		UserID:    review.UserID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}
