package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProductService(t *testing.T) (
	usecase.ProductUsecase,
	*mockRepo.MockProductRepository,
	*mockRepo.MockStoreRepository,
) {
	productRepo := mockRepo.NewMockProductRepository(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProductService(productRepo, storeRepo, logger)

	return service, productRepo, storeRepo
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	service, productRepo, storeRepo := createTestProductService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()

	storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil)

	productRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(product *entity.Product) bool {
			return product.StoreID == storeID &&
				product.Status == entity.ProductStatusDraft &&
				len(product.Variations) == 1
		})).
		Run(func(ctx context.Context, product *entity.Product) {
			product.ID = uuid.New()
		}).
		Return(nil)

	product, err := service.CreateProduct(ctx, ownerID, usecase.CreateProductInput{
		StoreID:     storeID,
		Kind:        entity.KindProduct,
		Title:       "Handmade Mug",
		Price:       25.0,
		Currency:    "USD",
		Variations:  []usecase.VariationInput{{Name: "color", Value: "blue", Stock: 3}},
		Description: "A mug",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusDraft, product.Status)
	assert.Equal(t, "blue", product.Variations[0].Value)
}

func TestProductService_CreateProduct_InvalidKind(t *testing.T) {
	service, _, _ := createTestProductService(t)

	ctx := context.Background()

	product, err := service.CreateProduct(ctx, uuid.New(), usecase.CreateProductInput{
		StoreID: uuid.New(),
		Kind:    "SUBSCRIPTION",
		Title:   "Bad",
	})

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProductService_CreateProduct_ScheduleOrdering(t *testing.T) {
	service, _, _ := createTestProductService(t)

	ctx := context.Background()
	publishAt := time.Now().Add(2 * time.Hour)
	unpublishAt := publishAt.Add(-time.Hour)

	product, err := service.CreateProduct(ctx, uuid.New(), usecase.CreateProductInput{
		StoreID:              uuid.New(),
		Kind:                 entity.KindService,
		Title:                "Consulting",
		ScheduledPublishAt:   &publishAt,
		ScheduledUnpublishAt: &unpublishAt,
	})

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProductService_CreateProduct_NotStoreOwner(t *testing.T) {
	service, _, storeRepo := createTestProductService(t)

	ctx := context.Background()
	storeID := uuid.New()

	storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: uuid.New()}, nil)

	product, err := service.CreateProduct(ctx, uuid.New(), usecase.CreateProductInput{
		StoreID: storeID,
		Kind:    entity.KindProduct,
		Title:   "Not mine",
	})

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreOwnershipViolation))
}

func TestProductService_UpdateProduct_ClearSchedule(t *testing.T) {
	service, productRepo, storeRepo := createTestProductService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()
	productID := uuid.New()
	publishAt := time.Now().Add(time.Hour)

	productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{
			ID:                 productID,
			StoreID:            storeID,
			Status:             entity.ProductStatusDraft,
			ScheduledPublishAt: &publishAt,
		}, nil)
	storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil)

	productRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(product *entity.Product) bool {
			return product.ScheduledPublishAt == nil
		})).
		Return(nil)

	product, err := service.UpdateProduct(ctx, ownerID, productID, usecase.UpdateProductInput{
		ClearScheduledPublish: true,
	})

	require.NoError(t, err)
	assert.Nil(t, product.ScheduledPublishAt)
}

func TestProductService_UpdateProduct_OwnershipViolation(t *testing.T) {
	service, productRepo, storeRepo := createTestProductService(t)

	ctx := context.Background()
	storeID := uuid.New()
	productID := uuid.New()

	productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, StoreID: storeID}, nil)
	storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: uuid.New()}, nil)

	product, err := service.UpdateProduct(ctx, uuid.New(), productID, usecase.UpdateProductInput{})

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductOwnershipViolation))
}

func TestProductService_RunScheduledSweep(t *testing.T) {
	service, productRepo, _ := createTestProductService(t)

	ctx := context.Background()
	now := time.Now()

	duePublish := []*entity.Product{
		{ID: uuid.New(), Status: entity.ProductStatusDraft},
		{ID: uuid.New(), Status: entity.ProductStatusDraft},
	}
	dueUnpublish := []*entity.Product{
		{ID: uuid.New(), Status: entity.ProductStatusActive},
	}

	productRepo.EXPECT().FindDueForPublish(ctx, now).Return(duePublish, nil)
	productRepo.EXPECT().UpdateStatus(ctx, duePublish[0].ID, entity.ProductStatusActive).Return(nil)
	productRepo.EXPECT().UpdateStatus(ctx, duePublish[1].ID, entity.ProductStatusActive).Return(nil)

	productRepo.EXPECT().FindDueForUnpublish(ctx, now).Return(dueUnpublish, nil)
	productRepo.EXPECT().UpdateStatus(ctx, dueUnpublish[0].ID, entity.ProductStatusArchived).Return(nil)

	result, err := service.RunScheduledSweep(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Published)
	assert.Equal(t, 1, result.Unpublished)
}

func TestProductService_RunScheduledSweep_NeverResurrectsArchived(t *testing.T) {
	service, productRepo, _ := createTestProductService(t)

	ctx := context.Background()
	now := time.Now()

	// An archived listing with a stale publish schedule must stay archived.
	duePublish := []*entity.Product{
		{ID: uuid.New(), Status: entity.ProductStatusArchived},
		{ID: uuid.New(), Status: entity.ProductStatusDraft},
	}

	productRepo.EXPECT().FindDueForPublish(ctx, now).Return(duePublish, nil)
	productRepo.EXPECT().UpdateStatus(ctx, duePublish[1].ID, entity.ProductStatusActive).Return(nil)

	productRepo.EXPECT().FindDueForUnpublish(ctx, now).Return([]*entity.Product{}, nil)

	result, err := service.RunScheduledSweep(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Published)
}

func TestProductService_RunScheduledSweep_ContinuesOnUpdateFailure(t *testing.T) {
	service, productRepo, _ := createTestProductService(t)

	ctx := context.Background()
	now := time.Now()

	duePublish := []*entity.Product{
		{ID: uuid.New(), Status: entity.ProductStatusDraft},
		{ID: uuid.New(), Status: entity.ProductStatusDraft},
	}

	productRepo.EXPECT().FindDueForPublish(ctx, now).Return(duePublish, nil)
	productRepo.EXPECT().
		UpdateStatus(ctx, duePublish[0].ID, entity.ProductStatusActive).
		Return(errors.New("db error"))
	productRepo.EXPECT().UpdateStatus(ctx, duePublish[1].ID, entity.ProductStatusActive).Return(nil)

	productRepo.EXPECT().FindDueForUnpublish(ctx, now).Return([]*entity.Product{}, nil)

	result, err := service.RunScheduledSweep(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Published)
	assert.Equal(t, 0, result.Unpublished)
}

func TestProductService_RunScheduledSweep_Empty(t *testing.T) {
	service, productRepo, _ := createTestProductService(t)

	ctx := context.Background()
	now := time.Now()

	productRepo.EXPECT().FindDueForPublish(ctx, now).Return([]*entity.Product{}, nil)
	productRepo.EXPECT().FindDueForUnpublish(ctx, now).Return([]*entity.Product{}, nil)

	result, err := service.RunScheduledSweep(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Published)
	assert.Equal(t, 0, result.Unpublished)
}
