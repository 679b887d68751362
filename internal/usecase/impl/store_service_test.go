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
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestStoreService(t *testing.T) (usecase.StoreUsecase, *mockRepo.MockStoreRepository, *mockSvc.MockQRCodeService) {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewStoreService(storeRepo, qrcodeService, logger)

	return service, storeRepo, qrcodeService
}

func TestStoreService_CreateStore_Success(t *testing.T) {
	service, storeRepo, _ := createTestStoreService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	storeRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(store *entity.Store) bool {
			return store.OwnerID == ownerID && store.Name == "Corner Cafe"
		})).
		Run(func(ctx context.Context, store *entity.Store) {
			store.ID = uuid.New()
		}).
		Return(nil)

	store, err := service.CreateStore(ctx, ownerID, usecase.CreateStoreInput{
		Name:     "Corner Cafe",
		Category: "food",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, store.ID)
	assert.Equal(t, ownerID, store.OwnerID)
}

func TestStoreService_GetStore_NotFound(t *testing.T) {
	service, storeRepo, _ := createTestStoreService(t)

	ctx := context.Background()
	storeID := uuid.New()

	storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(nil, repository.ErrStoreNotFound)

	store, err := service.GetStore(ctx, storeID)

	assert.Error(t, err)
	assert.Nil(t, store)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreNotFound))
}

func TestStoreService_ListStores_PassesFilter(t *testing.T) {
	service, storeRepo, _ := createTestStoreService(t)

	ctx := context.Background()
	stores := []*entity.Store{{ID: uuid.New(), Name: "Corner Cafe"}}

	storeRepo.EXPECT().
		List(ctx, repository.StoreListFilter{Category: "food", Search: "cafe", Limit: 10, Offset: 20}).
		Return(stores, int64(1), nil)

	output, err := service.ListStores(ctx, usecase.ListStoresInput{
		Category: "food",
		Search:   "cafe",
		Limit:    10,
		Offset:   20,
	})

	require.NoError(t, err)
	assert.Equal(t, stores, output.Stores)
	assert.Equal(t, int64(1), output.Total)
}

func TestStoreService_UpdateStore_NotOwner(t *testing.T) {
	service, storeRepo, _ := createTestStoreService(t)

	ctx := context.Background()
	storeID := uuid.New()

	storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: uuid.New()}, nil)

	newName := "Hijacked"
	store, err := service.UpdateStore(ctx, uuid.New(), storeID, usecase.UpdateStoreInput{
		Name: &newName,
	})

	assert.Error(t, err)
	assert.Nil(t, store)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreOwnershipViolation))
}

func TestStoreService_UpdateStore_PartialPatch(t *testing.T) {
	service, storeRepo, _ := createTestStoreService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()

	storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID, Name: "Corner Cafe", Category: "food"}, nil)
	storeRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(store *entity.Store) bool {
			return store.Name == "Corner Cafe 2" && store.Category == "food"
		})).
		Return(nil)

	newName := "Corner Cafe 2"
	store, err := service.UpdateStore(ctx, ownerID, storeID, usecase.UpdateStoreInput{
		Name: &newName,
	})

	require.NoError(t, err)
	assert.Equal(t, "Corner Cafe 2", store.Name)
}

func TestStoreService_DeleteStore_Success(t *testing.T) {
	service, storeRepo, _ := createTestStoreService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()

	storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil)
	storeRepo.EXPECT().Delete(ctx, storeID).Return(nil)

	err := service.DeleteStore(ctx, ownerID, storeID)

	assert.NoError(t, err)
}

func TestStoreService_GetStoreShareQR_Success(t *testing.T) {
	service, storeRepo, qrcodeService := createTestStoreService(t)

	ctx := context.Background()
	storeID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID}, nil)
	qrcodeService.EXPECT().GenerateStoreQR(storeID).Return(png, nil)

	got, err := service.GetStoreShareQR(ctx, storeID)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestStoreService_GetStoreShareQR_StoreNotFound(t *testing.T) {
	service, storeRepo, _ := createTestStoreService(t)

	ctx := context.Background()
	storeID := uuid.New()

	storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(nil, repository.ErrStoreNotFound)

	got, err := service.GetStoreShareQR(ctx, storeID)

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreNotFound))
}
