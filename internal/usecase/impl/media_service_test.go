package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mediaServiceFixtures holds all test dependencies for media service tests.
type mediaServiceFixtures struct {
	service      usecase.MediaUsecase
	mediaStorage *mockSvc.MockMediaStorage
	productRepo  *mockRepo.MockProductRepository
	storeRepo    *mockRepo.MockStoreRepository
}

func createTestMediaService(t *testing.T) mediaServiceFixtures {
	mediaStorage := mockSvc.NewMockMediaStorage(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Upload: &config.UploadConfig{
			MaxImageSize: 1 << 20,
			MaxVideoSize: 8 << 20,
		},
	}
	service := NewMediaService(cfg, mediaStorage, productRepo, storeRepo, logger)

	return mediaServiceFixtures{
		service:      service,
		mediaStorage: mediaStorage,
		productRepo:  productRepo,
		storeRepo:    storeRepo,
	}
}

func TestMediaService_UploadProductMedia_Success(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()
	productID := uuid.New()
	product := &entity.Product{
		ID:      productID,
		StoreID: storeID,
		Media:   []entity.ProductMedia{{ID: uuid.New()}},
	}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(product, nil)
	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil)
	fx.mediaStorage.EXPECT().
		Save(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "products/"+productID.String()+"/") &&
				strings.HasSuffix(key, ".jpg")
		}), "image/jpeg", mock.Anything).
		RunAndReturn(func(ctx context.Context, key string, contentType string, content io.Reader) (string, error) {
			_, err := io.Copy(io.Discard, content)

			return "/uploads/products/abc.jpg", err
		})
	fx.productRepo.EXPECT().
		AddMedia(ctx, mock.MatchedBy(func(media *entity.ProductMedia) bool {
			return media.ProductID == productID &&
				media.Kind == "image" &&
				media.Position == 1
		})).
		Return(nil)

	media, err := fx.service.UploadProductMedia(ctx, ownerID, usecase.UploadMediaInput{
		ProductID:   productID,
		Filename:    "cover.jpg",
		ContentType: "image/jpeg",
		SizeBytes:   512 << 10,
		Content:     strings.NewReader("jpeg bytes"),
	})

	require.NoError(t, err)
	assert.Equal(t, "/uploads/products/abc.jpg", media.URL)
	assert.Equal(t, "image/jpeg", media.ContentType)
	assert.Equal(t, int64(len("jpeg bytes")), media.SizeBytes)
}

func TestMediaService_UploadProductMedia_RejectsStreamOverLimit(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()
	productID := uuid.New()
	var storedKey string

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, StoreID: storeID}, nil)
	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil)
	fx.mediaStorage.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "image/jpeg", mock.Anything).
		RunAndReturn(func(ctx context.Context, key string, contentType string, content io.Reader) (string, error) {
			storedKey = key
			_, err := io.Copy(io.Discard, content)

			return "/uploads/products/huge.jpg", err
		})
	fx.mediaStorage.EXPECT().
		Delete(ctx, mock.MatchedBy(func(key string) bool {
			return key == storedKey
		})).
		Return(nil)

	// Declared size is within the 1 MiB image cap, but the stream is not.
	media, err := fx.service.UploadProductMedia(ctx, ownerID, usecase.UploadMediaInput{
		ProductID:   productID,
		Filename:    "huge.jpg",
		ContentType: "image/jpeg",
		SizeBytes:   1024,
		Content:     strings.NewReader(strings.Repeat("x", (1<<20)+1)),
	})

	assert.Error(t, err)
	assert.Nil(t, media)
	assert.True(t, errors.Is(err, domainerrors.ErrMediaTooLarge))
}

func TestMediaService_UploadProductMedia_RejectsUnderDeclaredSize(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()
	productID := uuid.New()
	var storedKey string

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, StoreID: storeID}, nil)
	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil)
	fx.mediaStorage.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "image/jpeg", mock.Anything).
		RunAndReturn(func(ctx context.Context, key string, contentType string, content io.Reader) (string, error) {
			storedKey = key
			_, err := io.Copy(io.Discard, content)

			return "/uploads/products/cover.jpg", err
		})
	fx.mediaStorage.EXPECT().
		Delete(ctx, mock.MatchedBy(func(key string) bool {
			return key == storedKey
		})).
		Return(nil)

	media, err := fx.service.UploadProductMedia(ctx, ownerID, usecase.UploadMediaInput{
		ProductID:   productID,
		Filename:    "cover.jpg",
		ContentType: "image/jpeg",
		SizeBytes:   16,
		Content:     strings.NewReader(strings.Repeat("x", 4096)),
	})

	assert.Error(t, err)
	assert.Nil(t, media)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMediaService_UploadProductMedia_UnsupportedType(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()

	media, err := fx.service.UploadProductMedia(ctx, uuid.New(), usecase.UploadMediaInput{
		ProductID:   uuid.New(),
		Filename:    "menu.pdf",
		ContentType: "application/pdf",
		SizeBytes:   1024,
		Content:     strings.NewReader("%PDF"),
	})

	assert.Error(t, err)
	assert.Nil(t, media)
	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedMediaType))
}

func TestMediaService_UploadProductMedia_TooLarge(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()

	media, err := fx.service.UploadProductMedia(ctx, uuid.New(), usecase.UploadMediaInput{
		ProductID:   uuid.New(),
		Filename:    "huge.jpg",
		ContentType: "image/jpeg",
		SizeBytes:   2 << 20,
		Content:     strings.NewReader("too big"),
	})

	assert.Error(t, err)
	assert.Nil(t, media)
	assert.True(t, errors.Is(err, domainerrors.ErrMediaTooLarge))
}

func TestMediaService_UploadProductMedia_DefaultCaps(t *testing.T) {
	mediaStorage := mockSvc.NewMockMediaStorage(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// No upload config: 5 MiB for images, 50 MiB for videos.
	service := NewMediaService(&config.Config{}, mediaStorage, productRepo, storeRepo, logger)

	ctx := context.Background()

	_, err := service.UploadProductMedia(ctx, uuid.New(), usecase.UploadMediaInput{
		ProductID:   uuid.New(),
		Filename:    "big.jpg",
		ContentType: "image/jpeg",
		SizeBytes:   (5 << 20) + 1,
		Content:     strings.NewReader(""),
	})
	assert.True(t, errors.Is(err, domainerrors.ErrMediaTooLarge))

	_, err = service.UploadProductMedia(ctx, uuid.New(), usecase.UploadMediaInput{
		ProductID:   uuid.New(),
		Filename:    "big.mp4",
		ContentType: "video/mp4",
		SizeBytes:   (50 << 20) + 1,
		Content:     strings.NewReader(""),
	})
	assert.True(t, errors.Is(err, domainerrors.ErrMediaTooLarge))
}

func TestMediaService_UploadProductMedia_NotOwner(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	storeID := uuid.New()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, StoreID: storeID}, nil)
	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: uuid.New()}, nil)

	media, err := fx.service.UploadProductMedia(ctx, uuid.New(), usecase.UploadMediaInput{
		ProductID:   productID,
		Filename:    "cover.jpg",
		ContentType: "image/jpeg",
		SizeBytes:   1024,
		Content:     strings.NewReader("jpeg bytes"),
	})

	assert.Error(t, err)
	assert.Nil(t, media)
	assert.True(t, errors.Is(err, domainerrors.ErrProductOwnershipViolation))
}

func TestMediaService_UploadProductMedia_CleansUpWhenAttachFails(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()
	productID := uuid.New()
	var storedKey string

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, StoreID: storeID}, nil)
	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil)
	fx.mediaStorage.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "video/mp4", mock.Anything).
		Run(func(ctx context.Context, key string, contentType string, content io.Reader) {
			storedKey = key
		}).
		Return("/uploads/products/clip.mp4", nil)
	fx.productRepo.EXPECT().
		AddMedia(ctx, mock.AnythingOfType("*entity.ProductMedia")).
		Return(errors.New("insert failed"))
	fx.mediaStorage.EXPECT().
		Delete(ctx, mock.MatchedBy(func(key string) bool {
			return key == storedKey
		})).
		Return(nil)

	media, err := fx.service.UploadProductMedia(ctx, ownerID, usecase.UploadMediaInput{
		ProductID:   productID,
		Filename:    "clip.mp4",
		ContentType: "video/mp4",
		SizeBytes:   4 << 20,
		Content:     strings.NewReader("mp4 bytes"),
	})

	assert.Error(t, err)
	assert.Nil(t, media)
}
