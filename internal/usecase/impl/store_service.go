package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// storeService implements the StoreUsecase interface.
type storeService struct {
	storeRepo     repository.StoreRepository
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(
	storeRepo repository.StoreRepository,
	qrcodeService service.QRCodeService,
	logger *slog.Logger,
) usecase.StoreUsecase {
	return &storeService{
		storeRepo:     storeRepo,
		qrcodeService: qrcodeService,
		logger:        logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateStore opens a new store owned by the given user.
func (srv *storeService) CreateStore(ctx context.Context, ownerID uuid.UUID, input usecase.CreateStoreInput) (*entity.Store, error) {
	store := &entity.Store{
		OwnerID:     ownerID,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		LogoURL:     input.LogoURL,
		CoverURL:    input.CoverURL,
	}

	if err := srv.storeRepo.Create(ctx, store); err != nil {
		srv.log(ctx).Error("Failed to create store", slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("Store created", slog.Any("storeID", store.ID), slog.Any("ownerID", ownerID))

	return store, nil
}

// GetStore retrieves a single store by its ID.
func (srv *storeService) GetStore(ctx context.Context, storeID uuid.UUID) (*entity.Store, error) {
	store, err := srv.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound.WrapMessage("get store failed")
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	return store, nil
}

// ListStores retrieves public store listings.
func (srv *storeService) ListStores(ctx context.Context, input usecase.ListStoresInput) (*usecase.StoreListOutput, error) {
	stores, total, err := srv.storeRepo.List(ctx, repository.StoreListFilter{
		Category: input.Category,
		Search:   input.Search,
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return &usecase.StoreListOutput{Stores: stores, Total: total}, nil
}

// ListOwnStores retrieves all stores the given user owns.
func (srv *storeService) ListOwnStores(ctx context.Context, ownerID uuid.UUID) ([]*entity.Store, error) {
	stores, err := srv.storeRepo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own stores")
	}

	return stores, nil
}

// UpdateStore applies the given partial update, restricted to the store owner.
func (srv *storeService) UpdateStore(ctx context.Context, ownerID, storeID uuid.UUID, input usecase.UpdateStoreInput) (*entity.Store, error) {
	store, err := srv.requireOwnedStore(ctx, ownerID, storeID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		store.Name = *input.Name
	}
	if input.Description != nil {
		store.Description = *input.Description
	}
	if input.Category != nil {
		store.Category = *input.Category
	}
	if input.LogoURL != nil {
		store.LogoURL = *input.LogoURL
	}
	if input.CoverURL != nil {
		store.CoverURL = *input.CoverURL
	}

	if err := srv.storeRepo.Update(ctx, store); err != nil {
		return nil, errors.Wrap(err, "failed to update store")
	}

	return store, nil
}

// DeleteStore removes a store, restricted to its owner.
func (srv *storeService) DeleteStore(ctx context.Context, ownerID, storeID uuid.UUID) error {
	if _, err := srv.requireOwnedStore(ctx, ownerID, storeID); err != nil {
		return err
	}

	if err := srv.storeRepo.Delete(ctx, storeID); err != nil {
		return errors.Wrap(err, "failed to delete store")
	}
	srv.log(ctx).Info("Store deleted", slog.Any("storeID", storeID))

	return nil
}

// GetStoreShareQR renders a PNG QR code linking to the store page.
func (srv *storeService) GetStoreShareQR(ctx context.Context, storeID uuid.UUID) ([]byte, error) {
	if _, err := srv.GetStore(ctx, storeID); err != nil {
		return nil, err
	}

	qrBytes, err := srv.qrcodeService.GenerateStoreQR(storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate store QR")
	}

	return qrBytes, nil
}

// requireOwnedStore loads a store and verifies the caller owns it.
func (srv *storeService) requireOwnedStore(ctx context.Context, ownerID, storeID uuid.UUID) (*entity.Store, error) {
	store, err := srv.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound.WrapMessage("store lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find store")
	}
	if store.OwnerID != ownerID {
		return nil, domainerrors.ErrStoreOwnershipViolation.WrapMessage("store access denied")
	}

	return store, nil
}
