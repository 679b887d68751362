package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// productService implements the ProductUsecase interface.
// Products and service listings share the same flow; the Kind column
// discriminates them.
type productService struct {
	productRepo repository.ProductRepository
	storeRepo   repository.StoreRepository
	logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		productRepo: productRepo,
		storeRepo:   storeRepo,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct creates a product or service listing in the caller's store.
func (srv *productService) CreateProduct(ctx context.Context, ownerID uuid.UUID, input usecase.CreateProductInput) (*entity.Product, error) {
	if !input.Kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown listing kind")
	}
	if err := validateSchedule(input.ScheduledPublishAt, input.ScheduledUnpublishAt); err != nil {
		return nil, err
	}

	if err := srv.requireStoreOwner(ctx, ownerID, input.StoreID); err != nil {
		return nil, err
	}

	variations := make([]entity.ProductVariation, 0, len(input.Variations))
	for _, variation := range input.Variations {
		variations = append(variations, entity.ProductVariation{
			Name:  variation.Name,
			Value: variation.Value,
			Price: variation.Price,
			Stock: variation.Stock,
		})
	}

	product := &entity.Product{
		StoreID:              input.StoreID,
		Kind:                 input.Kind,
		Title:                input.Title,
		Description:          input.Description,
		Price:                input.Price,
		Currency:             input.Currency,
		Status:               entity.ProductStatusDraft,
		ScheduledPublishAt:   input.ScheduledPublishAt,
		ScheduledUnpublishAt: input.ScheduledUnpublishAt,
		Variations:           variations,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("Product created",
		slog.Any("productID", product.ID),
		slog.String("kind", string(product.Kind)),
	)

	return product, nil
}

// GetProduct retrieves a single listing by its ID.
func (srv *productService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("get product failed")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// ListProducts retrieves listings matching the given filter.
func (srv *productService) ListProducts(ctx context.Context, input usecase.ListProductsInput) (*usecase.ProductListOutput, error) {
	products, total, err := srv.productRepo.List(ctx, repository.ProductListFilter{
		StoreID: input.StoreID,
		Kind:    input.Kind,
		Status:  input.Status,
		Search:  input.Search,
		Limit:   input.Limit,
		Offset:  input.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductListOutput{Products: products, Total: total}, nil
}

// UpdateProduct applies the given partial update, restricted to the store owner.
func (srv *productService) UpdateProduct(ctx context.Context, ownerID, productID uuid.UUID, input usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.requireOwnedProduct(ctx, ownerID, productID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		product.Title = *input.Title
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Currency != nil {
		product.Currency = *input.Currency
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown listing status")
		}
		product.Status = *input.Status
	}
	if input.ScheduledPublishAt != nil {
		product.ScheduledPublishAt = input.ScheduledPublishAt
	}
	if input.ClearScheduledPublish {
		product.ScheduledPublishAt = nil
	}
	if input.ScheduledUnpublishAt != nil {
		product.ScheduledUnpublishAt = input.ScheduledUnpublishAt
	}
	if input.ClearScheduledUnpublish {
		product.ScheduledUnpublishAt = nil
	}

	if err := validateSchedule(product.ScheduledPublishAt, product.ScheduledUnpublishAt); err != nil {
		return nil, err
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	if input.Variations != nil {
		variations := make([]entity.ProductVariation, 0, len(input.Variations))
		for _, variation := range input.Variations {
			variations = append(variations, entity.ProductVariation{
				Name:  variation.Name,
				Value: variation.Value,
				Price: variation.Price,
				Stock: variation.Stock,
			})
		}
		if err := srv.productRepo.ReplaceVariations(ctx, productID, variations); err != nil {
			return nil, errors.Wrap(err, "failed to replace variations")
		}
		product.Variations = variations
	}

	return product, nil
}

// DeleteProduct removes a listing, restricted to the store owner.
func (srv *productService) DeleteProduct(ctx context.Context, ownerID, productID uuid.UUID) error {
	if _, err := srv.requireOwnedProduct(ctx, ownerID, productID); err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}
	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID))

	return nil
}

// RunScheduledSweep publishes and unpublishes listings whose schedule has come
// due. Status updates clear the triggering schedule column, so a listing that
// was already swept never fires again.
func (srv *productService) RunScheduledSweep(ctx context.Context, now time.Time) (*usecase.SweepResult, error) {
	result := &usecase.SweepResult{}

	duePublish, err := srv.productRepo.FindDueForPublish(ctx, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products due for publish")
	}
	for _, product := range duePublish {
		// Only drafts go live; anything else in the due set is stale.
		if product.Status != entity.ProductStatusDraft {
			continue
		}
		if err := srv.productRepo.UpdateStatus(ctx, product.ID, entity.ProductStatusActive); err != nil {
			srv.log(ctx).Error("Failed to publish scheduled product",
				slog.Any("productID", product.ID), slog.Any("error", err))

			continue
		}
		result.Published++
	}

	dueUnpublish, err := srv.productRepo.FindDueForUnpublish(ctx, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products due for unpublish")
	}
	for _, product := range dueUnpublish {
		if product.Status != entity.ProductStatusActive {
			continue
		}
		if err := srv.productRepo.UpdateStatus(ctx, product.ID, entity.ProductStatusArchived); err != nil {
			srv.log(ctx).Error("Failed to unpublish scheduled product",
				slog.Any("productID", product.ID), slog.Any("error", err))

			continue
		}
		result.Unpublished++
	}

	if result.Published > 0 || result.Unpublished > 0 {
		srv.log(ctx).Info("Scheduled sweep applied changes",
			slog.Int("published", result.Published),
			slog.Int("unpublished", result.Unpublished),
		)
	}

	return result, nil
}

// requireStoreOwner verifies the caller owns the given store.
func (srv *productService) requireStoreOwner(ctx context.Context, ownerID, storeID uuid.UUID) error {
	store, err := srv.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return domainerrors.ErrStoreNotFound.WrapMessage("store lookup failed")
		}

		return errors.Wrap(err, "failed to find store")
	}
	if store.OwnerID != ownerID {
		return domainerrors.ErrStoreOwnershipViolation.WrapMessage("store access denied")
	}

	return nil
}

// requireOwnedProduct loads a listing and verifies the caller owns its store.
func (srv *productService) requireOwnedProduct(ctx context.Context, ownerID, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := srv.requireStoreOwner(ctx, ownerID, product.StoreID); err != nil {
		if errors.Is(err, domainerrors.ErrStoreOwnershipViolation) {
			return nil, domainerrors.ErrProductOwnershipViolation.WrapMessage("product access denied")
		}

		return nil, err
	}

	return product, nil
}

// validateSchedule rejects schedules where unpublish does not come after publish.
func validateSchedule(publishAt, unpublishAt *time.Time) error {
	if publishAt != nil && unpublishAt != nil && !unpublishAt.After(*publishAt) {
		return domainerrors.ErrValidationFailed.WithDetails("scheduled unpublish must come after scheduled publish")
	}

	return nil
}
