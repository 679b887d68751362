// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Create persists a new product entity, including its variations and media.
// GORM's Create with associations inserts the dependent rows in the same statement batch.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrStoreNotFound.WrapMessage("invalid store reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt
	for i := range productM.Variations {
		product.Variations[i].ID = productM.Variations[i].ID
		product.Variations[i].ProductID = productM.ID
	}

	return nil
}

// FindByID retrieves a single product by its unique ID, with variations and media preloaded.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Variations").
		Preload("Media", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_media.position ASC")
		}).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// List retrieves products matching the given filter, newest first.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductListFilter) ([]*entity.Product, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if filter.StoreID != nil {
		query = query.Where("store_id = ?", *filter.StoreID)
	}
	if filter.Kind != nil {
		query = query.Where("kind = ?", string(*filter.Kind))
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Search != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	query = query.Preload("Variations").Preload("Media").Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var productModels []*model.ProductModel
	if err := query.Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, total, nil
}

// Update modifies an existing product entity in the database.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"title":                  product.Title,
			"description":            product.Description,
			"price":                  product.Price,
			"currency":               product.Currency,
			"status":                 string(product.Status),
			"scheduled_publish_at":   product.ScheduledPublishAt,
			"scheduled_unpublish_at": product.ScheduledUnpublishAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product and its dependent variations and media.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// ReplaceVariations swaps the full variation set of a product.
func (repo *productRepository) ReplaceVariations(ctx context.Context, productID uuid.UUID, variations []entity.ProductVariation) error {
	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.ProductVariationModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear product variations")
	}

	if len(variations) == 0 {
		return nil
	}

	variationModels := make([]model.ProductVariationModel, 0, len(variations))
	for _, variation := range variations {
		variationModels = append(variationModels, model.ProductVariationModel{
			ID:        variation.ID,
			ProductID: productID,
			Name:      variation.Name,
			Value:     variation.Value,
			Price:     variation.Price,
			Stock:     variation.Stock,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&variationModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace product variations")
	}

	return nil
}

// AddMedia attaches an uploaded media asset to a product.
func (repo *productRepository) AddMedia(ctx context.Context, media *entity.ProductMedia) error {
	mediaM := &model.ProductMediaModel{
		ID:          media.ID,
		ProductID:   media.ProductID,
		Kind:        media.Kind,
		URL:         media.URL,
		ContentType: media.ContentType,
		SizeBytes:   media.SizeBytes,
		Position:    media.Position,
	}

	if err := repo.db.WithContext(ctx).Create(mediaM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("invalid product reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add product media")
	}

	media.ID = mediaM.ID

	return nil
}

// FindDueForPublish retrieves draft products whose scheduled publish time has
// passed. Only drafts qualify; an archived listing keeps its schedule but is
// never resurrected by the sweep.
func (repo *productRepository) FindDueForPublish(ctx context.Context, now time.Time) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.ProductStatusDraft)).
		Where("scheduled_publish_at IS NOT NULL AND scheduled_publish_at <= ?", now).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products due for publish")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FindDueForUnpublish retrieves active products whose scheduled unpublish time has passed.
func (repo *productRepository) FindDueForUnpublish(ctx context.Context, now time.Time) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.ProductStatusActive)).
		Where("scheduled_unpublish_at IS NOT NULL AND scheduled_unpublish_at <= ?", now).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products due for unpublish")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// UpdateStatus transitions a product to the given status and clears the
// schedule field that triggered the transition, so a sweep never fires twice.
func (repo *productRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ProductStatus) error {
	updates := map[string]any{"status": string(status)}
	switch status {
	case entity.ProductStatusActive:
		updates["scheduled_publish_at"] = gorm.Expr("NULL")
	case entity.ProductStatusArchived, entity.ProductStatusDraft:
		updates["scheduled_unpublish_at"] = gorm.Expr("NULL")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// toProductDomain maps a persistence model back to a pure domain entity.
func toProductDomain(m *model.ProductModel) *entity.Product {
	variations := make([]entity.ProductVariation, 0, len(m.Variations))
	for _, variationM := range m.Variations {
		variations = append(variations, entity.ProductVariation{
			ID:        variationM.ID,
			ProductID: variationM.ProductID,
			Name:      variationM.Name,
			Value:     variationM.Value,
			Price:     variationM.Price,
			Stock:     variationM.Stock,
		})
	}

	media := make([]entity.ProductMedia, 0, len(m.Media))
	for _, mediaM := range m.Media {
		media = append(media, entity.ProductMedia{
			ID:          mediaM.ID,
			ProductID:   mediaM.ProductID,
			Kind:        mediaM.Kind,
			URL:         mediaM.URL,
			ContentType: mediaM.ContentType,
			SizeBytes:   mediaM.SizeBytes,
			Position:    mediaM.Position,
		})
	}

	return &entity.Product{
		ID:                   m.ID,
		StoreID:              m.StoreID,
		Kind:                 entity.ProductKind(m.Kind),
		Title:                m.Title,
		Description:          m.Description,
		Price:                m.Price,
		Currency:             m.Currency,
		Status:               entity.ProductStatus(m.Status),
		ScheduledPublishAt:   m.ScheduledPublishAt,
		ScheduledUnpublishAt: m.ScheduledUnpublishAt,
		Variations:           variations,
		Media:                media,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// fromProductDomain maps a pure domain entity to a GORM persistence model.
func fromProductDomain(product *entity.Product) *model.ProductModel {
	variations := make([]model.ProductVariationModel, 0, len(product.Variations))
	for _, variation := range product.Variations {
		variations = append(variations, model.ProductVariationModel{
			ID:        variation.ID,
			ProductID: variation.ProductID,
			Name:      variation.Name,
			Value:     variation.Value,
			Price:     variation.Price,
			Stock:     variation.Stock,
		})
	}

	media := make([]model.ProductMediaModel, 0, len(product.Media))
	for _, item := range product.Media {
		media = append(media, model.ProductMediaModel{
			ID:          item.ID,
			ProductID:   item.ProductID,
			Kind:        item.Kind,
			URL:         item.URL,
			ContentType: item.ContentType,
			SizeBytes:   item.SizeBytes,
			Position:    item.Position,
		})
	}

	return &model.ProductModel{
		ID:                   product.ID,
		StoreID:              product.StoreID,
		Kind:                 string(product.Kind),
		Title:                product.Title,
		Description:          product.Description,
		Price:                product.Price,
		Currency:             product.Currency,
		Status:               string(product.Status),
		ScheduledPublishAt:   product.ScheduledPublishAt,
		ScheduledUnpublishAt: product.ScheduledUnpublishAt,
		Variations:           variations,
		Media:                media,
		CreatedAt:            product.CreatedAt,
		UpdatedAt:            product.UpdatedAt,
	}
}
