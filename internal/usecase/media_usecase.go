package usecase

import (
	"context"
	"io"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadMediaInput defines the data required to attach media to a product.
type UploadMediaInput struct {
	ProductID   uuid.UUID
	Filename    string
	ContentType string
	SizeBytes   int64
	Content     io.Reader
}

// MediaUsecase defines the interface for media upload operations.
// Uploads are restricted to the owner of the product's store, capped per kind.
type MediaUsecase interface {
	UploadProductMedia(ctx context.Context, ownerID uuid.UUID, input UploadMediaInput) (*entity.ProductMedia, error)
}
