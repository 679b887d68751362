package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"
	"marketplace/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	mediaKindImage = "image"
	mediaKindVideo = "video"

	defaultMaxImageSize = int64(5 << 20)  // 5 MiB
	defaultMaxVideoSize = int64(50 << 20) // 50 MiB
)

// mediaService implements the MediaUsecase interface.
type mediaService struct {
	mediaStorage service.MediaStorage
	productRepo  repository.ProductRepository
	storeRepo    repository.StoreRepository
	maxImageSize int64
	maxVideoSize int64
	logger       *slog.Logger
}

// NewMediaService is the constructor for mediaService.
func NewMediaService(
	cfg *config.Config,
	mediaStorage service.MediaStorage,
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
	logger *slog.Logger,
) usecase.MediaUsecase {
	maxImageSize := defaultMaxImageSize
	maxVideoSize := defaultMaxVideoSize
	if cfg.Upload != nil {
		if cfg.Upload.MaxImageSize > 0 {
			maxImageSize = cfg.Upload.MaxImageSize
		}
		if cfg.Upload.MaxVideoSize > 0 {
			maxVideoSize = cfg.Upload.MaxVideoSize
		}
	}

	return &mediaService{
		mediaStorage: mediaStorage,
		productRepo:  productRepo,
		storeRepo:    storeRepo,
		maxImageSize: maxImageSize,
		maxVideoSize: maxVideoSize,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *mediaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadProductMedia stores an image or video and attaches it to a listing,
// restricted to the owner of the listing's store.
func (srv *mediaService) UploadProductMedia(ctx context.Context, ownerID uuid.UUID, input usecase.UploadMediaInput) (*entity.ProductMedia, error) {
	kind, sizeLimit, err := srv.classifyMedia(input.ContentType)
	if err != nil {
		return nil, err
	}
	if input.SizeBytes > sizeLimit {
		return nil, domainerrors.ErrMediaTooLarge.WithDetails(
			fmt.Sprintf("limit is %s for %s uploads", util.FormatBytes(sizeLimit), kind))
	}

	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("upload rejected")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	store, err := srv.storeRepo.FindByID(ctx, product.StoreID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find store")
	}
	if store.OwnerID != ownerID {
		return nil, domainerrors.ErrProductOwnershipViolation.WrapMessage("upload rejected")
	}

	key := mediaKey(product.ID, input.Filename)
	// The declared size is a client claim; count the bytes that actually
	// flow through and verify after the write.
	counted := &countingReader{reader: io.LimitReader(input.Content, sizeLimit+1)}
	url, err := srv.mediaStorage.Save(ctx, key, input.ContentType, counted)
	if err != nil {
		srv.log(ctx).Error("Failed to store media", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store media")
	}
	if counted.count > sizeLimit {
		srv.discardMedia(ctx, key)

		return nil, domainerrors.ErrMediaTooLarge.WithDetails(
			fmt.Sprintf("limit is %s for %s uploads", util.FormatBytes(sizeLimit), kind))
	}
	if counted.count > input.SizeBytes {
		srv.discardMedia(ctx, key)

		return nil, domainerrors.ErrValidationFailed.WithDetails("content exceeds declared size")
	}

	media := &entity.ProductMedia{
		ProductID:   product.ID,
		Kind:        kind,
		URL:         url,
		ContentType: input.ContentType,
		SizeBytes:   counted.count,
		Position:    len(product.Media),
	}
	if err := srv.productRepo.AddMedia(ctx, media); err != nil {
		if deleteErr := srv.mediaStorage.Delete(ctx, key); deleteErr != nil {
			srv.log(ctx).Warn("Failed to clean up orphaned media", slog.Any("error", deleteErr))
		}

		return nil, errors.Wrap(err, "failed to attach media")
	}
	srv.log(ctx).Info("Product media uploaded",
		slog.Any("productID", product.ID),
		slog.String("kind", kind),
		slog.String("size", util.FormatBytes(counted.count)),
	)

	return media, nil
}

// discardMedia best-effort removes a stored object that failed post-write checks.
func (srv *mediaService) discardMedia(ctx context.Context, key string) {
	if err := srv.mediaStorage.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to clean up rejected media", slog.Any("error", err))
	}
}

// countingReader tracks how many bytes were read through it.
type countingReader struct {
	reader io.Reader
	count  int64
}

func (r *countingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.count += int64(n)

	return n, err
}

// classifyMedia maps a MIME type to a media kind and its size limit.
func (srv *mediaService) classifyMedia(contentType string) (string, int64, error) {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return mediaKindImage, srv.maxImageSize, nil
	case strings.HasPrefix(contentType, "video/"):
		return mediaKindVideo, srv.maxVideoSize, nil
	default:
		return "", 0, domainerrors.ErrUnsupportedMediaType.WithDetails(contentType)
	}
}

// mediaKey builds a collision-free storage key preserving the file extension.
func mediaKey(productID uuid.UUID, filename string) string {
	ext := filepath.Ext(filename)

	return fmt.Sprintf("products/%s/%s%s", productID, uuid.NewString(), ext)
}
