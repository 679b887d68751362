// Package storage persists uploaded media through the gocloud.dev blob abstraction.
package storage

import (
	"context"
	"io"
	"net/url"
	"os"
	"path"
	"strings"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
)

// blobStorage implements the MediaStorage interface on top of a blob.Bucket.
type blobStorage struct {
	bucket       *blob.Bucket
	publicPrefix string
}

// Params holds dependencies for MediaStorage, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// New opens a local file-backed bucket under the configured upload directory.
// The blob API keeps the door open for cloud buckets without touching callers.
func New(params Params) (service.MediaStorage, error) {
	cfg := params.Config.Upload
	if cfg == nil || cfg.Dir == "" {
		return nil, errors.New("upload directory must be configured")
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create upload directory")
	}

	bucket, err := fileblob.OpenBucket(cfg.Dir, &fileblob.Options{
		CreateDir: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open upload bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:       bucket,
		publicPrefix: cfg.PublicPrefix,
	}, nil
}

// Save writes the media content under the given key and returns its public URL.
func (s *blobStorage) Save(ctx context.Context, key string, contentType string, content io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(writer, content); err != nil {
		writer.Close()

		return "", errors.Wrap(err, "failed to write media content")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize media content")
	}

	return s.publicURL(key), nil
}

// Delete removes a stored media asset by its key.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrap(err, "failed to delete media content")
	}

	return nil
}

func (s *blobStorage) publicURL(key string) string {
	// Keys are generated internally, but escape anyway so odd characters
	// never break the returned URL. Escaping is per segment: the separators
	// must survive so the URL keeps mapping to the nested file layout.
	segments := strings.Split(key, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return path.Join(s.publicPrefix, path.Join(segments...))
}
