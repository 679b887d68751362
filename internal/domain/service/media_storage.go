package service

import (
	"context"
	"io"
)

// MediaStorage defines the interface for persisting uploaded media assets.
// This abstracts the blob backend (local disk, cloud bucket) from the use cases.
type MediaStorage interface {
	// Save writes the media content under the given key and returns its public URL.
	Save(ctx context.Context, key string, contentType string, content io.Reader) (string, error)

	// Delete removes a stored media asset by its key.
	Delete(ctx context.Context, key string) error
}
