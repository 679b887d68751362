package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL_KeepsPathSeparators(t *testing.T) {
	s := &blobStorage{publicPrefix: "/uploads"}

	url := s.publicURL("products/d2f1c7a0-0000-0000-0000-000000000000/cover.jpg")

	assert.Equal(t, "/uploads/products/d2f1c7a0-0000-0000-0000-000000000000/cover.jpg", url)
}

func TestPublicURL_EscapesWithinSegments(t *testing.T) {
	s := &blobStorage{publicPrefix: "/uploads"}

	url := s.publicURL("products/abc/summer sale.jpg")

	assert.Equal(t, "/uploads/products/abc/summer%20sale.jpg", url)
}
