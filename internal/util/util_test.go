package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "1.0 KB", FormatBytes(1024))
	assert.Equal(t, "5.0 MB", FormatBytes(5*1024*1024))
	assert.Equal(t, "50.0 MB", FormatBytes(50*1024*1024))
	assert.Equal(t, "1.5 GB", FormatBytes(3*1024*1024*1024/2))
}
