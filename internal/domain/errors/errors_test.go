package errors

import (
	"testing"

	"marketplace/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsSentinelIdentity(t *testing.T) {
	err := ErrValidationFailed.WithDetails("display name is required")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.Equal(t, "display name is required", err.Details())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestBaseError_WithDetailsThenWrapKeepsSentinelIdentity(t *testing.T) {
	err := ErrMediaTooLarge.WithDetails("limit is 5.0 MB for image uploads").
		WrapMessage("upload rejected")

	assert.True(t, errors.Is(err, ErrMediaTooLarge))
	assert.False(t, errors.Is(err, ErrUnsupportedMediaType))
}

func TestBaseError_IsDistinguishesErrorCodes(t *testing.T) {
	assert.False(t, errors.Is(ErrUserNotFound, ErrStoreNotFound))
	assert.False(t, errors.Is(ErrValidationFailed.WithDetails("x"), errors.New("other")))
}
