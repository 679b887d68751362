package auth

import (
	"testing"

	"marketplace/config"
	domainerrors "marketplace/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        72,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("WrongPassword123!", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_ValidateStrength(t *testing.T) {
	hasher := newTestHasher()

	assert.NoError(t, hasher.ValidateStrength("StrongPass123!"))

	weakPasswords := []string{
		"123",         // Too short
		"PASSWORD123!", // No lowercase
		"password123!", // No uppercase
		"PasswordABC!", // No numbers
		"Password1234", // No special characters
	}

	for _, weakPassword := range weakPasswords {
		err := hasher.ValidateStrength(weakPassword)
		assert.Error(t, err, "Expected error for weak password: %s", weakPassword)

		var appErr domainerrors.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrPasswordStrength.ErrorCode(), appErr.ErrorCode())
	}
}

func TestBcryptHasher_ValidateStrengthWithoutPolicy(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{}).(*bcryptHasher)

	// No policy configured means any password passes.
	assert.NoError(t, hasher.ValidateStrength("abc"))
}
