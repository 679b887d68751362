// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for influencer persistence.
var (
	// ErrInfluencerNotFound is returned when an influencer profile is not found.
	ErrInfluencerNotFound = errors.New("influencer not found")
	// ErrInfluencerExists is returned when a user already has an influencer profile.
	ErrInfluencerExists = errors.New("influencer profile already exists")
)

// InfluencerListFilter narrows down influencer listing queries.
type InfluencerListFilter struct {
	Status *entity.InfluencerStatus
	Limit  int
	Offset int
}

// InfluencerRepository defines the standard operations for influencer persistence.
type InfluencerRepository interface {
	// Create persists a new influencer profile, including its social accounts.
	// Returns ErrInfluencerExists when the user already registered a profile.
	Create(ctx context.Context, influencer *entity.Influencer) error

	// FindByID retrieves a single influencer by its unique ID, with social accounts preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Influencer, error)

	// FindByUserID retrieves the influencer profile belonging to a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Influencer, error)

	// List retrieves influencers matching the given filter, newest first.
	List(ctx context.Context, filter InfluencerListFilter) ([]*entity.Influencer, int64, error)

	// Update modifies an existing influencer profile in the storage.
	Update(ctx context.Context, influencer *entity.Influencer) error

	// ReplaceSocialAccounts swaps the full social account set of an influencer.
	ReplaceSocialAccounts(ctx context.Context, influencerID uuid.UUID, accounts []entity.SocialAccount) error

	// Delete removes an influencer profile and its social accounts.
	Delete(ctx context.Context, id uuid.UUID) error
}
