// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// StoreReview is a customer's review of a store.
// Each (StoreID, UserID) pair has at most one review.
type StoreReview struct {
	ID        uuid.UUID `json:"id"`
	StoreID   uuid.UUID `json:"store_id"`
	UserID    uuid.UUID `json:"user_id"`
	Rating    int       `json:"rating"` // 1 to 5.
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RatingSummary aggregates the reviews of one store.
type RatingSummary struct {
	StoreID       uuid.UUID `json:"store_id"`
	ReviewCount   int64     `json:"review_count"`
	AverageRating float64   `json:"average_rating"`
}
