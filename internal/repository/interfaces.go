// Package repository defines the persistence contracts for the catalog
// service, abstracting away the specific database implementation.
package repository

import (
	"context"

	"streaming-backend/internal/domain"
)

// UserRepository defines the persistence methods required for a User.
type UserRepository interface {
	// FindByEmail retrieves a single user by email. Returns ErrNotFound
	// when no such user exists.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// Create persists a new user. The write is conditional on the email
	// not already existing; a duplicate returns ErrConflict.
	Create(ctx context.Context, user *domain.User) error
}

// MediaRepository defines the persistence methods required for a MediaItem.
type MediaRepository interface {
	// Create persists a new media item under its generated id.
	Create(ctx context.Context, item *domain.MediaItem) error

	// FindByID retrieves a single item by id. Returns ErrNotFound when no
	// such item exists.
	FindByID(ctx context.Context, mediaID string) (*domain.MediaItem, error)

	// FindAll retrieves every item in the table. An empty table yields an
	// empty slice, not an error.
	FindAll(ctx context.Context) ([]domain.MediaItem, error)

	// Update merges the given fields into an existing item and returns the
	// full item after the write. Returns ErrNotFound when the id does not
	// exist.
	Update(ctx context.Context, mediaID string, update domain.MediaUpdate) (*domain.MediaItem, error)

	// Delete removes an item by id. Deleting an id that does not exist is
	// a no-op.
	Delete(ctx context.Context, mediaID string) error
}
