// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"kennel/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, with owned dogs.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByEmail retrieves a single user by their unique email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List retrieves a page of users ordered by ID.
	List(ctx context.Context, offset, limit int) ([]*entity.User, error)

	// Create persists a new user entity to the storage. A violation of the
	// unique email constraint surfaces as a domain Conflict error, never as
	// a raw driver error.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user by ID.
	Delete(ctx context.Context, id uint) error
}
