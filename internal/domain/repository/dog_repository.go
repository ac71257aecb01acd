package repository

import (
	"context"
	"errors"

	"kennel/internal/domain/entity"
)

// ErrDogNotFound is a domain-specific error returned when a dog is not found.
var ErrDogNotFound = errors.New("dog not found")

// DogRepository defines the standard operations for dog persistence.
// Name lookups expect the lowercase-normalized form of the name.
type DogRepository interface {
	// FindByID retrieves a single dog by its unique ID.
	FindByID(ctx context.Context, id uint) (*entity.Dog, error)

	// FindByName retrieves a single dog by its lowercase name.
	FindByName(ctx context.Context, name string) (*entity.Dog, error)

	// List retrieves a page of dogs ordered by ID.
	List(ctx context.Context, offset, limit int) ([]*entity.Dog, error)

	// ListByAdopted retrieves all dogs with the given adoption flag.
	ListByAdopted(ctx context.Context, isAdopted bool) ([]*entity.Dog, error)

	// Create persists a new dog entity to the storage.
	Create(ctx context.Context, dog *entity.Dog) error

	// Update modifies an existing dog entity in the storage.
	Update(ctx context.Context, dog *entity.Dog) error

	// Delete removes a dog by ID.
	Delete(ctx context.Context, id uint) error
}
