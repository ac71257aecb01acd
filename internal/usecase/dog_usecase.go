package usecase

import (
	"context"

	"kennel/internal/domain/entity"
)

// CreateDogInput defines the data required to create a dog record.
type CreateDogInput struct {
	Name      string `json:"name" form:"name" validate:"required,min=1,max=50"`
	IsAdopted bool   `json:"is_adopted" form:"is_adopted"`
}

// UpdateDogInput defines the data accepted when updating a dog record.
type UpdateDogInput struct {
	Name      string `json:"name" form:"name" validate:"required,min=1,max=50"`
	IsAdopted bool   `json:"is_adopted" form:"is_adopted"`
}

// DogUsecase defines the interface for dog-related business operations.
// Dog names are normalized to lowercase on every write, so all name-based
// operations are case-insensitive.
type DogUsecase interface {
	ListDogs(ctx context.Context, offset, limit int) ([]*entity.Dog, error)
	GetDog(ctx context.Context, id uint) (*entity.Dog, error)
	GetDogByName(ctx context.Context, name string) (*entity.Dog, error)
	ListDogsByAdopted(ctx context.Context, isAdopted bool) ([]*entity.Dog, error)

	// CreateDog fetches a random picture URL before persisting anything;
	// an image-provider failure persists nothing. The acting user becomes
	// the dog's owner.
	CreateDog(ctx context.Context, owner *entity.User, input *CreateDogInput) (*entity.Dog, error)

	UpdateDog(ctx context.Context, id uint, input *UpdateDogInput) (*entity.Dog, error)
	UpdateDogByName(ctx context.Context, name string, input *UpdateDogInput) (*entity.Dog, error)
	DeleteDog(ctx context.Context, id uint) error
	DeleteDogByName(ctx context.Context, name string) error
}
