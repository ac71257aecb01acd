package postgres

import (
	"context"

	"kennel/internal/domain/entity"
	domainerrors "kennel/internal/domain/errors"
	"kennel/internal/domain/repository"
	"kennel/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// dogRepository implements the repository.DogRepository interface using GORM.
type dogRepository struct {
	db *gorm.DB
}

// NewDogRepository is the constructor for dogRepository.
func NewDogRepository(db *gorm.DB) repository.DogRepository {
	return &dogRepository{db: db}
}

// FindByID retrieves a single dog by its unique ID.
func (repo *dogRepository) FindByID(ctx context.Context, id uint) (*entity.Dog, error) {
	var dogM model.DogModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&dogM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDogNotFound
		}

		return nil, errors.Wrap(err, "failed to find dog by id")
	}

	return toDogDomain(&dogM), nil
}

// FindByName retrieves a single dog by its lowercase-normalized name.
func (repo *dogRepository) FindByName(ctx context.Context, name string) (*entity.Dog, error) {
	var dogM model.DogModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&dogM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDogNotFound
		}

		return nil, errors.Wrap(err, "failed to find dog by name")
	}

	return toDogDomain(&dogM), nil
}

// List retrieves a page of dogs ordered by ID.
func (repo *dogRepository) List(ctx context.Context, offset, limit int) ([]*entity.Dog, error) {
	var dogModels []*model.DogModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&dogModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list dogs")
	}

	return toDogDomainSlice(dogModels), nil
}

// ListByAdopted retrieves all dogs with the given adoption flag.
func (repo *dogRepository) ListByAdopted(ctx context.Context, isAdopted bool) ([]*entity.Dog, error) {
	var dogModels []*model.DogModel

	if err := repo.db.WithContext(ctx).
		Where("is_adopted = ?", isAdopted).
		Order("id").
		Find(&dogModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list dogs by adoption status")
	}

	return toDogDomainSlice(dogModels), nil
}

// Create persists a new dog entity to the database.
func (repo *dogRepository) Create(ctx context.Context, dog *entity.Dog) error {
	dogM := fromDogDomain(dog)

	if err := repo.db.WithContext(ctx).Create(dogM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrDogCreationFailed.WrapMessage("invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrDogCreationFailed.WrapMessage("missing required dog information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create dog")
	}

	// Update the entity with generated values
	dog.ID = dogM.ID
	dog.CreatedAt = dogM.CreatedAt

	return nil
}

// Update modifies an existing dog entity in the database.
func (repo *dogRepository) Update(ctx context.Context, dog *entity.Dog) error {
	dogM := fromDogDomain(dog)
	dogM.CreatedAt = dog.CreatedAt

	if err := repo.db.WithContext(ctx).Save(dogM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrDogCreationFailed.WrapMessage("invalid owner reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update dog")
	}

	return nil
}

// Delete removes a dog by ID.
func (repo *dogRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.DogModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete dog")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDogNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDogDomain converts a GORM DogModel to a domain Dog entity.
func toDogDomain(data *model.DogModel) *entity.Dog {
	if data == nil {
		return nil
	}

	return &entity.Dog{
		ID:        data.ID,
		Name:      data.Name,
		Picture:   data.Picture,
		IsAdopted: data.IsAdopted,
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
	}
}

func toDogDomainSlice(data []*model.DogModel) []*entity.Dog {
	dogs := make([]*entity.Dog, 0, len(data))
	for _, dogM := range data {
		dogs = append(dogs, toDogDomain(dogM))
	}

	return dogs
}

// fromDogDomain converts a domain Dog entity to a GORM DogModel for persistence.
func fromDogDomain(data *entity.Dog) *model.DogModel {
	if data == nil {
		return nil
	}

	return &model.DogModel{
		ID:        data.ID,
		Name:      data.Name,
		Picture:   data.Picture,
		IsAdopted: data.IsAdopted,
		OwnerID:   data.OwnerID,
	}
}
