package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "kennel/internal/delivery/context"
	"kennel/internal/domain/entity"
	domainerrors "kennel/internal/domain/errors"
	"kennel/internal/domain/repository"
	"kennel/internal/domain/service"
	"kennel/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxDogNameLength = 50

// dogService implements the DogUsecase interface.
type dogService struct {
	dogRepo       repository.DogRepository
	imageProvider service.ImageProvider
	logger        *slog.Logger
}

// DogServiceParams holds dependencies for DogService, injected by Fx.
type DogServiceParams struct {
	fx.In

	DogRepo       repository.DogRepository
	ImageProvider service.ImageProvider
	Logger        *slog.Logger
}

// NewDogService is the constructor for dogService.
func NewDogService(params DogServiceParams) usecase.DogUsecase {
	return &dogService{
		dogRepo:       params.DogRepo,
		imageProvider: params.ImageProvider,
		logger:        params.Logger,
	}
}

func (srv *dogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListDogs retrieves a page of dogs. An empty page is reported as not found.
func (srv *dogService) ListDogs(ctx context.Context, offset, limit int) ([]*entity.Dog, error) {
	offset, limit = normalizePage(offset, limit)

	dogs, err := srv.dogRepo.List(ctx, offset, limit)
	if err != nil {
		srv.log(ctx).Error("Failed to list dogs", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list dogs")
	}

	if len(dogs) == 0 {
		return nil, domainerrors.ErrDogNotFound.WrapMessage("no dogs found in the requested range")
	}

	return dogs, nil
}

// GetDog retrieves a single dog by ID.
func (srv *dogService) GetDog(ctx context.Context, id uint) (*entity.Dog, error) {
	dog, err := srv.dogRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDogNotFound) {
			return nil, domainerrors.ErrDogNotFound.WrapMessage("dog not found")
		}

		return nil, errors.Wrap(err, "failed to find dog by id")
	}

	return dog, nil
}

// GetDogByName retrieves a single dog by name, case-insensitively.
func (srv *dogService) GetDogByName(ctx context.Context, name string) (*entity.Dog, error) {
	name, err := normalizeDogName(name)
	if err != nil {
		return nil, err
	}

	dog, err := srv.dogRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrDogNotFound) {
			return nil, domainerrors.ErrDogNotFound.WrapMessage("dog not found")
		}

		return nil, errors.Wrap(err, "failed to find dog by name")
	}

	return dog, nil
}

// ListDogsByAdopted retrieves all dogs matching the adoption flag.
func (srv *dogService) ListDogsByAdopted(ctx context.Context, isAdopted bool) ([]*entity.Dog, error) {
	dogs, err := srv.dogRepo.ListByAdopted(ctx, isAdopted)
	if err != nil {
		srv.log(ctx).Error("Failed to list dogs by adoption status", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list dogs by adoption status")
	}

	if len(dogs) == 0 {
		return nil, domainerrors.ErrDogNotFound.WrapMessage("no dogs found for the requested adoption status")
	}

	return dogs, nil
}

// CreateDog fetches a random picture and persists a new dog owned by the acting user.
// The picture is fetched first so that a provider outage persists nothing.
func (srv *dogService) CreateDog(ctx context.Context, owner *entity.User, input *usecase.CreateDogInput) (*entity.Dog, error) {
	name, err := normalizeDogName(input.Name)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Creating dog", slog.String("name", name), slog.Any("ownerID", owner.ID))

	pictureURL, err := srv.imageProvider.FetchRandomImageURL(ctx)
	if err != nil {
		srv.log(ctx).Warn("Image provider unavailable, aborting dog creation", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to fetch dog picture")
	}

	ownerID := owner.ID
	newDog := &entity.Dog{
		Name:      name,
		Picture:   pictureURL,
		IsAdopted: input.IsAdopted,
		OwnerID:   &ownerID,
	}

	if err := srv.dogRepo.Create(ctx, newDog); err != nil {
		srv.log(ctx).Error("Failed to create dog", slog.String("name", name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create dog")
	}

	srv.log(ctx).Debug("Dog created", slog.Any("dogID", newDog.ID))

	return newDog, nil
}

// UpdateDog loads, modifies and persists a dog record by ID.
func (srv *dogService) UpdateDog(ctx context.Context, id uint, input *usecase.UpdateDogInput) (*entity.Dog, error) {
	dog, err := srv.dogRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDogNotFound) {
			return nil, domainerrors.ErrDogNotFound.WrapMessage("dog not found")
		}

		return nil, errors.Wrap(err, "failed to find dog for update")
	}

	return srv.applyDogUpdate(ctx, dog, input)
}

// UpdateDogByName loads, modifies and persists a dog record by name.
func (srv *dogService) UpdateDogByName(ctx context.Context, name string, input *usecase.UpdateDogInput) (*entity.Dog, error) {
	name, err := normalizeDogName(name)
	if err != nil {
		return nil, err
	}

	dog, err := srv.dogRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrDogNotFound) {
			return nil, domainerrors.ErrDogNotFound.WrapMessage("dog not found")
		}

		return nil, errors.Wrap(err, "failed to find dog for update")
	}

	return srv.applyDogUpdate(ctx, dog, input)
}

func (srv *dogService) applyDogUpdate(ctx context.Context, dog *entity.Dog, input *usecase.UpdateDogInput) (*entity.Dog, error) {
	name, err := normalizeDogName(input.Name)
	if err != nil {
		return nil, err
	}

	dog.Name = name
	dog.IsAdopted = input.IsAdopted

	if err := srv.dogRepo.Update(ctx, dog); err != nil {
		srv.log(ctx).Warn("Failed to update dog", slog.Any("dogID", dog.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update dog")
	}

	return dog, nil
}

// DeleteDog removes a dog record by ID.
func (srv *dogService) DeleteDog(ctx context.Context, id uint) error {
	srv.log(ctx).Info("Deleting dog", slog.Any("dogID", id))

	if err := srv.dogRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDogNotFound) {
			return domainerrors.ErrDogNotFound.WrapMessage("dog not found")
		}

		return errors.Wrap(err, "failed to delete dog")
	}

	return nil
}

// DeleteDogByName removes a dog record by name.
func (srv *dogService) DeleteDogByName(ctx context.Context, name string) error {
	name, err := normalizeDogName(name)
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Deleting dog by name", slog.String("name", name))

	dog, err := srv.dogRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrDogNotFound) {
			return domainerrors.ErrDogNotFound.WrapMessage("dog not found")
		}

		return errors.Wrap(err, "failed to find dog for deletion")
	}

	if err := srv.dogRepo.Delete(ctx, dog.ID); err != nil {
		if errors.Is(err, repository.ErrDogNotFound) {
			return domainerrors.ErrDogNotFound.WrapMessage("dog not found")
		}

		return errors.Wrap(err, "failed to delete dog")
	}

	return nil
}

// normalizeDogName lowercases and trims a dog name, enforcing length bounds.
func normalizeDogName(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", domainerrors.ErrValidationFailed.WrapMessage("dog name must not be empty")
	}
	// Length is counted in characters, matching the max=50 validation tag.
	if utf8.RuneCountInString(name) > maxDogNameLength {
		return "", domainerrors.ErrValidationFailed.WrapMessage("dog name is too long")
	}

	return name, nil
}
