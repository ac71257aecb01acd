package handler

import (
	"log/slog"
	"net/http"
	"time"

	"kennel/internal/delivery/http/middleware"
	"kennel/internal/delivery/http/response"
	"kennel/internal/domain/entity"
	domainerrors "kennel/internal/domain/errors"
	"kennel/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DogResponse is the wire representation of a dog.
type DogResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture"`
	IsAdopted bool      `json:"is_adopted"`
	OwnerID   *uint     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

func toDogResponse(dog *entity.Dog) *DogResponse {
	if dog == nil {
		return nil
	}

	return &DogResponse{
		ID:        dog.ID,
		Name:      dog.Name,
		Picture:   dog.Picture,
		IsAdopted: dog.IsAdopted,
		OwnerID:   dog.OwnerID,
		CreatedAt: dog.CreatedAt,
	}
}

func toDogResponseSlice(dogs []*entity.Dog) []*DogResponse {
	out := make([]*DogResponse, 0, len(dogs))
	for _, dog := range dogs {
		out = append(out, toDogResponse(dog))
	}

	return out
}

// DogHandler holds dependencies for dog-related handlers.
type DogHandler struct {
	uc     usecase.DogUsecase
	logger *slog.Logger
}

// NewDogHandler is the constructor for DogHandler, injected by Fx.
func NewDogHandler(uc usecase.DogUsecase, logger *slog.Logger) *DogHandler {
	return &DogHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the paged dog listing request.
func (h *DogHandler) List(c echo.Context) error {
	skip, limit, err := pageParams(c)
	if err != nil {
		return errors.WithStack(err)
	}

	dogs, err := h.uc.ListDogs(c.Request().Context(), skip, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDogResponseSlice(dogs), "Dogs retrieved successfully")
}

// Get handles the single-dog request by ID.
func (h *DogHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	dog, err := h.uc.GetDog(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDogResponse(dog), "Dog retrieved successfully")
}

// GetByName handles the single-dog request by name.
func (h *DogHandler) GetByName(c echo.Context) error {
	dog, err := h.uc.GetDogByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDogResponse(dog), "Dog retrieved successfully")
}

// ListAdopted handles the adopted-dogs listing request.
func (h *DogHandler) ListAdopted(c echo.Context) error {
	dogs, err := h.uc.ListDogsByAdopted(c.Request().Context(), true)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDogResponseSlice(dogs), "Adopted dogs retrieved successfully")
}

// Create handles the dog creation request. The authenticated user becomes
// the dog's owner.
func (h *DogHandler) Create(c echo.Context) error {
	owner, ok := middleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrInvalidToken.WrapMessage("no authenticated user on request")
	}

	input := new(usecase.CreateDogInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dog input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	dog, err := h.uc.CreateDog(c.Request().Context(), owner, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toDogResponse(dog), "Dog created successfully")
}

// Update handles the dog update request by ID.
func (h *DogHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	input := new(usecase.UpdateDogInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dog input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	dog, err := h.uc.UpdateDog(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDogResponse(dog), "Dog updated successfully")
}

// UpdateByName handles the dog update request by name.
func (h *DogHandler) UpdateByName(c echo.Context) error {
	input := new(usecase.UpdateDogInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dog input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	dog, err := h.uc.UpdateDogByName(c.Request().Context(), c.Param("name"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDogResponse(dog), "Dog updated successfully")
}

// Delete handles the dog deletion request by ID.
func (h *DogHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteDog(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Dog deleted"}, "Dog deleted successfully")
}

// DeleteByName handles the dog deletion request by name.
func (h *DogHandler) DeleteByName(c echo.Context) error {
	if err := h.uc.DeleteDogByName(c.Request().Context(), c.Param("name")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Dog deleted"}, "Dog deleted successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
