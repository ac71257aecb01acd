// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"kennel/internal/delivery/http/response"
	"kennel/internal/domain/entity"
	domainerrors "kennel/internal/domain/errors"
	"kennel/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserResponse is the wire representation of a user. The password hash never
// leaves the service.
type UserResponse struct {
	ID        uint           `json:"id"`
	Name      string         `json:"name"`
	LastName  string         `json:"last_name"`
	Email     string         `json:"email"`
	Dogs      []*DogResponse `json:"dogs"`
	CreatedAt time.Time      `json:"created_at"`
}

func toUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	dogs := make([]*DogResponse, 0, len(user.Dogs))
	for _, dog := range user.Dogs {
		dogs = append(dogs, toDogResponse(dog))
	}

	return &UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		LastName:  user.LastName,
		Email:     user.Email,
		Dogs:      dogs,
		CreatedAt: user.CreatedAt,
	}
}

func toUserResponseSlice(users []*entity.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}

	return out
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	input := new(usecase.RegisterInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"user":         toUserResponse(output.User),
		"access_token": output.AccessToken,
	}, "User registered successfully")
}

// Login handles the access-token request.
func (h *UserHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// List handles the paged user listing request.
func (h *UserHandler) List(c echo.Context) error {
	skip, limit, err := pageParams(c)
	if err != nil {
		return errors.WithStack(err)
	}

	users, err := h.uc.ListUsers(c.Request().Context(), skip, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponseSlice(users), "Users retrieved successfully")
}

// Get handles the single-user request.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "User retrieved successfully")
}

// Update handles the user update request.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	input := new(usecase.UpdateUserInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user update input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "User updated successfully")
}

// Delete handles the user deletion request.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "User deleted"}, "User deleted successfully")
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uint, error) {
	raw := c.Param("id")

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WrapMessage("id must be a positive integer")
	}

	return uint(id), nil
}

// pageParams parses the optional skip/limit query parameters.
func pageParams(c echo.Context) (int, int, error) {
	skip, err := queryInt(c, "skip", 0)
	if err != nil {
		return 0, 0, err
	}

	limit, err := queryInt(c, "limit", 10)
	if err != nil {
		return 0, 0, err
	}

	return skip, limit, nil
}

func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WrapMessage(name + " must be an integer")
	}

	return val, nil
}
