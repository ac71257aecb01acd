// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"kennel/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string `json:"name" form:"name" validate:"required,min=1,max=50"`
	LastName string `json:"last_name" form:"last_name" validate:"required,min=1,max=50"`
	Email    string `json:"email" form:"email" validate:"required,email,max=100"`
	Password string `json:"password" form:"password" validate:"required,min=8,max=72"`
}

// LoginInput defines the data required to obtain an access token.
// Field names follow the OAuth2 password form convention.
type LoginInput struct {
	Email    string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// UpdateUserInput defines the data accepted when updating a user.
type UpdateUserInput struct {
	Name     string `json:"name" form:"name" validate:"required,min=1,max=50"`
	LastName string `json:"last_name" form:"last_name" validate:"required,min=1,max=50"`
	Email    string `json:"email" form:"email" validate:"required,email,max=100"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user plus a freshly minted token.
type RegisterOutput struct {
	User        *entity.User
	AccessToken string
}

// LoginOutput returns the bearer token issued after a successful login.
type LoginOutput struct {
	AccessToken    string `json:"access_token"`
	TokenType      string `json:"token_type"`
	ExpiresMinutes int    `json:"expires"`
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new account; a duplicate email yields Conflict,
	// both on the pre-read and on the store's unique-constraint backstop.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and mints an access token. Unknown email
	// and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ResolveToken decodes a bearer token and resolves its subject to an
	// existing user. Any decode failure, and a subject that no longer
	// exists, yield Unauthorized.
	ResolveToken(ctx context.Context, rawToken string) (*entity.User, error)

	ListUsers(ctx context.Context, offset, limit int) ([]*entity.User, error)
	GetUser(ctx context.Context, id uint) (*entity.User, error)
	UpdateUser(ctx context.Context, id uint, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id uint) error
}
