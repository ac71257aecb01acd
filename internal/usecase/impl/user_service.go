// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "kennel/internal/delivery/context"
	"kennel/internal/domain/entity"
	domainerrors "kennel/internal/domain/errors"
	"kennel/internal/domain/repository"
	"kennel/internal/domain/service"
	"kennel/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete user registration process.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	newUser := &entity.User{
		Name:         strings.ToLower(strings.TrimSpace(input.Name)),
		LastName:     strings.ToLower(strings.TrimSpace(input.LastName)),
		Email:        email,
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, findErr := userRepo.FindByEmail(ctx, email)
		if findErr == nil {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already registered")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check for existing email")
		}

		// The unique index on email backstops a concurrent registration
		// slipping in between the read and this insert.
		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	accessToken, err := srv.tokenService.Generate(newUser.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token after registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token after registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser, AccessToken: accessToken}, nil
}

// Login verifies the supplied credentials and issues an access token.
// An unknown email and a wrong password produce the same error so the
// response never reveals which accounts exist.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	accessToken, err := srv.tokenService.Generate(user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:    accessToken,
		TokenType:      "bearer",
		ExpiresMinutes: int(srv.tokenService.AccessTokenTTL().Minutes()),
	}, nil
}

// ResolveToken validates a bearer token and loads the user named by its subject.
func (srv *userService) ResolveToken(ctx context.Context, rawToken string) (*entity.User, error) {
	claims, err := srv.tokenService.Validate(rawToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate access token")
	}

	user, err := srv.userRepo.FindByEmail(ctx, claims.Subject)
	if err != nil {
		srv.log(ctx).Warn("Token subject no longer resolves to a user", slog.String("subject", claims.Subject))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidToken.WrapMessage("token subject not found")
		}

		return nil, errors.Wrap(err, "failed to load user for token subject")
	}

	return user, nil
}

// ListUsers retrieves a page of users. An empty page is reported as not found.
func (srv *userService) ListUsers(ctx context.Context, offset, limit int) ([]*entity.User, error) {
	offset, limit = normalizePage(offset, limit)

	users, err := srv.userRepo.List(ctx, offset, limit)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	if len(users) == 0 {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("no users found in the requested range")
	}

	return users, nil
}

// GetUser retrieves a single user by ID.
func (srv *userService) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user not found")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// UpdateUser loads, modifies and persists a user record.
func (srv *userService) UpdateUser(ctx context.Context, id uint, input *usecase.UpdateUserInput) (*entity.User, error) {
	srv.log(ctx).Debug("Updating user", slog.Any("userID", id))

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user not found")
		}

		return nil, errors.Wrap(err, "failed to find user for update")
	}

	user.Name = strings.ToLower(strings.TrimSpace(input.Name))
	user.LastName = strings.ToLower(strings.TrimSpace(input.LastName))
	user.Email = normalizeEmail(input.Email)

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Warn("Failed to update user", slog.Any("userID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

// DeleteUser removes a user record by ID.
func (srv *userService) DeleteUser(ctx context.Context, id uint) error {
	srv.log(ctx).Info("Deleting user", slog.Any("userID", id))

	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("user not found")
		}

		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// normalizePage clamps paging parameters to sane bounds.
func normalizePage(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return offset, limit
}
