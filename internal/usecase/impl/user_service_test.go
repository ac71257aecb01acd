package impl

import (
	"context"
	"testing"
	"time"

	"kennel/internal/domain/entity"
	domainerrors "kennel/internal/domain/errors"
	"kennel/internal/domain/repository"
	"kennel/internal/domain/service"
	mockRepo "kennel/internal/mocks/repository"
	mockService "kennel/internal/mocks/service"
	"kennel/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Name:     "Alice",
		LastName: "Smith",
		Email:    "Alice@Example.com",
		Password: "secretpassword",
	}

	fx.hasher.EXPECT().Hash("secretpassword").Return("$hashed$", nil)
	fx.tokenService.EXPECT().Generate("alice@example.com").Return("signed-token", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				FindByEmail(ctx, "alice@example.com").
				Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = 7
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, uint(7), output.User.ID)
	assert.Equal(t, "alice", output.User.Name)
	assert.Equal(t, "smith", output.User.LastName)
	assert.Equal(t, "alice@example.com", output.User.Email)
	assert.Equal(t, "$hashed$", output.User.PasswordHash)
	assert.Equal(t, "signed-token", output.AccessToken)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Name:     "Alice",
		LastName: "Smith",
		Email:    "alice@example.com",
		Password: "secretpassword",
	}

	existing := &entity.User{ID: 1, Email: "alice@example.com"}

	fx.hasher.EXPECT().Hash("secretpassword").Return("$hashed$", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				FindByEmail(ctx, "alice@example.com").
				Return(existing, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.Register(ctx, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestUserService_Register_UniqueIndexBackstop(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Name:     "Alice",
		LastName: "Smith",
		Email:    "alice@example.com",
		Password: "secretpassword",
	}

	fx.hasher.EXPECT().Hash("secretpassword").Return("$hashed$", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				FindByEmail(ctx, "alice@example.com").
				Return(nil, repository.ErrUserNotFound)
			// A concurrent registration won the race; the insert hits the unique index.
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already exists"))

			return fn(mockFactory)
		})

	_, err := fx.service.Register(ctx, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestUserService_Register_HashFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Name:     "Alice",
		LastName: "Smith",
		Email:    "alice@example.com",
		Password: "secretpassword",
	}

	fx.hasher.EXPECT().Hash("secretpassword").Return("", errors.New("bcrypt exploded"))

	_, err := fx.service.Register(ctx, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: 1, Email: "alice@example.com", PasswordHash: "$hashed$"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("secretpassword", "$hashed$").Return(true)
	fx.tokenService.EXPECT().Generate("alice@example.com").Return("signed-token", nil)
	fx.tokenService.EXPECT().AccessTokenTTL().Return(15 * time.Minute)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "secretpassword",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
	assert.Equal(t, 15, output.ExpiresMinutes)
}

func TestUserService_Login_MixedCaseEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: 1, Email: "alice@example.com", PasswordHash: "$hashed$"}

	// Emails are canonicalized to lowercase before every lookup.
	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("secretpassword", "$hashed$").Return(true)
	fx.tokenService.EXPECT().Generate("alice@example.com").Return("signed-token", nil)
	fx.tokenService.EXPECT().AccessTokenTTL().Return(15 * time.Minute)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "Alice@Example.COM",
		Password: "secretpassword",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: 1, Email: "alice@example.com", PasswordHash: "$hashed$"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "$hashed$").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_ResolveToken_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: 1, Email: "alice@example.com"}

	fx.tokenService.EXPECT().
		Validate("signed-token").
		Return(&service.Claims{Subject: "alice@example.com"}, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)

	resolved, err := fx.service.ResolveToken(ctx, "signed-token")
	require.NoError(t, err)
	assert.Equal(t, user, resolved)
}

func TestUserService_ResolveToken_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		Validate("garbage").
		Return(nil, domainerrors.ErrInvalidToken.WrapMessage("token verification failed"))

	_, err := fx.service.ResolveToken(ctx, "garbage")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestUserService_ResolveToken_DeletedUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		Validate("signed-token").
		Return(&service.Claims{Subject: "gone@example.com"}, nil)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "gone@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.ResolveToken(ctx, "signed-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestUserService_ListUsers_EmptyPage(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().List(ctx, 100, 10).Return([]*entity.User{}, nil)

	_, err := fx.service.ListUsers(ctx, 100, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ListUsers_NormalizesPaging(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	users := []*entity.User{{ID: 1, Email: "alice@example.com"}}

	fx.userRepo.EXPECT().List(ctx, 0, 100).Return(users, nil)

	got, err := fx.service.ListUsers(ctx, -5, 1000)
	require.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, uint(99)).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetUser(ctx, 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateUser_LowercasesNames(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	existing := &entity.User{ID: 1, Name: "alice", LastName: "smith", Email: "alice@example.com"}

	fx.userRepo.EXPECT().FindByID(ctx, uint(1)).Return(existing, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	updated, err := fx.service.UpdateUser(ctx, 1, &usecase.UpdateUserInput{
		Name:     "ALICE",
		LastName: " Jones ",
		Email:    "Alice.Jones@Example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", updated.Name)
	assert.Equal(t, "jones", updated.LastName)
	assert.Equal(t, "alice.jones@example.com", updated.Email)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().Delete(ctx, uint(42)).Return(repository.ErrUserNotFound)

	err := fx.service.DeleteUser(ctx, 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
