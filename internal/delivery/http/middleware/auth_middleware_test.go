package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"kennel/internal/domain/entity"
	domainerrors "kennel/internal/domain/errors"
	"kennel/internal/domain/repository"
	"kennel/internal/domain/service"
	mockRepo "kennel/internal/mocks/repository"
	mockService "kennel/internal/mocks/service"
	"kennel/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authMiddlewareFixtures struct {
	middleware   *AuthMiddleware
	userRepo     *mockRepo.MockUserRepository
	tokenService *mockService.MockTokenService
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenService := mockService.NewMockTokenService(t)

	userUsecase := impl.NewUserService(impl.UserServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		UserRepo:     userRepo,
		Hasher:       mockService.NewMockPasswordHasher(t),
		TokenService: tokenService,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return authMiddlewareFixtures{
		middleware:   NewAuthMiddleware(userUsecase),
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

func newAuthTestContext(t *testing.T, authHeader string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/dog", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	c := newAuthTestContext(t, "Bearer good-token")

	user := &entity.User{ID: 1, Email: "alice@example.com"}

	fx.tokenService.EXPECT().
		Validate("good-token").
		Return(&service.Claims{Subject: "alice@example.com"}, nil)
	fx.userRepo.EXPECT().
		FindByEmail(c.Request().Context(), "alice@example.com").
		Return(user, nil)

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true
		current, ok := CurrentUser(c)
		require.True(t, ok)
		assert.Equal(t, user, current)

		return nil
	}

	err := fx.middleware.Authenticate(next)(c)
	require.NoError(t, err)
	assert.True(t, nextCalled)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	c := newAuthTestContext(t, "")

	err := fx.middleware.Authenticate(failingNext(t))(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	c := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	err := fx.middleware.Authenticate(failingNext(t))(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	c := newAuthTestContext(t, "Bearer forged-token")

	fx.tokenService.EXPECT().
		Validate("forged-token").
		Return(nil, domainerrors.ErrInvalidToken.WrapMessage("token verification failed"))

	err := fx.middleware.Authenticate(failingNext(t))(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthMiddleware_Authenticate_DeletedUser(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	c := newAuthTestContext(t, "Bearer stale-token")

	fx.tokenService.EXPECT().
		Validate("stale-token").
		Return(&service.Claims{Subject: "gone@example.com"}, nil)
	fx.userRepo.EXPECT().
		FindByEmail(c.Request().Context(), "gone@example.com").
		Return(nil, repository.ErrUserNotFound)

	err := fx.middleware.Authenticate(failingNext(t))(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

// failingNext returns a handler that must not be reached.
func failingNext(t *testing.T) echo.HandlerFunc {
	return func(c echo.Context) error {
		t.Fatal("next handler should not be called")

		return errors.New("unreachable")
	}
}
