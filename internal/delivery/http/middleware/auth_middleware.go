package middleware

import (
	"strings"

	deliverycontext "kennel/internal/delivery/context"
	"kennel/internal/domain/entity"
	domainerrors "kennel/internal/domain/errors"
	"kennel/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards routes behind bearer-token authentication.
type AuthMiddleware struct {
	userUsecase usecase.UserUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(userUsecase usecase.UserUsecase) *AuthMiddleware {
	return &AuthMiddleware{userUsecase: userUsecase}
}

// Authenticate validates the bearer token and resolves it to an existing user.
// The resolved user is stored on the echo context for handlers that need the
// acting identity.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrInvalidToken.WrapMessage("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrInvalidToken.WrapMessage("authorization header must carry a bearer token")
		}

		user, err := m.userUsecase.ResolveToken(c.Request().Context(), tokenString)
		if err != nil {
			return err
		}

		c.Set(string(deliverycontext.KeyCurrentUser), user)

		return next(c)
	}
}

// CurrentUser extracts the authenticated user placed by Authenticate.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(deliverycontext.KeyCurrentUser)).(*entity.User)

	return user, ok
}
