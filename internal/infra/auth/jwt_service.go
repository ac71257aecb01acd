// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"kennel/config"
	domainerrors "kennel/internal/domain/errors"
	"kennel/internal/domain/service"
)

const defaultAccessTokenTTL = 15 * time.Minute

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// One secret, one algorithm (HS256), fixed for the process lifetime; rotating
// the secret invalidates every token issued before the restart.
type jwtService struct {
	secret    string
	accessTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	accessTTL := defaultAccessTokenTTL
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTLMinutes > 0 {
		accessTTL = time.Duration(cfg.Auth.AccessTokenTTLMinutes) * time.Minute
	}

	return &jwtService{
		secret:    cfg.SecretKey.Access,
		accessTTL: accessTTL,
	}, nil
}

// Generate creates a signed access token carrying the subject and expiry claims.
func (s *jwtService) Generate(subject string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(s.accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// Validate checks the signature and expiry of a token string. Every failure
// mode collapses into ErrInvalidToken; callers cannot tell an expired token
// from a forged one.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token verification failed")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("unexpected claims type")
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("subject claim missing")
	}

	return &service.Claims{Subject: subject}, nil
}

// AccessTokenTTL returns the configured duration for access tokens.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}
