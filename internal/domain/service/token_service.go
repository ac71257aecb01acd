package service

import "time"

// Claims is the decoded payload of an access token: the subject (the
// authenticated user's email) plus the expiry enforced during decoding.
type Claims struct {
	Subject string
}

// TokenService defines the interface for issuing and verifying access tokens.
// The issuing and verifying sides share one signing secret and algorithm,
// fixed at startup.
type TokenService interface {
	// Generate creates a signed access token for the subject, expiring
	// after the configured TTL.
	Generate(subject string) (string, error)

	// Validate verifies a token's signature and expiry and returns its
	// claims. Bad signatures, malformed payloads and expired tokens all
	// report the same invalid-token error.
	Validate(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the configured token lifetime.
	AccessTokenTTL() time.Duration
}
