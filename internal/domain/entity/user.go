// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the identity record of the system. The email doubles as the login
// identifier and as the subject claim of issued access tokens, so it is
// unique across all users. PasswordHash holds the bcrypt hash of the
// credential; the plaintext is never persisted or logged.
type User struct {
	ID           uint      // Auto-incremented numeric identifier.
	Name         string    // Display name, lowercased on write.
	LastName     string    // Last name, lowercased on write.
	Email        string    // Unique login identifier.
	PasswordHash string    // bcrypt hash of the user's password.
	Dogs         []*Dog    // Dogs owned by this user, zero or more.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
