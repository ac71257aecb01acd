package entity

import "time"

// Dog is an adoptable dog record. Names are normalized to lowercase on every
// write so that lookups by name are case-insensitive.
type Dog struct {
	ID        uint      // Auto-incremented numeric identifier.
	Name      string    // Dog name, stored lowercase, non-empty, at most 50 chars.
	Picture   string    // URL of a random picture, filled from the image provider.
	IsAdopted bool      // Whether the dog has been adopted.
	OwnerID   *uint     // Owning user, nil when the dog has no owner.
	CreatedAt time.Time // Timestamp of when this record was created.
}
