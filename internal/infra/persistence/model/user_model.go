// Package model contains the GORM persistence models mirroring the database schema.
package model

import "time"

// UserModel mirrors the 'users' table. The unique index on email is the race
// arbiter for concurrent registrations with the same address.
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"type:varchar(50);not null"`
	LastName     string `gorm:"type:varchar(50);not null"`
	Email        string `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time

	Dogs []*DogModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
