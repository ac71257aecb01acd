package model

import "time"

// DogModel mirrors the 'dogs' table. Names are stored lowercase so the
// unique-name lookups stay case-insensitive at the SQL level.
type DogModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(50);index;not null"`
	Picture   string `gorm:"type:varchar(512)"`
	IsAdopted bool   `gorm:"not null;default:false"`
	OwnerID   *uint  `gorm:"index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DogModel) TableName() string {
	return "dogs"
}
