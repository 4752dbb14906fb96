package models

import (
	"time"

	"github.com/google/uuid"
)

type Player struct {
	PlayerID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"playerId"`
	FirstName string    `gorm:"not null" json:"firstName"`
	LastName  string    `gorm:"not null" json:"lastName"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone     string    `json:"phone"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
