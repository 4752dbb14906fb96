package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Board is a player's purchased set of chosen numbers for one game.
// A repeating board is also scored against every later game up to and
// including RepeatUntilGameID, without being re-purchased.
// Invariant: RepeatUntilGameID is set if and only if IsRepeating is true.
type Board struct {
	BoardID           uuid.UUID                `gorm:"type:uuid;primaryKey" json:"boardId"`
	PlayerID          uuid.UUID                `gorm:"type:uuid;not null;index" json:"playerId"`
	GameID            uuid.UUID                `gorm:"type:uuid;not null;index" json:"gameId"`
	ChosenNumbers     datatypes.JSONSlice[int] `json:"chosenNumbers"`
	Price             float64                  `json:"price"`
	IsRepeating       bool                     `gorm:"index" json:"isRepeating"`
	RepeatUntilGameID *uuid.UUID               `gorm:"type:uuid" json:"repeatUntilGameId,omitempty"`
	Timestamp         time.Time                `json:"timestamp"`
}
