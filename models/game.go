package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Game is one weekly draw cycle. WinningNumbers stays empty until the admin
// publishes the draw; it is written together with DrawDate in a single update
// so a game is never partially drawn.
type Game struct {
	GameID         uuid.UUID                `gorm:"type:uuid;primaryKey" json:"gameId"`
	WinningNumbers datatypes.JSONSlice[int] `json:"winningNumbers,omitempty"`
	DrawDate       *time.Time               `json:"drawDate,omitempty"`
	ExpirationDate time.Time                `gorm:"not null;index" json:"expirationDate"`
	CreatedAt      time.Time                `json:"createdAt"`
	UpdatedAt      time.Time                `json:"updatedAt"`
}

// Drawn reports whether the game's winning numbers have been published.
func (g *Game) Drawn() bool {
	return g.DrawDate != nil && len(g.WinningNumbers) > 0
}
