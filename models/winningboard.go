package models

import (
	"time"

	"github.com/google/uuid"
)

// WinningBoard is the scored outcome of one board against one game. The
// composite unique index on (game_id, board_id) is what guarantees the
// exactly-once contract: concurrent computations for the same pair conflict
// at the storage layer and resolve to the row that got there first.
type WinningBoard struct {
	WinningBoardID uuid.UUID `gorm:"type:uuid;primaryKey" json:"winningBoardId"`
	GameID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_winning_boards_game_board" json:"gameId"`
	BoardID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_winning_boards_game_board" json:"boardId"`
	NumbersMatched int       `json:"numbersMatched"`
	Timestamp      time.Time `json:"timestamp"`
}
