package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	"github.com/lottohq/lotto-backend/models"
)

// Ensure records the outcome for (gameID, boardID) exactly once. The insert
// carries ON CONFLICT DO NOTHING against the composite unique index, so two
// concurrent callers for the same pair cannot both insert; the loser simply
// reads back the row the winner created. An existing row is returned as-is,
// whatever match count was supplied.
func (s *Store) Ensure(ctx context.Context, gameID, boardID uuid.UUID, matched int) (*models.WinningBoard, bool, error) {
	row := models.WinningBoard{
		WinningBoardID: uuid.New(),
		GameID:         gameID,
		BoardID:        boardID,
		NumbersMatched: matched,
		Timestamp:      time.Now().UTC(),
	}

	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "game_id"}, {Name: "board_id"}},
			DoNothing: true,
		}).
		Create(&row)
	if res.Error != nil {
		return nil, false, fmt.Errorf("insert winning board for game %s board %s: %w", gameID, boardID, res.Error)
	}
	if res.RowsAffected > 0 {
		return &row, true, nil
	}

	var existing models.WinningBoard
	err := s.db.WithContext(ctx).
		First(&existing, "game_id = ? AND board_id = ?", gameID, boardID).Error
	if err != nil {
		return nil, false, fmt.Errorf("read winning board after conflict for game %s board %s: %w", gameID, boardID, err)
	}
	return &existing, false, nil
}

// WinningBoards returns every recorded outcome, newest first.
func (s *Store) WinningBoards(ctx context.Context) ([]models.WinningBoard, error) {
	var rows []models.WinningBoard
	err := s.db.WithContext(ctx).Order("timestamp DESC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list winning boards: %w", err)
	}
	return rows, nil
}
