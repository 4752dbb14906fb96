package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lottohq/lotto-backend/engine"
	"github.com/lottohq/lotto-backend/models"
)

// Board returns the board by id.
func (s *Store) Board(ctx context.Context, id uuid.UUID) (*models.Board, error) {
	var board models.Board
	err := s.db.WithContext(ctx).First(&board, "board_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("board %s: %w", id, engine.ErrBoardNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load board %s: %w", id, err)
	}
	return &board, nil
}

// BoardsByGame returns the boards purchased directly for a game.
func (s *Store) BoardsByGame(ctx context.Context, gameID uuid.UUID) ([]models.Board, error) {
	var boards []models.Board
	err := s.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Find(&boards).Error
	if err != nil {
		return nil, fmt.Errorf("list boards for game %s: %w", gameID, err)
	}
	return boards, nil
}

// RepeatingBoardsBefore returns repeating boards whose originating game
// expires strictly before the given moment. These are the carry-over
// candidates for any game expiring at that moment.
func (s *Store) RepeatingBoardsBefore(ctx context.Context, expiration time.Time) ([]models.Board, error) {
	var boards []models.Board
	err := s.db.WithContext(ctx).
		Select("boards.*").
		Joins("JOIN games ON games.game_id = boards.game_id").
		Where("boards.is_repeating = ? AND games.expiration_date < ?", true, expiration).
		Find(&boards).Error
	if err != nil {
		return nil, fmt.Errorf("list repeating boards: %w", err)
	}
	return boards, nil
}
