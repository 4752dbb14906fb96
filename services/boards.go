package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/lottohq/lotto-backend/engine"
	"github.com/lottohq/lotto-backend/models"
	"github.com/lottohq/lotto-backend/utils/logger"
)

var (
	ErrPlayerNotFound     = errors.New("player not found")
	ErrPlayerInactive     = errors.New("player is not active")
	ErrGameNotFound       = errors.New("game not found")
	ErrGameClosed         = errors.New("game is no longer open for boards")
	ErrInvalidPrice       = errors.New("price must be greater than zero")
	ErrInvalidRepeatUntil = errors.New("repeat-until game is invalid")
)

// BoardService validates and persists board purchases. The computation
// engine only ever reads boards, so every invariant it relies on (number
// cardinality, repeat-until ordering) is enforced here at creation.
type BoardService struct {
	db *gorm.DB
}

func NewBoardService(db *gorm.DB) *BoardService {
	return &BoardService{db: db}
}

// PurchaseBoardRequest is the validated input for a board purchase.
type PurchaseBoardRequest struct {
	PlayerID          uuid.UUID
	GameID            uuid.UUID
	ChosenNumbers     []int
	Price             float64
	IsRepeating       bool
	RepeatUntilGameID *uuid.UUID
}

// Purchase creates a board after checking the player, the game window, the
// chosen numbers and the repeat-until invariant.
func (s *BoardService) Purchase(ctx context.Context, req PurchaseBoardRequest) (*models.Board, error) {
	var player models.Player
	if err := s.db.WithContext(ctx).First(&player, "player_id = ?", req.PlayerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("player %s: %w", req.PlayerID, ErrPlayerNotFound)
		}
		return nil, fmt.Errorf("load player: %w", err)
	}
	if !player.IsActive {
		return nil, fmt.Errorf("player %s: %w", req.PlayerID, ErrPlayerInactive)
	}

	var game models.Game
	if err := s.db.WithContext(ctx).First(&game, "game_id = ?", req.GameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("game %s: %w", req.GameID, ErrGameNotFound)
		}
		return nil, fmt.Errorf("load game: %w", err)
	}
	now := time.Now().UTC()
	if !now.Before(game.ExpirationDate) || game.Drawn() {
		return nil, fmt.Errorf("game %s: %w", req.GameID, ErrGameClosed)
	}

	if err := engine.ValidateBoardNumbers(req.ChosenNumbers); err != nil {
		return nil, err
	}
	if req.Price <= 0 {
		return nil, ErrInvalidPrice
	}

	if req.IsRepeating {
		if req.RepeatUntilGameID == nil {
			return nil, fmt.Errorf("%w: repeating board needs a repeat-until game", ErrInvalidRepeatUntil)
		}
		var until models.Game
		if err := s.db.WithContext(ctx).First(&until, "game_id = ?", *req.RepeatUntilGameID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: game %s does not exist", ErrInvalidRepeatUntil, *req.RepeatUntilGameID)
			}
			return nil, fmt.Errorf("load repeat-until game: %w", err)
		}
		if until.ExpirationDate.Before(game.ExpirationDate) {
			return nil, fmt.Errorf("%w: game %s expires before the board's own game", ErrInvalidRepeatUntil, until.GameID)
		}
	} else if req.RepeatUntilGameID != nil {
		return nil, fmt.Errorf("%w: repeat-until game set on a non-repeating board", ErrInvalidRepeatUntil)
	}

	board := models.Board{
		BoardID:           uuid.New(),
		PlayerID:          req.PlayerID,
		GameID:            req.GameID,
		ChosenNumbers:     datatypes.NewJSONSlice(req.ChosenNumbers),
		Price:             req.Price,
		IsRepeating:       req.IsRepeating,
		RepeatUntilGameID: req.RepeatUntilGameID,
		Timestamp:         now,
	}
	if err := s.db.WithContext(ctx).Create(&board).Error; err != nil {
		return nil, fmt.Errorf("create board: %w", err)
	}

	logger.Infof("[Boards] player %s bought board %s for game %s (repeating=%v)",
		req.PlayerID, board.BoardID, req.GameID, req.IsRepeating)
	return &board, nil
}
