package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"github.com/lottohq/lotto-backend/engine"
	"github.com/lottohq/lotto-backend/models"
)

// Game returns the game by id, serving drawn games from cache.
func (s *Store) Game(ctx context.Context, id uuid.UUID) (*models.Game, error) {
	if hit, ok := s.drawn.Get(id.String()); ok {
		return hit.(*models.Game), nil
	}

	var game models.Game
	err := s.db.WithContext(ctx).First(&game, "game_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("game %s: %w", id, engine.ErrGameNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load game %s: %w", id, err)
	}

	// Only drawn games are cached; their numbers never change again.
	if game.Drawn() {
		s.drawn.Set(id.String(), &game, cache.DefaultExpiration)
	}
	return &game, nil
}

// GamesInWindow returns the games whose expiration lies in [from, until],
// in expiration order. This is the repeat chain of a board whose originating
// game expires at from and whose repeat-until game expires at until.
func (s *Store) GamesInWindow(ctx context.Context, from, until time.Time) ([]models.Game, error) {
	var games []models.Game
	err := s.db.WithContext(ctx).
		Where("expiration_date >= ? AND expiration_date <= ?", from, until).
		Order("expiration_date ASC, game_id ASC").
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("list games in window: %w", err)
	}
	return games, nil
}
