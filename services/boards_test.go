package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lottohq/lotto-backend/engine"
)

func TestPurchaseBoard(t *testing.T) {
	db := newTestDB(t)
	svc := NewBoardService(db)
	ctx := context.Background()

	player := createPlayer(t, db, true)
	game := createOpenGame(t, db, 24*time.Hour)

	valid := PurchaseBoardRequest{
		PlayerID:      player.PlayerID,
		GameID:        game.GameID,
		ChosenNumbers: []int{3, 8, 17, 24, 42},
		Price:         20,
	}

	t.Run("valid purchase", func(t *testing.T) {
		board, err := svc.Purchase(ctx, valid)
		require.NoError(t, err)
		assert.Equal(t, player.PlayerID, board.PlayerID)
		assert.False(t, board.IsRepeating)
		assert.Nil(t, board.RepeatUntilGameID)
	})

	t.Run("unknown player", func(t *testing.T) {
		req := valid
		req.PlayerID = uuid.New()
		_, err := svc.Purchase(ctx, req)
		assert.ErrorIs(t, err, ErrPlayerNotFound)
	})

	t.Run("inactive player", func(t *testing.T) {
		inactive := createPlayer(t, db, false)
		req := valid
		req.PlayerID = inactive.PlayerID
		_, err := svc.Purchase(ctx, req)
		assert.ErrorIs(t, err, ErrPlayerInactive)
	})

	t.Run("unknown game", func(t *testing.T) {
		req := valid
		req.GameID = uuid.New()
		_, err := svc.Purchase(ctx, req)
		assert.ErrorIs(t, err, ErrGameNotFound)
	})

	t.Run("expired game", func(t *testing.T) {
		expired := createOpenGame(t, db, -time.Hour)
		req := valid
		req.GameID = expired.GameID
		_, err := svc.Purchase(ctx, req)
		assert.ErrorIs(t, err, ErrGameClosed)
	})

	t.Run("drawn game", func(t *testing.T) {
		drawn := createOpenGame(t, db, 24*time.Hour)
		drawGame(t, db, &drawn, []int{3, 17, 42})
		req := valid
		req.GameID = drawn.GameID
		_, err := svc.Purchase(ctx, req)
		assert.ErrorIs(t, err, ErrGameClosed)
	})

	t.Run("bad numbers", func(t *testing.T) {
		req := valid
		req.ChosenNumbers = []int{1, 2, 3}
		_, err := svc.Purchase(ctx, req)
		assert.ErrorIs(t, err, engine.ErrInvalidNumbers)
	})

	t.Run("bad price", func(t *testing.T) {
		req := valid
		req.Price = 0
		_, err := svc.Purchase(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})
}

func TestPurchaseRepeatingBoard(t *testing.T) {
	db := newTestDB(t)
	svc := NewBoardService(db)
	ctx := context.Background()

	player := createPlayer(t, db, true)
	game := createOpenGame(t, db, 24*time.Hour)
	later := createOpenGame(t, db, 14*24*time.Hour)
	earlier := createOpenGame(t, db, time.Hour)

	base := PurchaseBoardRequest{
		PlayerID:      player.PlayerID,
		GameID:        game.GameID,
		ChosenNumbers: []int{3, 8, 17, 24, 42},
		Price:         20,
		IsRepeating:   true,
	}

	t.Run("valid repeat chain", func(t *testing.T) {
		req := base
		req.RepeatUntilGameID = &later.GameID
		board, err := svc.Purchase(ctx, req)
		require.NoError(t, err)
		assert.True(t, board.IsRepeating)
		require.NotNil(t, board.RepeatUntilGameID)
		assert.Equal(t, later.GameID, *board.RepeatUntilGameID)
	})

	t.Run("repeating without repeat-until", func(t *testing.T) {
		_, err := svc.Purchase(ctx, base)
		assert.ErrorIs(t, err, ErrInvalidRepeatUntil)
	})

	t.Run("repeat-until game missing", func(t *testing.T) {
		req := base
		missing := uuid.New()
		req.RepeatUntilGameID = &missing
		_, err := svc.Purchase(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidRepeatUntil)
	})

	t.Run("repeat-until expires before own game", func(t *testing.T) {
		req := base
		req.RepeatUntilGameID = &earlier.GameID
		_, err := svc.Purchase(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidRepeatUntil)
	})

	t.Run("repeat-until on non-repeating board", func(t *testing.T) {
		req := base
		req.IsRepeating = false
		req.RepeatUntilGameID = &later.GameID
		_, err := svc.Purchase(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidRepeatUntil)
	})
}
