package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lottohq/lotto-backend/engine"
	"github.com/lottohq/lotto-backend/models"
)

func TestGameLookup(t *testing.T) {
	st, db := newTestStore(t)
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		_, err := st.Game(ctx, uuid.New())
		assert.ErrorIs(t, err, engine.ErrGameNotFound)
	})

	t.Run("drawn game is served from cache", func(t *testing.T) {
		game := createGame(t, db, time.Now().Add(-time.Hour), []int{3, 17, 42})

		first, err := st.Game(ctx, game.GameID)
		require.NoError(t, err)
		require.True(t, first.Drawn())

		// Delete behind the cache; the lookup must still resolve.
		require.NoError(t, db.Delete(&models.Game{}, "game_id = ?", game.GameID).Error)
		second, err := st.Game(ctx, game.GameID)
		require.NoError(t, err)
		assert.Equal(t, first.GameID, second.GameID)
	})

	t.Run("undrawn game is read fresh", func(t *testing.T) {
		game := createGame(t, db, time.Now().Add(24*time.Hour), nil)

		loaded, err := st.Game(ctx, game.GameID)
		require.NoError(t, err)
		assert.False(t, loaded.Drawn())

		require.NoError(t, db.Delete(&models.Game{}, "game_id = ?", game.GameID).Error)
		_, err = st.Game(ctx, game.GameID)
		assert.ErrorIs(t, err, engine.ErrGameNotFound)
	})
}

func TestGamesInWindow(t *testing.T) {
	st, db := newTestStore(t)
	ctx := context.Background()

	base := time.Now().Add(-28 * 24 * time.Hour)
	week := 7 * 24 * time.Hour
	g1 := createGame(t, db, base, nil)
	g2 := createGame(t, db, base.Add(week), nil)
	g3 := createGame(t, db, base.Add(2*week), nil)
	createGame(t, db, base.Add(3*week), nil) // outside the window

	games, err := st.GamesInWindow(ctx, g1.ExpirationDate, g3.ExpirationDate)
	require.NoError(t, err)
	require.Len(t, games, 3)
	assert.Equal(t, g1.GameID, games[0].GameID)
	assert.Equal(t, g2.GameID, games[1].GameID)
	assert.Equal(t, g3.GameID, games[2].GameID)
}

func TestRepeatingBoardsBefore(t *testing.T) {
	st, db := newTestStore(t)
	ctx := context.Background()

	early := createGame(t, db, time.Now().Add(-14*24*time.Hour), nil)
	late := createGame(t, db, time.Now().Add(24*time.Hour), nil)

	repeating := models.Board{
		BoardID:           uuid.New(),
		PlayerID:          uuid.New(),
		GameID:            early.GameID,
		IsRepeating:       true,
		RepeatUntilGameID: &late.GameID,
		Timestamp:         time.Now().UTC(),
	}
	plain := models.Board{
		BoardID:   uuid.New(),
		PlayerID:  uuid.New(),
		GameID:    early.GameID,
		Timestamp: time.Now().UTC(),
	}
	require.NoError(t, db.Create(&repeating).Error)
	require.NoError(t, db.Create(&plain).Error)

	boards, err := st.RepeatingBoardsBefore(ctx, late.ExpirationDate)
	require.NoError(t, err)
	require.Len(t, boards, 1)
	assert.Equal(t, repeating.BoardID, boards[0].BoardID)

	// Nothing repeats before its own game's expiration.
	boards, err = st.RepeatingBoardsBefore(ctx, early.ExpirationDate)
	require.NoError(t, err)
	assert.Empty(t, boards)
}
