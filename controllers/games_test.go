package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lottohq/lotto-backend/models"
	"github.com/lottohq/lotto-backend/services"
)

func newGamesRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	ctl := NewGameController(db, services.NewHub())

	router := gin.New()
	router.POST("/api/games/:id/winning-numbers", ctl.PublishNumbers)
	return router, db
}

func seedOpenGame(t *testing.T, db *gorm.DB) models.Game {
	t.Helper()
	game := models.Game{
		GameID:         uuid.New(),
		ExpirationDate: time.Now().Add(time.Hour).UTC(),
	}
	require.NoError(t, db.Create(&game).Error)
	return game
}

func TestPublishNumbers(t *testing.T) {
	router, db := newGamesRouter(t)
	game := seedOpenGame(t, db)
	path := "/api/games/" + game.GameID.String() + "/winning-numbers"

	t.Run("publishes once", func(t *testing.T) {
		rec := performJSON(t, router, http.MethodPost, path, gin.H{"winningNumbers": []int{3, 17, 42}})
		require.Equal(t, http.StatusOK, rec.Code)

		var stored models.Game
		require.NoError(t, db.First(&stored, "game_id = ?", game.GameID).Error)
		assert.True(t, stored.Drawn())
		assert.Equal(t, []int{3, 17, 42}, []int(stored.WinningNumbers))
	})

	t.Run("already drawn is rejected and numbers stay put", func(t *testing.T) {
		rec := performJSON(t, router, http.MethodPost, path, gin.H{"winningNumbers": []int{1, 2, 5}})
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, decodeError(t, rec), "already published")

		var stored models.Game
		require.NoError(t, db.First(&stored, "game_id = ?", game.GameID).Error)
		assert.Equal(t, []int{3, 17, 42}, []int(stored.WinningNumbers))
	})

	t.Run("unknown game", func(t *testing.T) {
		rec := performJSON(t, router, http.MethodPost,
			"/api/games/"+uuid.NewString()+"/winning-numbers", gin.H{"winningNumbers": []int{3, 17, 42}})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid numbers", func(t *testing.T) {
		other := seedOpenGame(t, db)
		rec := performJSON(t, router, http.MethodPost,
			"/api/games/"+other.GameID.String()+"/winning-numbers", gin.H{"winningNumbers": []int{3, 17}})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

// A publish can lose the race after its own read: the row is still guarded
// because the update only matches an undrawn game.
func TestPublishNumbersLostRace(t *testing.T) {
	router, db := newGamesRouter(t)
	game := seedOpenGame(t, db)

	drawn := time.Now().UTC()
	require.NoError(t, db.Model(&models.Game{}).
		Where("game_id = ?", game.GameID).
		Updates(map[string]any{"draw_date": &drawn}).Error)

	rec := performJSON(t, router, http.MethodPost,
		"/api/games/"+game.GameID.String()+"/winning-numbers", gin.H{"winningNumbers": []int{7, 8, 9}})
	assert.Equal(t, http.StatusConflict, rec.Code)

	var stored models.Game
	require.NoError(t, db.First(&stored, "game_id = ?", game.GameID).Error)
	assert.Empty(t, []int(stored.WinningNumbers))
}
