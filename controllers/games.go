package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/lottohq/lotto-backend/engine"
	"github.com/lottohq/lotto-backend/models"
	"github.com/lottohq/lotto-backend/services"
	"github.com/lottohq/lotto-backend/utils/logger"
)

type GameController struct {
	db  *gorm.DB
	hub *services.Hub
}

func NewGameController(db *gorm.DB, hub *services.Hub) *GameController {
	return &GameController{db: db, hub: hub}
}

type createGameRequest struct {
	ExpirationDate time.Time `json:"expirationDate" binding:"required"`
}

// Create opens a new game for board purchases (admin action).
func (ctl *GameController) Create(c *gin.Context) {
	var req createGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.ExpirationDate.After(time.Now().UTC()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Expiration date must be in the future"})
		return
	}

	game := models.Game{
		GameID:         uuid.New(),
		ExpirationDate: req.ExpirationDate.UTC(),
	}
	if err := ctl.db.Create(&game).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}

	c.JSON(http.StatusCreated, game)
}

// List returns all games, upcoming first.
func (ctl *GameController) List(c *gin.Context) {
	var games []models.Game
	if err := ctl.db.Order("expiration_date DESC").Find(&games).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, games)
}

// Get returns single game info.
func (ctl *GameController) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
		return
	}

	var game models.Game
	if err := ctl.db.First(&game, "game_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, game)
}

type publishNumbersRequest struct {
	WinningNumbers []int `json:"winningNumbers" binding:"required"`
}

// PublishNumbers records a game's drawn numbers (admin action). Numbers and
// draw date are written in one update so the game is never partially drawn.
func (ctl *GameController) PublishNumbers(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
		return
	}

	var req publishNumbersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := engine.ValidateWinningNumbers(req.WinningNumbers); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var game models.Game
	if err := ctl.db.First(&game, "game_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	// The numbers are written at most once: the update only matches an
	// undrawn row, so a concurrent publish cannot overwrite an earlier draw.
	now := time.Now().UTC()
	res := ctl.db.Model(&models.Game{}).
		Where("game_id = ? AND draw_date IS NULL", id).
		Updates(map[string]any{
			"winning_numbers": datatypes.NewJSONSlice(req.WinningNumbers),
			"draw_date":       &now,
		})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish winning numbers"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Winning numbers already published"})
		return
	}
	game.WinningNumbers = datatypes.NewJSONSlice(req.WinningNumbers)
	game.DrawDate = &now

	logger.Infof("[Games] game %s drawn: %v", game.GameID, req.WinningNumbers)
	ctl.hub.Broadcast("game_drawn", gin.H{"gameId": game.GameID, "winningNumbers": req.WinningNumbers})

	c.JSON(http.StatusOK, game)
}
