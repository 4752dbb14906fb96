package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lottohq/lotto-backend/engine"
	"github.com/lottohq/lotto-backend/models"
	"github.com/lottohq/lotto-backend/services"
)

type BoardController struct {
	db     *gorm.DB
	boards *services.BoardService
	engine *engine.Engine
}

func NewBoardController(db *gorm.DB, boards *services.BoardService, eng *engine.Engine) *BoardController {
	return &BoardController{db: db, boards: boards, engine: eng}
}

type purchaseBoardRequest struct {
	PlayerID          uuid.UUID  `json:"playerId" binding:"required"`
	GameID            uuid.UUID  `json:"gameId" binding:"required"`
	ChosenNumbers     []int      `json:"chosenNumbers" binding:"required"`
	Price             float64    `json:"price" binding:"required"`
	IsRepeating       bool       `json:"isRepeating"`
	RepeatUntilGameID *uuid.UUID `json:"repeatUntilGameId"`
}

// Purchase buys a board for a game.
func (ctl *BoardController) Purchase(c *gin.Context) {
	var req purchaseBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	board, err := ctl.boards.Purchase(c.Request.Context(), services.PurchaseBoardRequest{
		PlayerID:          req.PlayerID,
		GameID:            req.GameID,
		ChosenNumbers:     req.ChosenNumbers,
		Price:             req.Price,
		IsRepeating:       req.IsRepeating,
		RepeatUntilGameID: req.RepeatUntilGameID,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPlayerNotFound), errors.Is(err, services.ErrGameNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrPlayerInactive),
			errors.Is(err, services.ErrGameClosed),
			errors.Is(err, services.ErrInvalidPrice),
			errors.Is(err, services.ErrInvalidRepeatUntil),
			errors.Is(err, engine.ErrInvalidNumbers):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to buy board"})
		}
		return
	}

	c.JSON(http.StatusCreated, board)
}

// Get fetches a board by id.
func (ctl *BoardController) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board id"})
		return
	}

	var board models.Board
	if err := ctl.db.First(&board, "board_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, board)
}

// ListByPlayer fetches all boards of a player.
func (ctl *BoardController) ListByPlayer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player id"})
		return
	}

	var boards []models.Board
	if err := ctl.db.Where("player_id = ?", id).Order("timestamp DESC").Find(&boards).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch boards"})
		return
	}

	c.JSON(http.StatusOK, boards)
}

// ListByGame fetches all boards purchased directly for a game.
func (ctl *BoardController) ListByGame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
		return
	}

	var boards []models.Board
	if err := ctl.db.Where("game_id = ?", id).Order("timestamp ASC").Find(&boards).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch boards"})
		return
	}

	c.JSON(http.StatusOK, boards)
}

// ActiveGames lists the games a board is scored against: its own game plus,
// for a repeating board, every existing game up to the repeat-until game.
func (ctl *BoardController) ActiveGames(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board id"})
		return
	}

	ctx := c.Request.Context()
	var board models.Board
	if err := ctl.db.First(&board, "board_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	gameIDs, err := ctl.engine.Propagator().GamesFor(ctx, &board)
	if err != nil {
		if errors.Is(err, engine.ErrResolutionGap) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve games"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"boardId": board.BoardID, "gameIds": gameIDs})
}
