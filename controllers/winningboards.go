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
	"github.com/lottohq/lotto-backend/store"
)

type WinningBoardController struct {
	db     *gorm.DB
	store  *store.Store
	engine *engine.Engine
	hub    *services.Hub
}

func NewWinningBoardController(db *gorm.DB, st *store.Store, eng *engine.Engine, hub *services.Hub) *WinningBoardController {
	return &WinningBoardController{db: db, store: st, engine: eng, hub: hub}
}

// List returns every recorded winning board.
func (ctl *WinningBoardController) List(c *gin.Context) {
	rows, err := ctl.store.WinningBoards(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Get returns one winning board by id.
func (ctl *WinningBoardController) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid winning board id"})
		return
	}

	var row models.WinningBoard
	if err := ctl.db.First(&row, "winning_board_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Winning board not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, row)
}

// ComputeForGame scores every eligible board against a drawn game. Safe to
// re-run: already-scored boards come back with created=false.
func (ctl *WinningBoardController) ComputeForGame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
		return
	}

	comp, err := ctl.engine.ComputeForGame(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrGameNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, engine.ErrGameNotReady):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Computation failed, retry is safe"})
		}
		return
	}

	created := 0
	for _, o := range comp.Outcomes {
		if o.Created {
			created++
		}
	}
	ctl.hub.Broadcast("boards_computed", gin.H{
		"gameId":   comp.GameID,
		"boards":   len(comp.Outcomes),
		"created":  created,
		"problems": len(comp.Problems),
	})

	c.JSON(http.StatusOK, comp)
}

// CheckBoard scores a single board against its own game on demand.
func (ctl *WinningBoardController) CheckBoard(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board id"})
		return
	}

	outcome, err := ctl.engine.ComputeForBoard(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrBoardNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, engine.ErrGameNotReady), errors.Is(err, engine.ErrGameNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Check failed, retry is safe"})
		}
		return
	}

	c.JSON(http.StatusOK, outcome)
}
