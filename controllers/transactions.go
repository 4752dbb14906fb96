package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lottohq/lotto-backend/models"
	"github.com/lottohq/lotto-backend/services"
)

type TransactionController struct {
	txs *services.TransactionService
}

func NewTransactionController(txs *services.TransactionService) *TransactionController {
	return &TransactionController{txs: txs}
}

type createTransactionRequest struct {
	PlayerID       uuid.UUID `json:"playerId" binding:"required"`
	MobilePayReqID string    `json:"mobilePayReqId" binding:"required"`
	Amount         float64   `json:"amount" binding:"required"`
}

// Create registers a deposit with status Pending.
func (ctl *TransactionController) Create(c *gin.Context) {
	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx, err := ctl.txs.Create(c.Request.Context(), req.PlayerID, req.MobilePayReqID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPlayerNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Player does not exist"})
		case errors.Is(err, services.ErrMissingReqID):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrDuplicateReqID):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		}
		return
	}

	c.JSON(http.StatusCreated, tx)
}

// GetByNumber returns a single transaction by MobilePay request id.
func (ctl *TransactionController) GetByNumber(c *gin.Context) {
	tx, err := ctl.txs.GetByReqID(c.Request.Context(), c.Param("reqId"))
	if err != nil {
		if errors.Is(err, services.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, tx)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus moves a transaction between Pending, Approved and Rejected.
func (ctl *TransactionController) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction id"})
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx, err := ctl.txs.UpdateStatus(c.Request.Context(), id, models.TransactionStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrTransactionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, tx)
}

// List returns transactions for admin review, with optional ?status= and
// ?search= filters.
func (ctl *TransactionController) List(c *gin.Context) {
	items, err := ctl.txs.List(c.Request.Context(), c.Query("status"), c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}
	c.JSON(http.StatusOK, items)
}
