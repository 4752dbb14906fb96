package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lottohq/lotto-backend/models"
	"github.com/lottohq/lotto-backend/utils/logger"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrMissingReqID        = errors.New("MobilePay request id is required")
	ErrDuplicateReqID      = errors.New("transaction number already exists")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrInvalidStatus       = errors.New("invalid status, allowed: Pending, Approved, Rejected")
)

// TransactionService implements the MobilePay deposit-review workflow:
// players register a deposit as Pending, an admin approves or rejects it.
type TransactionService struct {
	db *gorm.DB
}

func NewTransactionService(db *gorm.DB) *TransactionService {
	return &TransactionService{db: db}
}

// Create registers a new deposit with status Pending. The MobilePay request
// id must be unique; the unique index backs up the pre-check.
func (s *TransactionService) Create(ctx context.Context, playerID uuid.UUID, mobilePayReqID string, amount float64) (*models.Transaction, error) {
	mobilePayReqID = strings.TrimSpace(mobilePayReqID)
	if mobilePayReqID == "" {
		return nil, ErrMissingReqID
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var player models.Player
	if err := s.db.WithContext(ctx).First(&player, "player_id = ?", playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("player %s: %w", playerID, ErrPlayerNotFound)
		}
		return nil, fmt.Errorf("load player: %w", err)
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("mobile_pay_req_id = ?", mobilePayReqID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check transaction number: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("%s: %w", mobilePayReqID, ErrDuplicateReqID)
	}

	tx := models.Transaction{
		TransactionID:  uuid.New(),
		PlayerID:       playerID,
		MobilePayReqID: mobilePayReqID,
		Amount:         amount,
		Status:         models.TransactionPending,
		Timestamp:      time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%s: %w", mobilePayReqID, ErrDuplicateReqID)
		}
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	logger.Infof("[Transactions] player %s registered deposit %s (%.2f)", playerID, mobilePayReqID, amount)
	return &tx, nil
}

// GetByReqID returns a transaction by its MobilePay request id.
func (s *TransactionService) GetByReqID(ctx context.Context, mobilePayReqID string) (*models.Transaction, error) {
	mobilePayReqID = strings.TrimSpace(mobilePayReqID)
	var tx models.Transaction
	err := s.db.WithContext(ctx).First(&tx, "mobile_pay_req_id = ?", mobilePayReqID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load transaction: %w", err)
	}
	return &tx, nil
}

// UpdateStatus moves a transaction to Pending, Approved or Rejected.
func (s *TransactionService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.TransactionStatus) (*models.Transaction, error) {
	switch status {
	case models.TransactionPending, models.TransactionApproved, models.TransactionRejected:
	default:
		return nil, fmt.Errorf("%q: %w", status, ErrInvalidStatus)
	}

	var tx models.Transaction
	if err := s.db.WithContext(ctx).First(&tx, "transaction_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("load transaction: %w", err)
	}

	if err := s.db.WithContext(ctx).Model(&tx).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("update transaction status: %w", err)
	}
	tx.Status = status

	logger.Infof("[Transactions] %s -> %s", id, status)
	return &tx, nil
}

// ReviewItem is a transaction joined with its player, for the admin review
// list.
type ReviewItem struct {
	TransactionID   uuid.UUID                `json:"transactionId"`
	MobilePayReqID  string                   `json:"mobilePayReqId"`
	PlayerID        uuid.UUID                `json:"playerId"`
	PlayerFirstName string                   `json:"playerFirstName"`
	PlayerLastName  string                   `json:"playerLastName"`
	PlayerEmail     string                   `json:"playerEmail"`
	Amount          float64                  `json:"amount"`
	Status          models.TransactionStatus `json:"status"`
	Timestamp       time.Time                `json:"timestamp"`
}

// List returns transactions for admin review, newest first, optionally
// filtered by status and a free-text search over the request id and the
// player's name or email.
func (s *TransactionService) List(ctx context.Context, status, search string) ([]ReviewItem, error) {
	q := s.db.WithContext(ctx).
		Table("transactions").
		Select(`transactions.transaction_id, transactions.mobile_pay_req_id,
			transactions.player_id, players.first_name AS player_first_name,
			players.last_name AS player_last_name, players.email AS player_email,
			transactions.amount, transactions.status, transactions.timestamp`).
		Joins("JOIN players ON players.player_id = transactions.player_id")

	if status = strings.TrimSpace(status); status != "" {
		q = q.Where("transactions.status = ?", status)
	}
	if search = strings.ToLower(strings.TrimSpace(search)); search != "" {
		like := "%" + search + "%"
		q = q.Where(`LOWER(transactions.mobile_pay_req_id) LIKE ?
			OR LOWER(players.first_name || ' ' || players.last_name) LIKE ?
			OR LOWER(players.email) LIKE ?`, like, like, like)
	}

	var items []ReviewItem
	if err := q.Order("transactions.timestamp DESC").Scan(&items).Error; err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return items, nil
}
