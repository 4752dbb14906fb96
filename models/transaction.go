package models

import (
	"time"

	"github.com/google/uuid"
)

type TransactionStatus string

const (
	TransactionPending  TransactionStatus = "Pending"
	TransactionApproved TransactionStatus = "Approved"
	TransactionRejected TransactionStatus = "Rejected"
)

// Transaction is a player's MobilePay deposit awaiting admin review.
type Transaction struct {
	TransactionID  uuid.UUID         `gorm:"type:uuid;primaryKey" json:"transactionId"`
	PlayerID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"playerId"`
	MobilePayReqID string            `gorm:"uniqueIndex;not null" json:"mobilePayReqId"`
	Amount         float64           `gorm:"not null" json:"amount"`
	Status         TransactionStatus `gorm:"not null" json:"status"`
	Timestamp      time.Time         `json:"timestamp"`
}
