package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction statuses. A transaction is resolved synchronously, so no
// PENDING value is ever persisted.
const (
	TransactionStatusSucceeded = "SUCCEEDED"
	TransactionStatusFailed    = "FAILED"
)

// Transaction is a single funds transfer between two users, resolved to a
// final status before it is first persisted.
type Transaction struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	Reference   string          `gorm:"size:64;uniqueIndex" json:"reference"`
	SenderID    uint            `gorm:"not null;index" json:"sender_id"`
	RecipientID uint            `gorm:"not null;index" json:"recipient_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	Description string          `gorm:"size:255" json:"description"`
	Status      string          `gorm:"size:32;not null;index" json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ParseTransactionStatus validates a raw status token.
func ParseTransactionStatus(raw string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case TransactionStatusSucceeded:
		return TransactionStatusSucceeded, nil
	case TransactionStatusFailed:
		return TransactionStatusFailed, nil
	default:
		return "", fmt.Errorf("invalid transaction status: %q", raw)
	}
}
