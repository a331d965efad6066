package models

import (
	"fmt"
	"strings"
	"time"
)

// Notification statuses
const (
	NotificationStatusSent   = "SENT"
	NotificationStatusFailed = "FAILED"
)

// Notification channels
const (
	NotificationChannelEmail = "EMAIL"
	NotificationChannelSMS   = "SMS"
	NotificationChannelPush  = "PUSH"
)

// Notification records one delivery attempt of a message about a
// transaction's outcome. SentAt stays nil unless the dispatch succeeded.
type Notification struct {
	ID            uint       `gorm:"primarykey" json:"id"`
	UserID        uint       `gorm:"not null;index" json:"user_id"`
	TransactionID uint       `gorm:"not null;index" json:"transaction_id"`
	Channel       string     `gorm:"size:32;not null" json:"channel"`
	Destination   string     `gorm:"size:255;not null" json:"destination"`
	Subject       string     `gorm:"size:255;not null" json:"subject"`
	Message       string     `gorm:"not null" json:"message"`
	Status        string     `gorm:"size:32;not null;index" json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	SentAt        *time.Time `json:"sent_at"`
}

// ParseNotificationStatus validates a raw status token.
func ParseNotificationStatus(raw string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case NotificationStatusSent:
		return NotificationStatusSent, nil
	case NotificationStatusFailed:
		return NotificationStatusFailed, nil
	default:
		return "", fmt.Errorf("invalid notification status: %q", raw)
	}
}

// ParseNotificationChannel validates a raw channel token.
func ParseNotificationChannel(raw string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case NotificationChannelEmail:
		return NotificationChannelEmail, nil
	case NotificationChannelSMS:
		return NotificationChannelSMS, nil
	case NotificationChannelPush:
		return NotificationChannelPush, nil
	default:
		return "", fmt.Errorf("invalid notification channel: %q", raw)
	}
}
