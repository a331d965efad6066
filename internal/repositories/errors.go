package repositories

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrDuplicateRecord      = errors.New("record violates a uniqueness constraint")
	ErrDatabaseOperation    = errors.New("database operation failed")
)
