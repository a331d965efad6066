package notification

import "errors"

// Service errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidStatus        = errors.New("invalid notification status")
	ErrInvalidChannel       = errors.New("invalid notification channel")
	ErrCreationFailed       = errors.New("an unexpected error occurred while creating the notification")
)
