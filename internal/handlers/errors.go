package handlers

import (
	"errors"
	"log"

	"sops/internal/repositories"
	"sops/internal/services/notification"
	"sops/internal/services/transaction"
	"sops/internal/services/user"
	"sops/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// respondError maps a service error to the API error envelope:
// 404 for missing records, 400 for rule violations and malformed status
// values, 500 with a generic message for anything unanticipated.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repositories.ErrUserNotFound),
		errors.Is(err, repositories.ErrTransactionNotFound),
		errors.Is(err, repositories.ErrNotificationNotFound),
		errors.Is(err, transaction.ErrTransactionNotFound),
		errors.Is(err, notification.ErrNotificationNotFound):
		return response.NotFound(c, err.Error())

	case errors.Is(err, transaction.ErrTransactionNotAllowed),
		errors.Is(err, transaction.ErrSelfTransfer),
		errors.Is(err, transaction.ErrInsufficientBalance),
		errors.Is(err, transaction.ErrInvalidAmount),
		errors.Is(err, transaction.ErrInvalidStatus),
		errors.Is(err, transaction.ErrCreationFailed),
		errors.Is(err, notification.ErrInvalidStatus),
		errors.Is(err, notification.ErrInvalidChannel),
		errors.Is(err, notification.ErrCreationFailed),
		errors.Is(err, user.ErrEmailTaken),
		errors.Is(err, user.ErrSameEmail),
		errors.Is(err, user.ErrWrongPassword),
		errors.Is(err, user.ErrInvalidUserType),
		errors.Is(err, user.ErrCreationFailed):
		return response.BadRequest(c, err.Error())

	default:
		log.Printf("unhandled error: %v", err)
		return response.ServerError(c)
	}
}
