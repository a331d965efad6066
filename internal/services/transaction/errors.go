package transaction

import "errors"

// Service errors
var (
	ErrTransactionNotFound   = errors.New("transaction not found")
	ErrTransactionNotAllowed = errors.New("sender is a merchant and cannot make transfers")
	ErrSelfTransfer          = errors.New("sender and recipient are the same")
	ErrInsufficientBalance   = errors.New("sender does not have enough balance for the transfer")
	ErrInvalidAmount         = errors.New("amount must be at least 0.01")
	ErrCreationFailed        = errors.New("an unexpected error occurred while creating the transaction")
	ErrInvalidStatus         = errors.New("invalid transaction status")
)
