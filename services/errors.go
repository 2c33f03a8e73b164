package services

import "errors"

var (
	// ErrTransactionNotFound is returned when a transaction id or
	// business number resolves to nothing.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrDuplicateTransactionNumber is returned when generated business
	// numbers kept colliding with persisted ones after bounded retries.
	ErrDuplicateTransactionNumber = errors.New("duplicate transaction number")

	// ErrInvalidState is returned when a lifecycle operation is attempted
	// against a transaction outside the pending state.
	ErrInvalidState = errors.New("transaction is not pending")

	// ErrInsufficientCash is returned before any write when a cash
	// payment hands over less than the transaction total.
	ErrInsufficientCash = errors.New("cash received is less than the total due")
)
