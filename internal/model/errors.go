package model

import "errors"

var (
	ErrInsufficientBalance     = errors.New("insufficient balance")
	ErrInvalidAmount           = errors.New("invalid amount")
	ErrInvalidBreakdown        = errors.New("invalid breakdown")
	ErrInvalidEntryType        = errors.New("invalid entry type")
	ErrInvalidStatus           = errors.New("invalid withdrawal status")
	ErrInvalidStatusTransition = errors.New("invalid withdrawal status transition")
	ErrInvalidSort             = errors.New("invalid sort parameter")
	ErrNotWithdrawal           = errors.New("transaction is not a withdrawal")
	ErrWalletNotFound          = errors.New("wallet not found")
	ErrTransactionNotFound     = errors.New("transaction not found")
	ErrUserNotFound            = errors.New("user not found")
	ErrInvalidReferral         = errors.New("invalid referral")
	ErrUpstreamUnavailable     = errors.New("upstream service unavailable")

	// ErrDuplicateRefund is returned by the ledger store when refunded_transaction_id
	// is already taken. Services turn it into an idempotent success.
	ErrDuplicateRefund = errors.New("refund already processed")
)
