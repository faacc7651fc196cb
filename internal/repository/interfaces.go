package repository

import (
	"context"
	"time"

	"wallet-ledger/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DBManager provides database transaction management
type DBManager interface {
	// WithTransaction executes a function within a database transaction
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// WalletRepository is the balance store. Methods taking a tx require one unless
// documented otherwise.
type WalletRepository interface {
	// Get reads a wallet without locking. A nil tx reads from the pool.
	Get(ctx context.Context, userID string, tx pgx.Tx) (*model.Wallet, error)

	// GetForUpdate locks the wallet row for the rest of the transaction
	GetForUpdate(ctx context.Context, userID string, tx pgx.Tx) (*model.Wallet, error)

	// GetOrCreateForUpdate creates an empty wallet if none exists, then locks it
	GetOrCreateForUpdate(ctx context.Context, userID string, bonusExpiry time.Time, tx pgx.Tx) (*model.Wallet, error)

	// Update persists balances, bonus expiry and the first-deposit flag
	Update(ctx context.Context, wallet *model.Wallet, tx pgx.Tx) error
}

// LedgerRepository is the append-only transaction log
type LedgerRepository interface {
	// Insert appends an entry. A taken refunded_transaction_id yields model.ErrDuplicateRefund.
	Insert(ctx context.Context, entry *model.LedgerEntry, tx pgx.Tx) error

	// GetForUpdate locks a single entry
	GetForUpdate(ctx context.Context, id string, tx pgx.Tx) (*model.LedgerEntry, error)

	// FindRefund returns the refund entry referencing refundedTransactionID. A nil tx reads from the pool.
	FindRefund(ctx context.Context, refundedTransactionID string, tx pgx.Tx) (*model.LedgerEntry, error)

	// FinancialSummary aggregates deposits, standing withdrawals and their tds since the given time
	FinancialSummary(ctx context.Context, userID string, since time.Time, tx pgx.Tx) (model.FinancialSummary, error)

	// LinkedEntries returns the tds, cashback and clawback entries of a withdrawal
	LinkedEntries(ctx context.Context, withdrawalID string, tx pgx.Tx) ([]*model.LedgerEntry, error)

	// List returns one page of entries and the total number of matching entries
	List(ctx context.Context, q model.HistoryQuery) ([]*model.LedgerEntry, int, error)

	// UpdateWithdrawalStatus changes the status of a withdraw entry
	UpdateWithdrawalStatus(ctx context.Context, id string, status model.WithdrawalStatus, tx pgx.Tx) error
}

// OutboxRepository stores ledger events until the relay publishes them
type OutboxRepository interface {
	// Enqueue writes an event in the caller's transaction
	Enqueue(ctx context.Context, event *model.LedgerEvent, tx pgx.Tx) error

	// ClaimUnpublished locks up to limit unpublished events, skipping rows claimed by other relays
	ClaimUnpublished(ctx context.Context, limit int, tx pgx.Tx) ([]*model.LedgerEvent, error)

	// MarkPublished stamps published_at on the given events
	MarkPublished(ctx context.Context, ids []uuid.UUID, tx pgx.Tx) error
}
