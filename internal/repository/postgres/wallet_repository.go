package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wallet-ledger/internal/model"
	"wallet-ledger/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.WalletRepository = (*WalletRepositoryImpl)(nil)

const walletColumns = `user_id, deposit_balance, withdrawal_balance, cashback_balance, signup_bonus_balance,
        bonus_expiry, first_deposit_bonus_given, version, created_at, updated_at`

// WalletRepositoryImpl is the PostgreSQL implementation of WalletRepository
type WalletRepositoryImpl struct {
	*TransactionManager
}

func NewWalletRepository(pool *pgxpool.Pool) repository.WalletRepository {
	return &WalletRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func scanWallet(row pgx.Row) (*model.Wallet, error) {
	w := &model.Wallet{}
	err := row.Scan(&w.UserID, &w.DepositBalance, &w.WithdrawalBalance, &w.CashbackBalance, &w.SignupBonusBalance,
		&w.BonusExpiry, &w.FirstDepositBonusGiven, &w.Version, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Get reads a wallet without locking
func (r *WalletRepositoryImpl) Get(ctx context.Context, userID string, tx pgx.Tx) (*model.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1`

	w, err := scanWallet(r.getExecutor(tx).QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return w, nil
}

// GetForUpdate retrieves a wallet with row-level lock
func (r *WalletRepositoryImpl) GetForUpdate(ctx context.Context, userID string, tx pgx.Tx) (*model.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1 FOR UPDATE`

	w, err := scanWallet(tx.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet for update: %w", err)
	}
	return w, nil
}

// GetOrCreateForUpdate inserts a zero wallet when missing and locks the row.
// Concurrent creators race on the primary key; the loser's insert is a no-op.
func (r *WalletRepositoryImpl) GetOrCreateForUpdate(ctx context.Context, userID string, bonusExpiry time.Time, tx pgx.Tx) (*model.Wallet, error) {
	insert := `
        INSERT INTO wallets (user_id, bonus_expiry)
        VALUES ($1, $2)
        ON CONFLICT (user_id) DO NOTHING`

	if _, err := tx.Exec(ctx, insert, userID, bonusExpiry); err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}
	return r.GetForUpdate(ctx, userID, tx)
}

// Update writes the wallet's balances back and bumps its version
func (r *WalletRepositoryImpl) Update(ctx context.Context, w *model.Wallet, tx pgx.Tx) error {
	query := `
        UPDATE wallets
        SET deposit_balance = $1,
            withdrawal_balance = $2,
            cashback_balance = $3,
            signup_bonus_balance = $4,
            bonus_expiry = $5,
            first_deposit_bonus_given = $6,
            version = version + 1,
            updated_at = NOW()
        WHERE user_id = $7
        RETURNING version, updated_at`

	err := tx.QueryRow(ctx, query, w.DepositBalance, w.WithdrawalBalance, w.CashbackBalance, w.SignupBonusBalance,
		w.BonusExpiry, w.FirstDepositBonusGiven, w.UserID).Scan(&w.Version, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrWalletNotFound
		}
		// CHECK (x_balance >= 0) on every sub-balance
		if isCheckViolation(err) {
			return model.ErrInsufficientBalance
		}
		return fmt.Errorf("failed to update wallet: %w", err)
	}
	return nil
}
