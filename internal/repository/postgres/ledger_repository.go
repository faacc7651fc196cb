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
var _ repository.LedgerRepository = (*LedgerRepositoryImpl)(nil)

const entryColumns = `id, user_id, type, amount, deposit_balance, cashback_balance, withdrawal_balance, signup_bonus_balance,
        reason, contest_id, match_id, refunded_transaction_id, withdrawal_status, withdrawal_id, created_at, updated_at`

var sortColumns = map[model.SortField]string{
	model.SortByCreatedAt: "created_at",
	model.SortByAmount:    "amount",
}

// LedgerRepositoryImpl is the PostgreSQL implementation of LedgerRepository
type LedgerRepositoryImpl struct {
	*TransactionManager
}

func NewLedgerRepository(pool *pgxpool.Pool) repository.LedgerRepository {
	return &LedgerRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func scanEntry(row pgx.Row) (*model.LedgerEntry, error) {
	e := &model.LedgerEntry{}
	var entryType string
	var status *string
	err := row.Scan(&e.ID, &e.UserID, &entryType, &e.Amount,
		&e.Breakdown.Deposit, &e.Breakdown.Cashback, &e.Breakdown.Withdrawal, &e.Breakdown.SignupBonus,
		&e.Reason, &e.ContestID, &e.MatchID, &e.RefundedTransactionID, &status, &e.WithdrawalID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.Type = model.EntryType(entryType)
	if status != nil {
		s := model.WithdrawalStatus(*status)
		e.WithdrawalStatus = &s
	}
	return e, nil
}

// Insert appends a ledger entry
func (r *LedgerRepositoryImpl) Insert(ctx context.Context, e *model.LedgerEntry, tx pgx.Tx) error {
	query := `
        INSERT INTO ledger_entries (id, user_id, type, amount,
            deposit_balance, cashback_balance, withdrawal_balance, signup_bonus_balance,
            reason, contest_id, match_id, refunded_transaction_id, withdrawal_status, withdrawal_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING created_at, updated_at`

	if e.ID == "" {
		e.ID = model.NewEntryID()
	}

	var status *string
	if e.WithdrawalStatus != nil {
		s := string(*e.WithdrawalStatus)
		status = &s
	}

	err := tx.QueryRow(ctx, query, e.ID, e.UserID, string(e.Type), e.Amount,
		e.Breakdown.Deposit, e.Breakdown.Cashback, e.Breakdown.Withdrawal, e.Breakdown.SignupBonus,
		e.Reason, e.ContestID, e.MatchID, e.RefundedTransactionID, status, e.WithdrawalID).
		Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		// uq_ledger_entries_refunded_transaction is the only unique index besides the ULID key
		if isUniqueViolation(err) && e.RefundedTransactionID != nil {
			return model.ErrDuplicateRefund
		}
		return fmt.Errorf("failed to insert ledger entry: %w", err)
	}
	return nil
}

// GetForUpdate retrieves an entry with row-level lock
func (r *LedgerRepositoryImpl) GetForUpdate(ctx context.Context, id string, tx pgx.Tx) (*model.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE id = $1 FOR UPDATE`

	e, err := scanEntry(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get ledger entry for update: %w", err)
	}
	return e, nil
}

// FindRefund looks up the refund entry that compensated refundedTransactionID
func (r *LedgerRepositoryImpl) FindRefund(ctx context.Context, refundedTransactionID string, tx pgx.Tx) (*model.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE refunded_transaction_id = $1`

	e, err := scanEntry(r.getExecutor(tx).QueryRow(ctx, query, refundedTransactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to find refund: %w", err)
	}
	return e, nil
}

// FinancialSummary sums the entries relevant to TDS since the start of the financial year.
// A Failed or Rejected withdrawal drops out together with the tds withheld on it.
func (r *LedgerRepositoryImpl) FinancialSummary(ctx context.Context, userID string, since time.Time, tx pgx.Tx) (model.FinancialSummary, error) {
	query := `
        SELECT
            COALESCE(SUM(e.amount) FILTER (WHERE e.type = 'deposit'), 0),
            COALESCE(SUM(e.amount) FILTER (WHERE e.type = 'withdraw'
                AND COALESCE(e.withdrawal_status, 'Pending') NOT IN ('Failed', 'Rejected')), 0),
            COALESCE(SUM(e.amount) FILTER (WHERE e.type = 'tds'
                AND COALESCE(w.withdrawal_status, 'Pending') NOT IN ('Failed', 'Rejected')), 0)
        FROM ledger_entries e
        LEFT JOIN ledger_entries w ON w.id = e.withdrawal_id
        WHERE e.user_id = $1 AND e.created_at >= $2`

	var s model.FinancialSummary
	err := r.getExecutor(tx).QueryRow(ctx, query, userID, since).
		Scan(&s.TotalDeposits, &s.TotalWithdrawals, &s.TDSAlreadyPaid)
	if err != nil {
		return model.FinancialSummary{}, fmt.Errorf("failed to aggregate financial year: %w", err)
	}
	return s, nil
}

// LinkedEntries returns the entries written against a withdrawal, oldest first
func (r *LedgerRepositoryImpl) LinkedEntries(ctx context.Context, withdrawalID string, tx pgx.Tx) ([]*model.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE withdrawal_id = $1 ORDER BY created_at, id`

	rows, err := r.getExecutor(tx).Query(ctx, query, withdrawalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query linked entries: %w", err)
	}
	defer rows.Close()

	var entries []*model.LedgerEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan linked entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate linked entries: %w", err)
	}
	return entries, nil
}

// List retrieves one page of a user's entries plus the total count
func (r *LedgerRepositoryImpl) List(ctx context.Context, q model.HistoryQuery) ([]*model.LedgerEntry, int, error) {
	column, ok := sortColumns[q.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if q.SortOrder == model.SortAsc {
		direction = "ASC"
	}

	var entryType *string
	if q.Type != nil {
		t := string(*q.Type)
		entryType = &t
	}

	countQuery := `SELECT COUNT(*) FROM ledger_entries WHERE user_id = $1 AND ($2::text IS NULL OR type = $2)`

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, q.UserID, entryType).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count ledger entries: %w", err)
	}
	if total == 0 {
		return []*model.LedgerEntry{}, 0, nil
	}

	// column and direction come from fixed whitelists above
	query := fmt.Sprintf(`
        SELECT %s FROM ledger_entries
        WHERE user_id = $1 AND ($2::text IS NULL OR type = $2)
        ORDER BY %s %s, id %s
        LIMIT $3 OFFSET $4`, entryColumns, column, direction, direction)

	rows, err := r.pool.Query(ctx, query, q.UserID, entryType, q.Limit, q.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*model.LedgerEntry, 0, q.Limit)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate ledger entries: %w", err)
	}
	return entries, total, nil
}

// UpdateWithdrawalStatus sets the status of a withdraw entry
func (r *LedgerRepositoryImpl) UpdateWithdrawalStatus(ctx context.Context, id string, status model.WithdrawalStatus, tx pgx.Tx) error {
	query := `
        UPDATE ledger_entries
        SET withdrawal_status = $1, updated_at = NOW()
        WHERE id = $2 AND type = 'withdraw'`

	commandTag, err := tx.Exec(ctx, query, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update withdrawal status: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrTransactionNotFound
	}
	return nil
}
