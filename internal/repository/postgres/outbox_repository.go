package postgres

import (
	"context"
	"fmt"

	"wallet-ledger/internal/model"
	"wallet-ledger/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.OutboxRepository = (*OutboxRepositoryImpl)(nil)

// OutboxRepositoryImpl is the PostgreSQL implementation of OutboxRepository
type OutboxRepositoryImpl struct {
	*TransactionManager
}

func NewOutboxRepository(pool *pgxpool.Pool) repository.OutboxRepository {
	return &OutboxRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// Enqueue stores an event next to the ledger entry it describes
func (r *OutboxRepositoryImpl) Enqueue(ctx context.Context, ev *model.LedgerEvent, tx pgx.Tx) error {
	query := `
        INSERT INTO ledger_outbox (id, entry_id, user_id, type, amount, payload)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at`

	err := tx.QueryRow(ctx, query, ev.ID, ev.EntryID, ev.UserID, string(ev.Type), ev.Amount, []byte(ev.Payload)).
		Scan(&ev.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to enqueue ledger event: %w", err)
	}
	return nil
}

// ClaimUnpublished locks the oldest unpublished events for this relay
func (r *OutboxRepositoryImpl) ClaimUnpublished(ctx context.Context, limit int, tx pgx.Tx) ([]*model.LedgerEvent, error) {
	query := `
        SELECT id, entry_id, user_id, type, amount, payload, created_at
        FROM ledger_outbox
        WHERE published_at IS NULL
        ORDER BY created_at
        LIMIT $1
        FOR UPDATE SKIP LOCKED`

	rows, err := tx.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to claim ledger events: %w", err)
	}
	defer rows.Close()

	var events []*model.LedgerEvent
	for rows.Next() {
		ev := &model.LedgerEvent{}
		var entryType string
		var payload []byte
		if err := rows.Scan(&ev.ID, &ev.EntryID, &ev.UserID, &entryType, &ev.Amount, &payload, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ledger event: %w", err)
		}
		ev.Type = model.EntryType(entryType)
		ev.Payload = payload
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger events: %w", err)
	}
	return events, nil
}

// MarkPublished stamps the given events as delivered
func (r *OutboxRepositoryImpl) MarkPublished(ctx context.Context, ids []uuid.UUID, tx pgx.Tx) error {
	if len(ids) == 0 {
		return nil
	}

	query := `UPDATE ledger_outbox SET published_at = NOW() WHERE id = ANY($1)`

	if _, err := tx.Exec(ctx, query, ids); err != nil {
		return fmt.Errorf("failed to mark ledger events published: %w", err)
	}
	return nil
}
