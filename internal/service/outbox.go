package service

import (
	"context"
	"fmt"

	"wallet-ledger/internal/events"
	"wallet-ledger/internal/metrics"
	"wallet-ledger/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type OutboxRelayImpl struct {
	outboxRepo repository.OutboxRepository
	dbManager  repository.DBManager
	publisher  events.Publisher
	batchSize  int
	logger     zerolog.Logger
}

func NewOutboxRelay(
	outboxRepo repository.OutboxRepository,
	dbManager repository.DBManager,
	publisher events.Publisher,
	batchSize int,
	logger zerolog.Logger,
) OutboxRelay {
	if batchSize < 1 {
		batchSize = 100
	}
	return &OutboxRelayImpl{
		outboxRepo: outboxRepo,
		dbManager:  dbManager,
		publisher:  publisher,
		batchSize:  batchSize,
		logger:     logger,
	}
}

// RelayBatch claims unpublished events, publishes them and marks them in one
// transaction. A crash between publish and commit re-sends the batch, so
// consumers must tolerate duplicates (event ids are stable).
func (r *OutboxRelayImpl) RelayBatch(ctx context.Context) (int, error) {
	var published int

	err := r.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		// Claimed rows are skipped by concurrent relays until this tx ends
		batch, err := r.outboxRepo.ClaimUnpublished(ctx, r.batchSize, tx)
		if err != nil {
			return fmt.Errorf("claim events: %w", err)
		}
		if len(batch) == 0 {
			return nil
		}

		if err := r.publisher.Publish(ctx, batch); err != nil {
			metrics.OutboxFailed()
			return fmt.Errorf("publish events: %w", err)
		}

		ids := make([]uuid.UUID, 0, len(batch))
		for _, ev := range batch {
			ids = append(ids, ev.ID)
		}
		if err := r.outboxRepo.MarkPublished(ctx, ids, tx); err != nil {
			return fmt.Errorf("mark events published: %w", err)
		}

		published = len(batch)
		return nil
	})
	if err != nil {
		return 0, err
	}

	if published > 0 {
		metrics.OutboxPublished(published)
		r.logger.Debug().Int("published", published).Msg("ledger events relayed")
	}
	return published, nil
}
