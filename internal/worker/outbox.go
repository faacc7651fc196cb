package worker

import (
	"context"
	"sync"
	"time"

	"wallet-ledger/internal/service"

	"github.com/rs/zerolog"
)

type OutboxWorker struct {
	relay     service.OutboxRelay
	interval  time.Duration
	batchSize int
	logger    zerolog.Logger
	stopChan  chan struct{}
	wg        *sync.WaitGroup
}

const (
	defaultInterval  = 2 * time.Second
	defaultBatchSize = 100
)

// NewOutboxWorker falls back to the relay's defaults for a non-positive interval or batch size.
func NewOutboxWorker(relay service.OutboxRelay, interval time.Duration, batchSize int, logger zerolog.Logger) *OutboxWorker {
	if interval <= 0 {
		interval = defaultInterval
	}
	if batchSize < 1 {
		batchSize = defaultBatchSize
	}
	return &OutboxWorker{
		relay:     relay,
		interval:  interval,
		batchSize: batchSize,
		logger:    logger,
		stopChan:  make(chan struct{}),
		wg:        &sync.WaitGroup{},
	}
}

func (w *OutboxWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("Outbox worker started")

		for {
			select {
			case <-ticker.C:
				w.drain(ctx)
			case <-w.stopChan:
				w.logger.Info().Msg("Outbox worker stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("Outbox worker stopping (context done)")
				return
			}
		}
	}()
}

// drain relays batches until the outbox is empty, a batch fails or the worker is stopped.
func (w *OutboxWorker) drain(ctx context.Context) {
	for {
		n, err := w.relay.RelayBatch(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("Failed to relay ledger events")
			return
		}
		if n < w.batchSize {
			return
		}

		select {
		case <-w.stopChan:
			return
		case <-ctx.Done():
			return
		default:
		}
	}
}

func (w *OutboxWorker) Stop() {
	close(w.stopChan)
	w.wg.Wait()
}
