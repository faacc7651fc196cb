package events

import (
	"context"

	"wallet-ledger/internal/model"

	"github.com/rs/zerolog"
)

// LogPublisher writes events to the service log. Used when no broker is configured.
type LogPublisher struct {
	logger zerolog.Logger
}

var _ Publisher = (*LogPublisher)(nil)

func NewLogPublisher(logger zerolog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, events []*model.LedgerEvent) error {
	for _, ev := range events {
		p.logger.Info().
			Str("event_id", ev.ID.String()).
			Str("entry_id", ev.EntryID).
			Str("user_id", ev.UserID).
			Str("type", ev.Type.String()).
			Str("amount", ev.Amount.StringFixed(2)).
			Msg("ledger event")
	}
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
