package events

import (
	"context"
	"encoding/json"

	"wallet-ledger/internal/model"
)

// Publisher delivers committed ledger events to downstream consumers. A nil
// error means every event in the batch was accepted.
type Publisher interface {
	Publish(ctx context.Context, events []*model.LedgerEvent) error
	Close() error
}

// message is the wire form of a ledger event.
type message struct {
	EventID   string          `json:"event_id"`
	EntryID   string          `json:"entry_id"`
	UserID    string          `json:"user_id"`
	Type      model.EntryType `json:"type"`
	Amount    string          `json:"amount"`
	Entry     json.RawMessage `json:"entry"`
	CreatedAt int64           `json:"created_at"`
}

func toMessage(ev *model.LedgerEvent) message {
	return message{
		EventID:   ev.ID.String(),
		EntryID:   ev.EntryID,
		UserID:    ev.UserID,
		Type:      ev.Type,
		Amount:    ev.Amount.StringFixed(2),
		Entry:     ev.Payload,
		CreatedAt: ev.CreatedAt.UnixMilli(),
	}
}
