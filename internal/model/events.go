package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEvent is an outbox row announcing a committed ledger entry.
type LedgerEvent struct {
	ID          uuid.UUID       `json:"id"`
	EntryID     string          `json:"entry_id"`
	UserID      string          `json:"user_id"`
	Type        EntryType       `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Payload     json.RawMessage `json:"payload"`
	CreatedAt   time.Time       `json:"created_at"`
	PublishedAt *time.Time      `json:"published_at,omitempty"`
}

func NewLedgerEvent(entry *LedgerEntry) (*LedgerEvent, error) {
	payload, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("marshal ledger entry: %w", err)
	}
	return &LedgerEvent{
		ID:      uuid.New(),
		EntryID: entry.ID,
		UserID:  entry.UserID,
		Type:    entry.Type,
		Amount:  entry.Amount,
		Payload: payload,
	}, nil
}
