package model

import (
	"github.com/shopspring/decimal"
)

// ContestDetails is the contest service's summary of a contest.
type ContestDetails struct {
	ID        string          `json:"_id"`
	Name      string          `json:"name"`
	PrizePool decimal.Decimal `json:"prizePool"`
	EntryFee  decimal.Decimal `json:"entryFee"`
}

// MatchDetails is the contest service's summary of a match. Matches are keyed
// by both their document id and their public match id.
type MatchDetails struct {
	ID      string `json:"_id"`
	MatchID string `json:"matchId"`
	Name    string `json:"name"`
}

// UserIdentity is the identity service's view of a user.
type UserIdentity struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}
