package model

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type Wallet struct {
	UserID                 string          `json:"user_id"`
	DepositBalance         decimal.Decimal `json:"deposit_balance"`
	WithdrawalBalance      decimal.Decimal `json:"withdrawal_balance"`
	CashbackBalance        decimal.Decimal `json:"cashback_balance"`
	SignupBonusBalance     decimal.Decimal `json:"signup_bonus_balance"`
	BonusExpiry            time.Time       `json:"bonus_expiry"`
	FirstDepositBonusGiven bool            `json:"first_deposit_bonus_given"`
	Version                int64           `json:"version"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

// Total is the sum of the four sub-balances.
func (w *Wallet) Total() decimal.Decimal {
	return w.DepositBalance.Add(w.CashbackBalance).Add(w.WithdrawalBalance).Add(w.SignupBonusBalance)
}

// Apply adds a signed breakdown to the wallet's sub-balances.
func (w *Wallet) Apply(b Breakdown) {
	w.DepositBalance = w.DepositBalance.Add(b.Deposit)
	w.CashbackBalance = w.CashbackBalance.Add(b.Cashback)
	w.WithdrawalBalance = w.WithdrawalBalance.Add(b.Withdrawal)
	w.SignupBonusBalance = w.SignupBonusBalance.Add(b.SignupBonus)
}

// NonNegative reports whether every sub-balance is >= 0.
func (w *Wallet) NonNegative() bool {
	return !w.DepositBalance.IsNegative() && !w.CashbackBalance.IsNegative() &&
		!w.WithdrawalBalance.IsNegative() && !w.SignupBonusBalance.IsNegative()
}

// Breakdown is the per-sub-balance contribution of a single ledger entry.
type Breakdown struct {
	Deposit     decimal.Decimal `json:"deposit_balance"`
	Cashback    decimal.Decimal `json:"cashback_balance"`
	Withdrawal  decimal.Decimal `json:"withdrawal_balance"`
	SignupBonus decimal.Decimal `json:"signup_bonus_balance"`
}

func (b Breakdown) Sum() decimal.Decimal {
	return b.Deposit.Add(b.Cashback).Add(b.Withdrawal).Add(b.SignupBonus)
}

func (b Breakdown) Neg() Breakdown {
	return Breakdown{
		Deposit:     b.Deposit.Neg(),
		Cashback:    b.Cashback.Neg(),
		Withdrawal:  b.Withdrawal.Neg(),
		SignupBonus: b.SignupBonus.Neg(),
	}
}

type LedgerEntry struct {
	ID                    string            `json:"id"`
	UserID                string            `json:"user_id"`
	Type                  EntryType         `json:"type"`
	Amount                decimal.Decimal   `json:"amount"`
	Breakdown             Breakdown         `json:"breakdown"`
	Reason                string            `json:"reason"`
	ContestID             *string           `json:"contest_id,omitempty"`
	MatchID               *string           `json:"match_id,omitempty"`
	RefundedTransactionID *string           `json:"refunded_transaction_id,omitempty"`
	WithdrawalStatus      *WithdrawalStatus `json:"withdrawal_status,omitempty"`
	WithdrawalID          *string           `json:"withdrawal_id,omitempty"` // tds, promo cashback and clawback of a withdrawal
	CreatedAt             time.Time         `json:"created_at"`
	UpdatedAt             time.Time         `json:"updated_at"`
}

// NewEntryID returns a time-ordered identifier for a ledger entry.
func NewEntryID() string {
	return ulid.Make().String()
}

// FinancialSummary aggregates a user's ledger inside one financial year.
type FinancialSummary struct {
	TotalDeposits    decimal.Decimal
	TotalWithdrawals decimal.Decimal // withdrawals not Failed or Rejected
	TDSAlreadyPaid   decimal.Decimal // tds of withdrawals not Failed or Rejected
	OpeningBalance   decimal.Decimal // balance on April 1st
}

// HistoryQuery selects one page of a user's ledger.
type HistoryQuery struct {
	UserID    string
	Page      int
	Limit     int
	Type      *EntryType
	SortBy    SortField
	SortOrder SortOrder
}

func (q HistoryQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// DebitRequest is a contest-join debit.
type DebitRequest struct {
	UserID          string
	Amount          decimal.Decimal
	BonusUsePercent decimal.Decimal
	Reason          string
	ContestID       string
	MatchID         string
}

// RefundRequest credits a previously debited breakdown back to a wallet.
type RefundRequest struct {
	UserID                string
	Breakdown             Breakdown
	Reason                string
	RefundedTransactionID string
}

// CreditRequest credits winnings, cashback or bonus.
type CreditRequest struct {
	UserID    string
	Type      EntryType
	Amount    decimal.Decimal
	Reason    string
	ContestID string
	MatchID   string
}
