package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a positive monetary amount with at most two decimal places.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidAmount, err.Error())
	}
	if err := ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

// ValidateAmount rejects non-positive amounts and amounts finer than one paisa.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidAmount)
	}
	if !amount.Equal(amount.Round(2)) {
		return fmt.Errorf("%w: at most two decimal places allowed", ErrInvalidAmount)
	}
	return nil
}

type DepositRequest struct {
	Amount string `json:"amount" binding:"required" example:"1000.00"`
}

type DebitRequestBody struct {
	Amount                string `json:"amount" binding:"required" example:"100.00"`
	SignupBonusPercentage string `json:"signup_bonus_percentage" example:"50"`
	Reason                string `json:"reason" example:"Contest entry"`
	ContestID             string `json:"contest_id" example:"64b7f0c2a1b2c3d4e5f60718"`
	MatchID               string `json:"match_id" example:"550e8400-e29b-41d4-a716-446655440000"`
}

type WithdrawRequest struct {
	Amount string `json:"amount" binding:"required" example:"500.00"`
}

type CreditRequestBody struct {
	Type      string `json:"type" binding:"required,oneof=winning cashback bonus" example:"winning" enums:"winning,cashback,bonus"`
	Amount    string `json:"amount" binding:"required" example:"250.00"`
	Reason    string `json:"reason" example:"Winnings credited"`
	ContestID string `json:"contest_id"`
	MatchID   string `json:"match_id"`
}

// BreakdownBody requires every sub-balance key to be present.
type BreakdownBody struct {
	Deposit     *decimal.Decimal `json:"deposit_balance" binding:"required" swaggertype:"string" example:"50.00"`
	Cashback    *decimal.Decimal `json:"cashback_balance" binding:"required" swaggertype:"string" example:"10.00"`
	Withdrawal  *decimal.Decimal `json:"withdrawal_balance" binding:"required" swaggertype:"string" example:"0"`
	SignupBonus *decimal.Decimal `json:"signup_bonus_balance" binding:"required" swaggertype:"string" example:"40.00"`
}

func (b BreakdownBody) Breakdown() Breakdown {
	return Breakdown{
		Deposit:     *b.Deposit,
		Cashback:    *b.Cashback,
		Withdrawal:  *b.Withdrawal,
		SignupBonus: *b.SignupBonus,
	}
}

type RefundRequestBody struct {
	Breakdown             *BreakdownBody `json:"breakdown" binding:"required"`
	Reason                string         `json:"reason" example:"Contest cancelled"`
	RefundedTransactionID string         `json:"refunded_transaction_id" example:"01J9ZQ6W3V5R8K2M4N7P9T1XYZ"`
}

type WithdrawalStatusRequest struct {
	Status string `json:"status" binding:"required" example:"Rejected" enums:"Pending,Processing,Completed,Failed,Rejected"`
}

type ReferralBonusRequest struct {
	ReferrerID string `json:"referrer_id" binding:"required"`
	RefereeID  string `json:"referee_id" binding:"required"`
}

type ConvertBonusRequest struct {
	Amount string `json:"amount" binding:"required" example:"25.00"`
	Reason string `json:"reason"`
}

// WalletResponse is a wallet with fixed two-decimal balances and the computed total.
type WalletResponse struct {
	UserID                 string    `json:"user_id"`
	DepositBalance         string    `json:"deposit_balance" example:"720.00"`
	WithdrawalBalance      string    `json:"withdrawal_balance" example:"0.00"`
	CashbackBalance        string    `json:"cashback_balance" example:"280.00"`
	SignupBonusBalance     string    `json:"signup_bonus_balance" example:"1000.00"`
	TotalBalance           string    `json:"total_balance" example:"2000.00"`
	BonusExpiry            time.Time `json:"bonus_expiry"`
	FirstDepositBonusGiven bool      `json:"first_deposit_bonus_given"`
}

func NewWalletResponse(w *Wallet) *WalletResponse {
	return &WalletResponse{
		UserID:                 w.UserID,
		DepositBalance:         w.DepositBalance.StringFixed(2),
		WithdrawalBalance:      w.WithdrawalBalance.StringFixed(2),
		CashbackBalance:        w.CashbackBalance.StringFixed(2),
		SignupBonusBalance:     w.SignupBonusBalance.StringFixed(2),
		TotalBalance:           w.Total().StringFixed(2),
		BonusExpiry:            w.BonusExpiry,
		FirstDepositBonusGiven: w.FirstDepositBonusGiven,
	}
}

type BreakdownResponse struct {
	Deposit     string `json:"deposit_balance"`
	Cashback    string `json:"cashback_balance"`
	Withdrawal  string `json:"withdrawal_balance"`
	SignupBonus string `json:"signup_bonus_balance"`
}

func NewBreakdownResponse(b Breakdown) BreakdownResponse {
	return BreakdownResponse{
		Deposit:     b.Deposit.StringFixed(2),
		Cashback:    b.Cashback.StringFixed(2),
		Withdrawal:  b.Withdrawal.StringFixed(2),
		SignupBonus: b.SignupBonus.StringFixed(2),
	}
}

type DepositResponse struct {
	Wallet    *WalletResponse   `json:"wallet"`
	EntryID   string            `json:"transaction_id"`
	Tax       string            `json:"gst" example:"280.00"`
	Bonus     string            `json:"bonus" example:"1000.00"`
	BonusKind string            `json:"bonus_kind" example:"first_deposit"`
	Breakdown BreakdownResponse `json:"breakdown"`
}

type DebitResponse struct {
	Wallet    *WalletResponse   `json:"wallet"`
	EntryID   string            `json:"transaction_id"`
	Breakdown BreakdownResponse `json:"breakdown"`
}

type WithdrawResponse struct {
	Wallet               *WalletResponse `json:"wallet"`
	EntryID              string          `json:"transaction_id"`
	WithdrawalAmount     string          `json:"withdrawal_amount" example:"10000.00"`
	TDSDeducted          string          `json:"tds_deducted" example:"2400.00"`
	AmountCreditedToBank string          `json:"amount_credited_to_bank" example:"7600.00"`
	NetWinnings          string          `json:"net_winnings" example:"8000.00"`
	PromotionalCashback  string          `json:"promotional_cashback" example:"2400.00"`
}

type WalletOperationResponse struct {
	Status  string          `json:"status" example:"success"`
	Message string          `json:"message,omitempty"`
	EntryID string          `json:"transaction_id,omitempty"`
	Wallet  *WalletResponse `json:"wallet"`
}

type ReferralBonusResponse struct {
	Amount   string          `json:"amount" example:"50.00"`
	Referrer *WalletResponse `json:"referrer"`
	Referee  *WalletResponse `json:"referee"`
}

type TransactionListResponse struct {
	Transactions      []*LedgerEntry `json:"transactions"`
	TotalTransactions int64          `json:"total_transactions"`
	TotalPages        int            `json:"total_pages"`
	CurrentPage       int            `json:"current_page"`
	HasNextPage       bool           `json:"has_next_page"`
	HasPrevPage       bool           `json:"has_prev_page"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"insufficient balance"`
	Code    string `json:"code,omitempty" example:"INSUFFICIENT_BALANCE"`
	Details string `json:"details,omitempty"`
}
