package service

import (
	"context"

	"wallet-ledger/internal/ledger"
	"wallet-ledger/internal/model"

	"github.com/shopspring/decimal"
)

// WalletService defines the business logic of the wallet ledger
type WalletService interface {
	GetBalance(ctx context.Context, userID string) (*model.WalletResponse, error)
	Deposit(ctx context.Context, userID string, amount decimal.Decimal) (*model.DepositResponse, error)
	Debit(ctx context.Context, req model.DebitRequest) (*model.DebitResponse, error)
	Withdraw(ctx context.Context, userID string, amount decimal.Decimal) (*model.WithdrawResponse, error)
	Credit(ctx context.Context, req model.CreditRequest) (*model.WalletOperationResponse, error)
	Refund(ctx context.Context, req model.RefundRequest) (*model.WalletOperationResponse, error)
	SetWithdrawalStatus(ctx context.Context, transactionID string, status model.WithdrawalStatus) (*model.WalletOperationResponse, error)
	ListTransactions(ctx context.Context, q model.HistoryQuery) (*model.TransactionListResponse, error)
	ReferralBonus(ctx context.Context, referrerID, refereeID string) (*model.ReferralBonusResponse, error)
	ConvertBonus(ctx context.Context, userID string, amount decimal.Decimal, reason string) (*model.WalletOperationResponse, error)
}

// OutboxRelay moves committed ledger events to the event bus
type OutboxRelay interface {
	// RelayBatch publishes one batch and returns how many events were delivered
	RelayBatch(ctx context.Context) (int, error)
}

// OfferProvider returns the active deposit offer, or nil when none is running
type OfferProvider interface {
	ActiveDepositOffer(ctx context.Context) (*ledger.DepositOffer, error)
}

// ContestDirectory resolves contest and match ids for transaction history
type ContestDirectory interface {
	ContestsByIDs(ctx context.Context, ids []string) (map[string]model.ContestDetails, error)
	MatchesByIDs(ctx context.Context, ids []string) (map[string]model.MatchDetails, error)
}

// UserDirectory validates users against the identity service
type UserDirectory interface {
	GetUser(ctx context.Context, userID string) (*model.UserIdentity, error)
}
