package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"wallet-ledger/internal/cache"
	"wallet-ledger/internal/ledger"
	"wallet-ledger/internal/model"
	cachemocks "wallet-ledger/mocks/cache"
	mocks "wallet-ledger/mocks/repository"
	svcmocks "wallet-ledger/mocks/service"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

type fixture struct {
	walletRepo *mocks.WalletRepository
	ledgerRepo *mocks.LedgerRepository
	outboxRepo *mocks.OutboxRepository
	dbManager  *mocks.DBManager
	cache      *cachemocks.WalletCache
	offers     *svcmocks.OfferProvider
	contests   *svcmocks.ContestDirectory
	users      *svcmocks.UserDirectory
	svc        *WalletServiceImpl
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		walletRepo: mocks.NewWalletRepository(t),
		ledgerRepo: mocks.NewLedgerRepository(t),
		outboxRepo: mocks.NewOutboxRepository(t),
		dbManager:  mocks.NewDBManager(t),
		cache:      cachemocks.NewWalletCache(t),
		offers:     svcmocks.NewOfferProvider(t),
		contests:   svcmocks.NewContestDirectory(t),
		users:      svcmocks.NewUserDirectory(t),
	}
	f.svc = NewWalletService(f.walletRepo, f.ledgerRepo, f.outboxRepo, f.dbManager, f.cache,
		f.offers, f.contests, f.users, DefaultOptions(), zerolog.Nop()).(*WalletServiceImpl)
	f.svc.now = func() time.Time { return fixedNow }
	return f
}

func (f *fixture) expectTx() {
	f.dbManager.On("WithTransaction", mock.Anything, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error {
		return fn(nil)
	})
}

// expectRecord captures every inserted entry and accepts its outbox event.
func (f *fixture) expectRecord(inserted *[]*model.LedgerEntry) {
	f.ledgerRepo.On("Insert", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		*inserted = append(*inserted, args.Get(1).(*model.LedgerEntry))
	}).Return(nil)
	f.outboxRepo.On("Enqueue", mock.Anything, mock.MatchedBy(func(ev *model.LedgerEvent) bool {
		return ev.EntryID != "" && len(ev.Payload) > 0
	}), mock.Anything).Return(nil)
}

func (f *fixture) expectInvalidate(userIDs ...string) {
	for _, id := range userIDs {
		f.cache.On("Invalidate", mock.Anything, id, mock.Anything).Return(nil)
	}
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestGetBalance_CacheHit(t *testing.T) {
	f := newFixture(t)
	f.cache.On("Get", mock.Anything, "u1").Return(&model.Wallet{UserID: "u1", DepositBalance: d("12.5")}, nil)

	resp, err := f.svc.GetBalance(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "12.50", resp.DepositBalance)
	assert.Equal(t, "12.50", resp.TotalBalance)
}

func TestGetBalance_CacheMissPopulates(t *testing.T) {
	f := newFixture(t)
	w := &model.Wallet{UserID: "u1", WithdrawalBalance: d("300"), CashbackBalance: d("20")}
	f.cache.On("Get", mock.Anything, "u1").Return(nil, cache.ErrCacheMiss)
	f.walletRepo.On("Get", mock.Anything, "u1", mock.Anything).Return(w, nil)
	f.cache.On("Set", mock.Anything, w).Return(nil)

	resp, err := f.svc.GetBalance(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "320.00", resp.TotalBalance)
}

func TestGetBalance_CacheErrorFallsBackToStore(t *testing.T) {
	f := newFixture(t)
	w := &model.Wallet{UserID: "u1"}
	f.cache.On("Get", mock.Anything, "u1").Return(nil, errors.New("connection refused"))
	f.walletRepo.On("Get", mock.Anything, "u1", mock.Anything).Return(w, nil)
	f.cache.On("Set", mock.Anything, w).Return(errors.New("connection refused"))

	resp, err := f.svc.GetBalance(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "0.00", resp.TotalBalance)
}

func TestDeposit_InvalidatesCacheAtCommittedVersion(t *testing.T) {
	f := newFixture(t)
	var inserted []*model.LedgerEntry

	f.offers.On("ActiveDepositOffer", mock.Anything).Return(nil, nil)
	f.expectTx()
	f.walletRepo.On("GetOrCreateForUpdate", mock.Anything, "u1", mock.Anything, mock.Anything).
		Return(&model.Wallet{UserID: "u1", Version: 6, FirstDepositBonusGiven: true}, nil)
	f.walletRepo.On("Update", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { args.Get(1).(*model.Wallet).Version++ }).
		Return(nil)
	f.expectRecord(&inserted)
	f.cache.On("Invalidate", mock.Anything, "u1", int64(7)).Return(nil).Once()

	_, err := f.svc.Deposit(context.Background(), "u1", d("100"))

	require.NoError(t, err)
}

func TestGetBalance_WalletNotFound(t *testing.T) {
	f := newFixture(t)
	f.cache.On("Get", mock.Anything, "ghost").Return(nil, cache.ErrCacheMiss)
	f.walletRepo.On("Get", mock.Anything, "ghost", mock.Anything).Return(nil, model.ErrWalletNotFound)

	_, err := f.svc.GetBalance(context.Background(), "ghost")

	assert.ErrorIs(t, err, model.ErrWalletNotFound)
}

func TestDeposit_FirstDepositBonus(t *testing.T) {
	f := newFixture(t)
	var inserted []*model.LedgerEntry

	f.offers.On("ActiveDepositOffer", mock.Anything).Return(nil, nil)
	f.expectTx()
	f.walletRepo.On("GetOrCreateForUpdate", mock.Anything, "u1", mock.Anything, mock.Anything).Return(&model.Wallet{UserID: "u1"}, nil)
	f.walletRepo.On("Update", mock.Anything, mock.MatchedBy(func(w *model.Wallet) bool {
		return w.DepositBalance.Equal(d("720")) &&
			w.CashbackBalance.Equal(d("280")) &&
			w.SignupBonusBalance.Equal(d("1000")) &&
			w.WithdrawalBalance.IsZero() &&
			w.FirstDepositBonusGiven
	}), mock.Anything).Return(nil)
	f.expectRecord(&inserted)
	f.expectInvalidate("u1")

	resp, err := f.svc.Deposit(context.Background(), "u1", d("1000"))

	require.NoError(t, err)
	assert.Equal(t, "280.00", resp.Tax)
	assert.Equal(t, "1000.00", resp.Bonus)
	assert.Equal(t, string(ledger.BonusFirstDeposit), resp.BonusKind)
	assert.Equal(t, "2000.00", resp.Wallet.TotalBalance)

	require.Len(t, inserted, 1)
	assert.Equal(t, model.EntryDeposit, inserted[0].Type)
	assert.True(t, inserted[0].Amount.Equal(d("1000")))
	assert.Equal(t, resp.EntryID, inserted[0].ID)
	assert.Contains(t, inserted[0].Reason, "First deposit bonus")
}

func TestDeposit_PromotionalOfferKeepsFirstDepositFlag(t *testing.T) {
	f := newFixture(t)
	var inserted []*model.LedgerEntry

	f.offers.On("ActiveDepositOffer", mock.Anything).Return(&ledger.DepositOffer{
		Tiers:          []ledger.OfferTier{{MinDeposit: d("500"), BonusPercentage: d("10")}},
		MaxBonusAmount: d("50"),
	}, nil)
	f.expectTx()
	f.walletRepo.On("GetOrCreateForUpdate", mock.Anything, "u1", mock.Anything, mock.Anything).Return(&model.Wallet{UserID: "u1"}, nil)
	f.walletRepo.On("Update", mock.Anything, mock.MatchedBy(func(w *model.Wallet) bool {
		return w.SignupBonusBalance.Equal(d("50")) && !w.FirstDepositBonusGiven
	}), mock.Anything).Return(nil)
	f.expectRecord(&inserted)
	f.expectInvalidate("u1")

	resp, err := f.svc.Deposit(context.Background(), "u1", d("1000"))

	require.NoError(t, err)
	assert.Equal(t, "50.00", resp.Bonus)
	assert.Equal(t, string(ledger.BonusPromotional), resp.BonusKind)
}

func TestDeposit_OfferServiceDownFallsBack(t *testing.T) {
	f := newFixture(t)
	var inserted []*model.LedgerEntry

	f.offers.On("ActiveDepositOffer", mock.Anything).Return(nil, model.ErrUpstreamUnavailable)
	f.expectTx()
	f.walletRepo.On("GetOrCreateForUpdate", mock.Anything, "u1", mock.Anything, mock.Anything).Return(&model.Wallet{
		UserID:                 "u1",
		FirstDepositBonusGiven: true,
	}, nil)
	f.walletRepo.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.expectRecord(&inserted)
	f.expectInvalidate("u1")

	resp, err := f.svc.Deposit(context.Background(), "u1", d("100"))

	require.NoError(t, err)
	assert.Equal(t, "0.00", resp.Bonus)
	assert.Equal(t, string(ledger.BonusNone), resp.BonusKind)
	assert.Equal(t, "72.00", resp.Wallet.DepositBalance)
}

func TestDeposit_InvalidAmount(t *testing.T) {
	f := newFixture(t)

	for _, amount := range []string{"0", "-5", "10.001"} {
		_, err := f.svc.Deposit(context.Background(), "u1", d(amount))
		assert.ErrorIs(t, err, model.ErrInvalidAmount, amount)
	}
}

func TestDebit_ContestJoinWithHalfBonus(t *testing.T) {
	f := newFixture(t)
	var inserted []*model.LedgerEntry

	f.expectTx()
	f.walletRepo.On("GetForUpdate", mock.Anything, "u1", mock.Anything).Return(&model.Wallet{
		UserID:             "u1",
		SignupBonusBalance: d("40"),
		CashbackBalance:    d("10"),
		DepositBalance:     d("100"),
		BonusExpiry:        fixedNow.Add(time.Hour),
	}, nil)
	f.walletRepo.On("Update", mock.Anything, mock.MatchedBy(func(w *model.Wallet) bool {
		return w.SignupBonusBalance.IsZero() && w.CashbackBalance.IsZero() && w.DepositBalance.Equal(d("50"))
	}), mock.Anything).Return(nil)
	f.expectRecord(&inserted)
	f.expectInvalidate("u1")

	resp, err := f.svc.Debit(context.Background(), model.DebitRequest{
		UserID:          "u1",
		Amount:          d("100"),
		BonusUsePercent: d("50"),
		ContestID:       "c1",
	})

	require.NoError(t, err)
	assert.Equal(t, model.BreakdownResponse{
		Deposit:     "50.00",
		Cashback:    "10.00",
		Withdrawal:  "0.00",
		SignupBonus: "40.00",
	}, resp.Breakdown)
	assert.Equal(t, "50.00", resp.Wallet.TotalBalance)

	require.Len(t, inserted, 1)
	assert.Equal(t, model.EntryDeduct, inserted[0].Type)
	require.NotNil(t, inserted[0].ContestID)
	assert.Equal(t, "c1", *inserted[0].ContestID)
	assert.Nil(t, inserted[0].MatchID)
	assert.Equal(t, "Deducted for contest join: Contest(c1) Match(N/A)", inserted[0].Reason)
}

func TestDebit_InsufficientBalance(t *testing.T) {
	f := newFixture(t)

	f.expectTx()
	f.walletRepo.On("GetForUpdate", mock.Anything, "u1", mock.Anything).Return(&model.Wallet{
		UserID:         "u1",
		DepositBalance: d("10"),
	}, nil)

	_, err := f.svc.Debit(context.Background(), model.DebitRequest{UserID: "u1", Amount: d("25")})

	assert.ErrorIs(t, err, model.ErrInsufficientBalance)
	f.walletRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestDebit_WalletNotFound(t *testing.T) {
	f := newFixture(t)

	f.expectTx()
	f.walletRepo.On("GetForUpdate", mock.Anything, "ghost", mock.Anything).Return(nil, model.ErrWalletNotFound)

	_, err := f.svc.Debit(context.Background(), model.DebitRequest{UserID: "ghost", Amount: d("25")})

	assert.ErrorIs(t, err, model.ErrWalletNotFound)
}

func TestWithdraw_TDSWithPromotionalCashback(t *testing.T) {
	f := newFixture(t)
	var inserted []*model.LedgerEntry

	f.expectTx()
	f.walletRepo.On("GetForUpdate", mock.Anything, "u1", mock.Anything).Return(&model.Wallet{
		UserID:            "u1",
		WithdrawalBalance: d("10000"),
	}, nil)
	f.ledgerRepo.On("FinancialSummary", mock.Anything, "u1", ledger.FinancialYearStart(fixedNow), mock.Anything).Return(model.FinancialSummary{
		TotalDeposits: d("2000"),
	}, nil)
	f.walletRepo.On("Update", mock.Anything, mock.MatchedBy(func(w *model.Wallet) bool {
		return w.WithdrawalBalance.IsZero() && w.CashbackBalance.Equal(d("2400"))
	}), mock.Anything).Return(nil)
	f.expectRecord(&inserted)
	f.expectInvalidate("u1")

	resp, err := f.svc.Withdraw(context.Background(), "u1", d("10000"))

	require.NoError(t, err)
	assert.Equal(t, "8000.00", resp.NetWinnings)
	assert.Equal(t, "2400.00", resp.TDSDeducted)
	assert.Equal(t, "7600.00", resp.AmountCreditedToBank)
	assert.Equal(t, "2400.00", resp.PromotionalCashback)

	require.Len(t, inserted, 3)
	assert.Equal(t, model.EntryWithdraw, inserted[0].Type)
	require.NotNil(t, inserted[0].WithdrawalStatus)
	assert.Equal(t, model.WithdrawalPending, *inserted[0].WithdrawalStatus)
	assert.Equal(t, resp.EntryID, inserted[0].ID)

	assert.Equal(t, model.EntryTDS, inserted[1].Type)
	assert.True(t, inserted[1].Amount.Equal(d("2400")))
	assert.True(t, inserted[1].Breakdown.Sum().IsZero())
	assert.Equal(t, "TDS (30%) on net winnings of ₹8000.00", inserted[1].Reason)

	assert.Equal(t, model.EntryCashback, inserted[2].Type)
	assert.True(t, inserted[2].Breakdown.Cashback.Equal(d("2400")))

	for _, linked := range inserted[1:] {
		require.NotNil(t, linked.WithdrawalID)
		assert.Equal(t, inserted[0].ID, *linked.WithdrawalID)
	}
}

func TestWithdraw_SecondWithdrawalWhileFirstPending(t *testing.T) {
	f := newFixture(t)
	var inserted []*model.LedgerEntry

	// The first ₹10000 withdrawal is still Pending: its amount and its ₹2400 tds both stand
	f.expectTx()
	f.walletRepo.On("GetForUpdate", mock.Anything, "u1", mock.Anything).Return(&model.Wallet{
		UserID:            "u1",
		WithdrawalBalance: d("10000"),
	}, nil)
	f.ledgerRepo.On("FinancialSummary", mock.Anything, "u1", mock.Anything, mock.Anything).Return(model.FinancialSummary{
		TotalDeposits:    d("2000"),
		TotalWithdrawals: d("10000"),
		TDSAlreadyPaid:   d("2400"),
	}, nil)
	f.walletRepo.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.expectRecord(&inserted)
	f.expectInvalidate("u1")

	resp, err := f.svc.Withdraw(context.Background(), "u1", d("10000"))

	require.NoError(t, err)
	assert.Equal(t, "18000.00", resp.NetWinnings)
	assert.Equal(t, "3000.00", resp.TDSDeducted)
	assert.Equal(t, "7000.00", resp.AmountCreditedToBank)
}

func TestWithdraw_WalletNotFound(t *testing.T) {
	f := newFixture(t)

	f.expectTx()
	f.walletRepo.On("GetForUpdate", mock.Anything, "ghost", mock.Anything).Return(nil, model.ErrWalletNotFound)

	_, err := f.svc.Withdraw(context.Background(), "ghost", d("100"))

	assert.ErrorIs(t, err, model.ErrWalletNotFound)
	f.ledgerRepo.AssertNotCalled(t, "FinancialSummary", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWithdraw_NoWinningsNoTDS(t *testing.T) {
	f := newFixture(t)
	var inserted []*model.LedgerEntry

	f.expectTx()
	f.walletRepo.On("GetForUpdate", mock.Anything, "u1", mock.Anything).Return(&model.Wallet{
		UserID:            "u1",
		WithdrawalBalance: d("500"),
	}, nil)
	f.ledgerRepo.On("FinancialSummary", mock.Anything, "u1", mock.Anything, mock.Anything).Return(model.FinancialSummary{
		TotalDeposits: d("1000"),
	}, nil)
	f.walletRepo.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.expectRecord(&inserted)
	f.expectInvalidate("u1")

	resp, err := f.svc.Withdraw(context.Background(), "u1", d("500"))

	require.NoError(t, err)
	assert.Equal(t, "0.00", resp.TDSDeducted)
	assert.Equal(t, "500.00", resp.AmountCreditedToBank)
	assert.Len(t, inserted, 1)
}

func TestWithdraw_PromoDisabled(t *testing.T) {
	f := newFixture(t)
	f.svc.opts.TDSCashbackPromo = false
	var inserted []*model.LedgerEntry

	f.expectTx()
	f.walletRepo.On("GetForUpdate", mock.Anything, "u1", mock.Anything).Return(&model.Wallet{
		UserID:            "u1",
		WithdrawalBalance: d("10000"),
	}, nil)
	f.ledgerRepo.On("FinancialSummary", mock.Anything, "u1", mock.Anything, mock.Anything).Return(model.FinancialSummary{
		TotalDeposits: d("2000"),
	}, nil)
	f.walletRepo.On("Update", mock.Anything, mock.MatchedBy(func(w *model.Wallet) bool {
		return w.CashbackBalance.IsZero()
	}), mock.Anything).Return(nil)
	f.expectRecord(&inserted)
	f.expectInvalidate("u1")

	resp, err := f.svc.Withdraw(context.Background(), "u1", d("10000"))

	require.NoError(t, err)
	assert.Equal(t, "0.00", resp.PromotionalCashback)
	assert.Len(t, inserted, 2)
}

func TestWithdraw_OnlyWithdrawalBalanceCounts(t *testing.T) {
	f := newFixture(t)

	f.expectTx()
	f.walletRepo.On("GetForUpdate", mock.Anything, "u1", mock.Anything).Return(&model.Wallet{
		UserID:            "u1",
		DepositBalance:    d("5000"),
		WithdrawalBalance: d("100"),
	}, nil)

	_, err := f.svc.Withdraw(context.Background(), "u1", d("500"))

	assert.ErrorIs(t, err, model.ErrInsufficientBalance)
}

func TestCredit_Routing(t *testing.T) {
	tests := []struct {
		entryType model.EntryType
		check     func(w *model.Wallet) bool
	}{
		{model.EntryWinning, func(w *model.Wallet) bool { return w.WithdrawalBalance.Equal(d("75")) }},
		{model.EntryCashback, func(w *model.Wallet) bool { return w.CashbackBalance.Equal(d("75")) }},
		{model.EntryBonus, func(w *model.Wallet) bool { return w.SignupBonusBalance.Equal(d("75")) }},
	}

	for _, tt := range tests {
		t.Run(tt.entryType.String(), func(t *testing.T) {
			f := newFixture(t)
			var inserted []*model.LedgerEntry

			f.expectTx()
			f.walletRepo.On("GetOrCreateForUpdate", mock.Anything, "u1", mock.Anything, mock.Anything).Return(&model.Wallet{UserID: "u1"}, nil)
			f.walletRepo.On("Update", mock.Anything, mock.MatchedBy(tt.check), mock.Anything).Return(nil)
			f.expectRecord(&inserted)
			f.expectInvalidate("u1")

			resp, err := f.svc.Credit(context.Background(), model.CreditRequest{
				UserID: "u1",
				Type:   tt.entryType,
				Amount: d("75"),
			})

			require.NoError(t, err)
			assert.Equal(t, "success", resp.Status)
			assert.Equal(t, "75.00", resp.Wallet.TotalBalance)
			require.Len(t, inserted, 1)
			assert.Equal(t, tt.entryType, inserted[0].Type)
		})
	}
}

func TestCredit_RejectsNonCreditType(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Credit(context.Background(), model.CreditRequest{
		UserID: "u1",
		Type:   model.EntryDeposit,
		Amount: d("75"),
	})

	assert.ErrorIs(t, err, model.ErrInvalidEntryType)
}

func TestCreditReason_Winning(t *testing.T) {
	reason := creditReason(model.CreditRequest{Type: model.EntryWinning, MatchID: "m1"})
	assert.Equal(t, "Winning credited for match m1 and contest N/A", reason)

	reason = creditReason(model.CreditRequest{Type: model.EntryWinning, Reason: "Rank 1"})
	assert.Equal(t, "Rank 1", reason)
}
