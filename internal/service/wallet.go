package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wallet-ledger/internal/cache"
	"wallet-ledger/internal/ledger"
	"wallet-ledger/internal/metrics"
	"wallet-ledger/internal/model"
	"wallet-ledger/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Options are the wallet rules that are not pure calculator inputs.
type Options struct {
	Policy              ledger.Policy
	TDSCashbackPromo    bool
	ReferralBonusAmount decimal.Decimal
	BonusValidity       time.Duration
}

func DefaultOptions() Options {
	return Options{
		Policy:              ledger.DefaultPolicy(),
		TDSCashbackPromo:    true,
		ReferralBonusAmount: decimal.NewFromInt(50),
		BonusValidity:       30 * 24 * time.Hour,
	}
}

type WalletServiceImpl struct {
	walletRepo repository.WalletRepository
	ledgerRepo repository.LedgerRepository
	outboxRepo repository.OutboxRepository
	dbManager  repository.DBManager
	cache      cache.WalletCache
	offers     OfferProvider
	contests   ContestDirectory
	users      UserDirectory
	opts       Options
	logger     zerolog.Logger
	now        func() time.Time
}

func NewWalletService(
	walletRepo repository.WalletRepository,
	ledgerRepo repository.LedgerRepository,
	outboxRepo repository.OutboxRepository,
	dbManager repository.DBManager,
	walletCache cache.WalletCache,
	offers OfferProvider,
	contests ContestDirectory,
	users UserDirectory,
	opts Options,
	logger zerolog.Logger,
) WalletService {
	return &WalletServiceImpl{
		walletRepo: walletRepo,
		ledgerRepo: ledgerRepo,
		outboxRepo: outboxRepo,
		dbManager:  dbManager,
		cache:      walletCache,
		offers:     offers,
		contests:   contests,
		users:      users,
		opts:       opts,
		logger:     logger,
		now:        time.Now,
	}
}

// record appends entries to the ledger and queues their events in the same tx
func (s *WalletServiceImpl) record(ctx context.Context, tx pgx.Tx, entries ...*model.LedgerEntry) error {
	for _, e := range entries {
		if e.ID == "" {
			e.ID = model.NewEntryID()
		}
		if err := s.ledgerRepo.Insert(ctx, e, tx); err != nil {
			return fmt.Errorf("insert %s entry: %w", e.Type, err)
		}

		ev, err := model.NewLedgerEvent(e)
		if err != nil {
			return err
		}
		if err := s.outboxRepo.Enqueue(ctx, ev, tx); err != nil {
			return fmt.Errorf("enqueue %s event: %w", e.Type, err)
		}
	}
	return nil
}

// committed runs after a mutation's transaction committed. Each wallet's cache
// entry is invalidated at its committed version so that a reader holding an
// older snapshot cannot put it back. Cache failures only cost freshness, so
// they are logged and swallowed.
func (s *WalletServiceImpl) committed(ctx context.Context, wallets []*model.Wallet, entries ...*model.LedgerEntry) {
	metrics.EntriesCommitted(entries...)
	for _, w := range wallets {
		if err := s.cache.Invalidate(ctx, w.UserID, w.Version); err != nil {
			s.logger.Warn().Err(err).Str("user_id", w.UserID).Msg("failed to invalidate wallet cache")
		}
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func (s *WalletServiceImpl) GetBalance(ctx context.Context, userID string) (*model.WalletResponse, error) {
	w, err := s.cache.Get(ctx, userID)
	switch {
	case err == nil:
		metrics.CacheResult("hit")
		return model.NewWalletResponse(w), nil
	case errors.Is(err, cache.ErrCacheMiss):
		metrics.CacheResult("miss")
	default:
		metrics.CacheResult("error")
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("wallet cache read failed")
	}

	w, err = s.walletRepo.Get(ctx, userID, nil)
	if err != nil {
		return nil, fmt.Errorf("get wallet: %w", err)
	}

	if err := s.cache.Set(ctx, w); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to populate wallet cache")
	}
	return model.NewWalletResponse(w), nil
}

// activeOffer never fails: an unreachable offer service means no offer.
func (s *WalletServiceImpl) activeOffer(ctx context.Context) *ledger.DepositOffer {
	offer, err := s.offers.ActiveDepositOffer(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("deposit offer lookup failed, falling back to first-deposit bonus")
		return nil
	}
	return offer
}

func depositReason(plan ledger.DepositPlan) string {
	label := "No bonus"
	switch plan.BonusKind {
	case ledger.BonusPromotional:
		label = "Promotional offer bonus"
	case ledger.BonusFirstDeposit:
		label = "First deposit bonus"
	}
	return fmt.Sprintf("Deposit ₹%s, GST ₹%s, Bonus ₹%s (%s)",
		plan.Gross.StringFixed(2), plan.Tax.StringFixed(2), plan.Bonus.StringFixed(2), label)
}

func (s *WalletServiceImpl) Deposit(ctx context.Context, userID string, amount decimal.Decimal) (*model.DepositResponse, error) {
	if err := model.ValidateAmount(amount); err != nil {
		return nil, err
	}

	// Offer lookup happens before any lock is taken
	offer := s.activeOffer(ctx)

	ctx = context.WithoutCancel(ctx)
	var result *model.DepositResponse
	var entry *model.LedgerEntry
	var wallet *model.Wallet

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		w, err := s.walletRepo.GetOrCreateForUpdate(ctx, userID, s.now().Add(s.opts.BonusValidity), tx)
		if err != nil {
			return fmt.Errorf("get wallet for update: %w", err)
		}

		plan := ledger.PlanDeposit(amount, offer, w.FirstDepositBonusGiven, s.opts.Policy)
		w.Apply(plan.Breakdown)
		if plan.BonusKind == ledger.BonusFirstDeposit {
			w.FirstDepositBonusGiven = true
		}

		if err := s.walletRepo.Update(ctx, w, tx); err != nil {
			return fmt.Errorf("update wallet: %w", err)
		}

		entry = &model.LedgerEntry{
			UserID:    userID,
			Type:      model.EntryDeposit,
			Amount:    amount,
			Breakdown: plan.Breakdown,
			Reason:    depositReason(plan),
		}
		if err := s.record(ctx, tx, entry); err != nil {
			return err
		}

		s.logger.Info().
			Str("user_id", userID).
			Str("entry_id", entry.ID).
			Str("amount", amount.StringFixed(2)).
			Str("gst", plan.Tax.StringFixed(2)).
			Str("bonus", plan.Bonus.StringFixed(2)).
			Str("bonus_kind", string(plan.BonusKind)).
			Msg("deposit applied")

		result = &model.DepositResponse{
			Wallet:    model.NewWalletResponse(w),
			EntryID:   entry.ID,
			Tax:       plan.Tax.StringFixed(2),
			Bonus:     plan.Bonus.StringFixed(2),
			BonusKind: string(plan.BonusKind),
			Breakdown: model.NewBreakdownResponse(plan.Breakdown),
		}
		wallet = w
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.committed(ctx, []*model.Wallet{wallet}, entry)
	return result, nil
}

func (s *WalletServiceImpl) Debit(ctx context.Context, req model.DebitRequest) (*model.DebitResponse, error) {
	if err := model.ValidateAmount(req.Amount); err != nil {
		return nil, err
	}

	reason := req.Reason
	if reason == "" {
		reason = fmt.Sprintf("Deducted for contest join: Contest(%s) Match(%s)", orNA(req.ContestID), orNA(req.MatchID))
	}

	ctx = context.WithoutCancel(ctx)
	var result *model.DebitResponse
	var entry *model.LedgerEntry
	var wallet *model.Wallet

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		w, err := s.walletRepo.GetForUpdate(ctx, req.UserID, tx)
		if err != nil {
			return fmt.Errorf("get wallet for update: %w", err)
		}

		plan, err := ledger.Allocate(w, req.Amount, req.BonusUsePercent, s.now(), s.opts.Policy)
		if err != nil {
			return err
		}
		w.Apply(plan.Neg())

		if err := s.walletRepo.Update(ctx, w, tx); err != nil {
			return fmt.Errorf("update wallet: %w", err)
		}

		entry = &model.LedgerEntry{
			UserID:    req.UserID,
			Type:      model.EntryDeduct,
			Amount:    req.Amount,
			Breakdown: plan,
			Reason:    reason,
			ContestID: optional(req.ContestID),
			MatchID:   optional(req.MatchID),
		}
		if err := s.record(ctx, tx, entry); err != nil {
			return err
		}

		s.logger.Info().
			Str("user_id", req.UserID).
			Str("entry_id", entry.ID).
			Str("amount", req.Amount.StringFixed(2)).
			Str("signup_bonus", plan.SignupBonus.StringFixed(2)).
			Str("cashback", plan.Cashback.StringFixed(2)).
			Str("deposit", plan.Deposit.StringFixed(2)).
			Str("withdrawal", plan.Withdrawal.StringFixed(2)).
			Msg("debit applied")

		result = &model.DebitResponse{
			Wallet:    model.NewWalletResponse(w),
			EntryID:   entry.ID,
			Breakdown: model.NewBreakdownResponse(plan),
		}
		wallet = w
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.committed(ctx, []*model.Wallet{wallet}, entry)
	return result, nil
}

func (s *WalletServiceImpl) Withdraw(ctx context.Context, userID string, amount decimal.Decimal) (*model.WithdrawResponse, error) {
	if err := model.ValidateAmount(amount); err != nil {
		return nil, err
	}

	ctx = context.WithoutCancel(ctx)
	var result *model.WithdrawResponse
	var entries []*model.LedgerEntry
	var wallet *model.Wallet

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		w, err := s.walletRepo.GetForUpdate(ctx, userID, tx)
		if err != nil {
			return fmt.Errorf("get wallet for update: %w", err)
		}

		if w.WithdrawalBalance.LessThan(amount) {
			return fmt.Errorf("%w: withdrawable balance %s", model.ErrInsufficientBalance, w.WithdrawalBalance.StringFixed(2))
		}

		now := s.now()
		summary, err := s.ledgerRepo.FinancialSummary(ctx, userID, ledger.FinancialYearStart(now), tx)
		if err != nil {
			return fmt.Errorf("financial summary: %w", err)
		}
		tds := ledger.ComputeTDS(amount, summary, s.opts.Policy)

		w.WithdrawalBalance = w.WithdrawalBalance.Sub(amount)

		pending := model.WithdrawalPending
		withdrawal := &model.LedgerEntry{
			ID:               model.NewEntryID(),
			UserID:           userID,
			Type:             model.EntryWithdraw,
			Amount:           amount,
			Breakdown:        model.Breakdown{Withdrawal: amount},
			Reason:           "Withdrawal by user",
			WithdrawalStatus: &pending,
		}
		entries = []*model.LedgerEntry{withdrawal}

		promoCashback := decimal.Zero
		if tds.TDSToDeduct.IsPositive() {
			entries = append(entries, &model.LedgerEntry{
				UserID: userID,
				Type:   model.EntryTDS,
				Amount: tds.TDSToDeduct,
				Reason: fmt.Sprintf("TDS (%s%%) on net winnings of ₹%s",
					s.opts.Policy.TDSRate.Shift(2).String(), tds.NetWinnings.StringFixed(2)),
				WithdrawalID: &withdrawal.ID,
			})

			if s.opts.TDSCashbackPromo {
				promoCashback = tds.TDSToDeduct
				w.CashbackBalance = w.CashbackBalance.Add(promoCashback)
				entries = append(entries, &model.LedgerEntry{
					UserID:       userID,
					Type:         model.EntryCashback,
					Amount:       promoCashback,
					Breakdown:    model.Breakdown{Cashback: promoCashback},
					Reason:       "Promotional cashback against TDS deduction",
					WithdrawalID: &withdrawal.ID,
				})
			}
		}

		if err := s.walletRepo.Update(ctx, w, tx); err != nil {
			return fmt.Errorf("update wallet: %w", err)
		}
		if err := s.record(ctx, tx, entries...); err != nil {
			return err
		}

		s.logger.Info().
			Str("user_id", userID).
			Str("entry_id", withdrawal.ID).
			Str("amount", amount.StringFixed(2)).
			Str("net_winnings", tds.NetWinnings.StringFixed(2)).
			Str("tds", tds.TDSToDeduct.StringFixed(2)).
			Str("promo_cashback", promoCashback.StringFixed(2)).
			Msg("withdrawal requested")

		result = &model.WithdrawResponse{
			Wallet:               model.NewWalletResponse(w),
			EntryID:              withdrawal.ID,
			WithdrawalAmount:     amount.StringFixed(2),
			TDSDeducted:          tds.TDSToDeduct.StringFixed(2),
			AmountCreditedToBank: tds.FinalAmountToUser.StringFixed(2),
			NetWinnings:          tds.NetWinnings.StringFixed(2),
			PromotionalCashback:  promoCashback.StringFixed(2),
		}
		wallet = w
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.committed(ctx, []*model.Wallet{wallet}, entries...)
	return result, nil
}

func creditBreakdown(t model.EntryType, amount decimal.Decimal) model.Breakdown {
	switch t {
	case model.EntryWinning:
		return model.Breakdown{Withdrawal: amount}
	case model.EntryCashback:
		return model.Breakdown{Cashback: amount}
	default:
		return model.Breakdown{SignupBonus: amount}
	}
}

func creditReason(req model.CreditRequest) string {
	if req.Reason != "" {
		return req.Reason
	}
	switch req.Type {
	case model.EntryWinning:
		return fmt.Sprintf("Winning credited for match %s and contest %s", orNA(req.MatchID), orNA(req.ContestID))
	case model.EntryCashback:
		return "Cashback credited"
	default:
		return "Bonus credited"
	}
}

func (s *WalletServiceImpl) Credit(ctx context.Context, req model.CreditRequest) (*model.WalletOperationResponse, error) {
	if _, err := model.ParseCreditType(req.Type.String()); err != nil {
		return nil, err
	}
	if err := model.ValidateAmount(req.Amount); err != nil {
		return nil, err
	}

	ctx = context.WithoutCancel(ctx)
	var result *model.WalletOperationResponse
	var entry *model.LedgerEntry
	var wallet *model.Wallet

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		w, err := s.walletRepo.GetOrCreateForUpdate(ctx, req.UserID, s.now().Add(s.opts.BonusValidity), tx)
		if err != nil {
			return fmt.Errorf("get wallet for update: %w", err)
		}

		b := creditBreakdown(req.Type, req.Amount)
		w.Apply(b)
		if err := s.walletRepo.Update(ctx, w, tx); err != nil {
			return fmt.Errorf("update wallet: %w", err)
		}

		entry = &model.LedgerEntry{
			UserID:    req.UserID,
			Type:      req.Type,
			Amount:    req.Amount,
			Breakdown: b,
			Reason:    creditReason(req),
			ContestID: optional(req.ContestID),
			MatchID:   optional(req.MatchID),
		}
		if err := s.record(ctx, tx, entry); err != nil {
			return err
		}

		s.logger.Info().
			Str("user_id", req.UserID).
			Str("entry_id", entry.ID).
			Str("type", req.Type.String()).
			Str("amount", req.Amount.StringFixed(2)).
			Msg("credit applied")

		result = &model.WalletOperationResponse{
			Status:  "success",
			Message: fmt.Sprintf("%s of ₹%s credited", req.Type, req.Amount.StringFixed(2)),
			EntryID: entry.ID,
			Wallet:  model.NewWalletResponse(w),
		}
		wallet = w
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.committed(ctx, []*model.Wallet{wallet}, entry)
	return result, nil
}
