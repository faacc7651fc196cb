package service

import (
	"context"
	"fmt"
	"sort"

	"wallet-ledger/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type referralCredit struct {
	userID string
	reason string
}

// ReferralBonus credits both sides of a referral after confirming that both
// users exist. Both credits commit together.
func (s *WalletServiceImpl) ReferralBonus(ctx context.Context, referrerID, refereeID string) (*model.ReferralBonusResponse, error) {
	if referrerID == "" || refereeID == "" {
		return nil, fmt.Errorf("%w: referrer and referee are required", model.ErrInvalidReferral)
	}
	if referrerID == refereeID {
		return nil, fmt.Errorf("%w: a user cannot refer themselves", model.ErrInvalidReferral)
	}

	var referrer, referee *model.UserIdentity
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := s.users.GetUser(gctx, referrerID)
		if err != nil {
			return fmt.Errorf("get referrer: %w", err)
		}
		referrer = u
		return nil
	})
	g.Go(func() error {
		u, err := s.users.GetUser(gctx, refereeID)
		if err != nil {
			return fmt.Errorf("get referee: %w", err)
		}
		referee = u
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	amount := s.opts.ReferralBonusAmount
	credits := []referralCredit{
		{userID: referrerID, reason: fmt.Sprintf("Referral bonus for inviting %s", referee.Name)},
		{userID: refereeID, reason: fmt.Sprintf("Welcome bonus for joining via %s", referrer.Name)},
	}
	// Lock wallets in a stable order so crossed referrals cannot deadlock
	sort.Slice(credits, func(i, j int) bool { return credits[i].userID < credits[j].userID })

	ctx = context.WithoutCancel(ctx)
	wallets := make(map[string]*model.Wallet, len(credits))
	var entries []*model.LedgerEntry

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		expiry := s.now().Add(s.opts.BonusValidity)
		entries = entries[:0]

		for _, c := range credits {
			w, err := s.walletRepo.GetOrCreateForUpdate(ctx, c.userID, expiry, tx)
			if err != nil {
				return fmt.Errorf("get wallet for update: %w", err)
			}

			b := model.Breakdown{SignupBonus: amount}
			w.Apply(b)
			w.BonusExpiry = expiry
			if err := s.walletRepo.Update(ctx, w, tx); err != nil {
				return fmt.Errorf("update wallet: %w", err)
			}

			entry := &model.LedgerEntry{
				UserID:    c.userID,
				Type:      model.EntryBonus,
				Amount:    amount,
				Breakdown: b,
				Reason:    c.reason,
			}
			if err := s.record(ctx, tx, entry); err != nil {
				return err
			}
			wallets[c.userID] = w
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("referrer_id", referrerID).
		Str("referee_id", refereeID).
		Str("amount", amount.StringFixed(2)).
		Msg("referral bonus credited")

	s.committed(ctx, []*model.Wallet{wallets[referrerID], wallets[refereeID]}, entries...)
	return &model.ReferralBonusResponse{
		Amount:   amount.StringFixed(2),
		Referrer: model.NewWalletResponse(wallets[referrerID]),
		Referee:  model.NewWalletResponse(wallets[refereeID]),
	}, nil
}

// ConvertBonus moves amount from the signup bonus to the deposit balance.
func (s *WalletServiceImpl) ConvertBonus(ctx context.Context, userID string, amount decimal.Decimal, reason string) (*model.WalletOperationResponse, error) {
	if err := model.ValidateAmount(amount); err != nil {
		return nil, err
	}
	if reason == "" {
		reason = fmt.Sprintf("Converted ₹%s from bonus to deposit.", amount.StringFixed(2))
	}

	ctx = context.WithoutCancel(ctx)
	var result *model.WalletOperationResponse
	var entry *model.LedgerEntry
	var wallet *model.Wallet

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		w, err := s.walletRepo.GetForUpdate(ctx, userID, tx)
		if err != nil {
			return fmt.Errorf("get wallet for update: %w", err)
		}
		if w.SignupBonusBalance.LessThan(amount) {
			return fmt.Errorf("%w: signup bonus balance %s", model.ErrInsufficientBalance, w.SignupBonusBalance.StringFixed(2))
		}

		b := model.Breakdown{Deposit: amount, SignupBonus: amount.Neg()}
		w.Apply(b)
		if err := s.walletRepo.Update(ctx, w, tx); err != nil {
			return fmt.Errorf("update wallet: %w", err)
		}

		entry = &model.LedgerEntry{
			UserID:    userID,
			Type:      model.EntryConversion,
			Amount:    amount,
			Breakdown: b,
			Reason:    reason,
		}
		if err := s.record(ctx, tx, entry); err != nil {
			return err
		}

		s.logger.Info().
			Str("user_id", userID).
			Str("entry_id", entry.ID).
			Str("amount", amount.StringFixed(2)).
			Msg("bonus converted to deposit")

		result = &model.WalletOperationResponse{
			Status:  "success",
			Message: "Bonus successfully converted to deposit balance",
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
