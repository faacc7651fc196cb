package service

import (
	"context"
	"errors"
	"fmt"

	"wallet-ledger/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

func validateRefundBreakdown(b model.Breakdown) error {
	parts := []struct {
		name  string
		value decimal.Decimal
	}{
		{"deposit_balance", b.Deposit},
		{"cashback_balance", b.Cashback},
		{"withdrawal_balance", b.Withdrawal},
		{"signup_bonus_balance", b.SignupBonus},
	}
	for _, p := range parts {
		if p.value.IsNegative() {
			return fmt.Errorf("%w: %s must not be negative", model.ErrInvalidBreakdown, p.name)
		}
		if !p.value.Equal(p.value.Round(2)) {
			return fmt.Errorf("%w: %s has more than two decimal places", model.ErrInvalidBreakdown, p.name)
		}
	}
	if !b.Sum().IsPositive() {
		return fmt.Errorf("%w: refund must credit at least one balance", model.ErrInvalidAmount)
	}
	return nil
}

// applyRefund credits b to the locked wallet and logs the refund entry.
func (s *WalletServiceImpl) applyRefund(ctx context.Context, tx pgx.Tx, w *model.Wallet, b model.Breakdown, reason string, refundedTransactionID *string) (*model.LedgerEntry, error) {
	w.Apply(b)
	if err := s.walletRepo.Update(ctx, w, tx); err != nil {
		return nil, fmt.Errorf("update wallet: %w", err)
	}

	entry := &model.LedgerEntry{
		UserID:                w.UserID,
		Type:                  model.EntryRefund,
		Amount:                b.Sum(),
		Breakdown:             b,
		Reason:                reason,
		RefundedTransactionID: refundedTransactionID,
	}
	if err := s.record(ctx, tx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// alreadyRefunded builds the idempotent reply for a replayed refund.
func (s *WalletServiceImpl) alreadyRefunded(ctx context.Context, existing *model.LedgerEntry) (*model.WalletOperationResponse, error) {
	w, err := s.walletRepo.Get(ctx, existing.UserID, nil)
	if err != nil {
		return nil, fmt.Errorf("get wallet after duplicate refund: %w", err)
	}

	s.logger.Info().
		Str("user_id", existing.UserID).
		Str("entry_id", existing.ID).
		Str("refunded_transaction_id", *existing.RefundedTransactionID).
		Msg("refund already processed")

	return &model.WalletOperationResponse{
		Status:  "already_processed",
		Message: "Refund already processed for this transaction",
		EntryID: existing.ID,
		Wallet:  model.NewWalletResponse(w),
	}, nil
}

func (s *WalletServiceImpl) Refund(ctx context.Context, req model.RefundRequest) (*model.WalletOperationResponse, error) {
	if err := validateRefundBreakdown(req.Breakdown); err != nil {
		return nil, err
	}

	reason := req.Reason
	if reason == "" {
		reason = "Generic Refund"
	}
	refundedID := optional(req.RefundedTransactionID)

	ctx = context.WithoutCancel(ctx)

	if refundedID != nil {
		existing, err := s.ledgerRepo.FindRefund(ctx, *refundedID, nil)
		if err != nil && !errors.Is(err, model.ErrTransactionNotFound) {
			return nil, fmt.Errorf("find refund: %w", err)
		}
		if existing != nil {
			return s.alreadyRefunded(ctx, existing)
		}
	}

	var result *model.WalletOperationResponse
	var entry *model.LedgerEntry
	var wallet *model.Wallet

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		w, err := s.walletRepo.GetOrCreateForUpdate(ctx, req.UserID, s.now().Add(s.opts.BonusValidity), tx)
		if err != nil {
			return fmt.Errorf("get wallet for update: %w", err)
		}

		entry, err = s.applyRefund(ctx, tx, w, req.Breakdown, reason, refundedID)
		if err != nil {
			return err
		}

		s.logger.Info().
			Str("user_id", req.UserID).
			Str("entry_id", entry.ID).
			Str("amount", entry.Amount.StringFixed(2)).
			Str("refunded_transaction_id", req.RefundedTransactionID).
			Msg("refund applied")

		result = &model.WalletOperationResponse{
			Status:  "success",
			Message: "Refund successful",
			EntryID: entry.ID,
			Wallet:  model.NewWalletResponse(w),
		}
		wallet = w
		return nil
	})

	// A concurrent refund for the same transaction won the unique index
	if errors.Is(err, model.ErrDuplicateRefund) && refundedID != nil {
		existing, findErr := s.ledgerRepo.FindRefund(ctx, *refundedID, nil)
		if findErr != nil {
			return nil, fmt.Errorf("find refund after duplicate: %w", findErr)
		}
		return s.alreadyRefunded(ctx, existing)
	}
	if err != nil {
		return nil, err
	}

	s.committed(ctx, []*model.Wallet{wallet}, entry)
	return result, nil
}
