package service

import (
	"context"
	"errors"
	"fmt"

	"wallet-ledger/internal/ledger"
	"wallet-ledger/internal/metrics"
	"wallet-ledger/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// SetWithdrawalStatus moves a withdrawal through its lifecycle. Failed and
// Rejected give the full amount back to the withdrawal balance in the same
// transaction as the status change.
func (s *WalletServiceImpl) SetWithdrawalStatus(ctx context.Context, transactionID string, status model.WithdrawalStatus) (*model.WalletOperationResponse, error) {
	if _, err := model.ParseWithdrawalStatus(status.String()); err != nil {
		return nil, err
	}

	ctx = context.WithoutCancel(ctx)
	var result *model.WalletOperationResponse
	var userID string
	var changed bool
	var compensation []*model.LedgerEntry
	var wallet *model.Wallet

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		entry, err := s.ledgerRepo.GetForUpdate(ctx, transactionID, tx)
		if err != nil {
			return fmt.Errorf("get withdrawal: %w", err)
		}
		if entry.Type != model.EntryWithdraw {
			return fmt.Errorf("%w: %s is a %s entry", model.ErrNotWithdrawal, transactionID, entry.Type)
		}
		userID = entry.UserID

		current := model.WithdrawalPending
		if entry.WithdrawalStatus != nil {
			current = *entry.WithdrawalStatus
		}

		noop, err := ledger.CheckTransition(current, status)
		if err != nil {
			return err
		}
		if noop {
			w, err := s.walletRepo.Get(ctx, userID, tx)
			if err != nil {
				return fmt.Errorf("get wallet: %w", err)
			}
			s.logger.Info().Str("entry_id", transactionID).Str("status", status.String()).Msg("withdrawal status unchanged")
			result = &model.WalletOperationResponse{
				Status:  "already_processed",
				Message: fmt.Sprintf("Withdrawal is already %s", status),
				EntryID: transactionID,
				Wallet:  model.NewWalletResponse(w),
			}
			return nil
		}

		if err := s.ledgerRepo.UpdateWithdrawalStatus(ctx, transactionID, status, tx); err != nil {
			return fmt.Errorf("update withdrawal status: %w", err)
		}

		var w *model.Wallet
		if status.Compensated() {
			w, err = s.walletRepo.GetForUpdate(ctx, userID, tx)
			if err != nil {
				return fmt.Errorf("get wallet for update: %w", err)
			}
			refundedID := transactionID
			refund, err := s.applyRefund(ctx, tx, w, model.Breakdown{Withdrawal: entry.Amount},
				fmt.Sprintf("Refund for failed/rejected withdrawal ID: %s", transactionID), &refundedID)
			if err != nil {
				return err
			}
			compensation = append(compensation, refund)

			clawback, err := s.reversePromoCashback(ctx, tx, w, transactionID)
			if err != nil {
				return err
			}
			if clawback != nil {
				compensation = append(compensation, clawback)
			}
		} else {
			w, err = s.walletRepo.Get(ctx, userID, tx)
			if err != nil {
				return fmt.Errorf("get wallet: %w", err)
			}
		}

		s.logger.Info().
			Str("user_id", userID).
			Str("entry_id", transactionID).
			Str("from", current.String()).
			Str("to", status.String()).
			Bool("refunded", len(compensation) > 0).
			Msg("withdrawal status updated")

		changed = true

		result = &model.WalletOperationResponse{
			Status:  "success",
			Message: fmt.Sprintf("Withdrawal status updated to %s", status),
			EntryID: transactionID,
			Wallet:  model.NewWalletResponse(w),
		}
		wallet = w
		return nil
	})

	// Someone already refunded this withdrawal through the refund endpoint
	if errors.Is(err, model.ErrDuplicateRefund) {
		return nil, fmt.Errorf("%w: withdrawal %s was already refunded", model.ErrInvalidStatusTransition, transactionID)
	}
	if err != nil {
		return nil, err
	}

	if changed {
		metrics.WithdrawalStatusChanged(status.String())
	}
	if len(compensation) > 0 {
		s.committed(ctx, []*model.Wallet{wallet}, compensation...)
	}
	return result, nil
}

// reversePromoCashback takes back the promotional cashback credited against the
// tds of a withdrawal that will not be paid out. Whatever the user already spent
// comes out of the refunded withdrawal balance instead.
func (s *WalletServiceImpl) reversePromoCashback(ctx context.Context, tx pgx.Tx, w *model.Wallet, withdrawalID string) (*model.LedgerEntry, error) {
	linked, err := s.ledgerRepo.LinkedEntries(ctx, withdrawalID, tx)
	if err != nil {
		return nil, fmt.Errorf("get linked entries: %w", err)
	}

	promo := decimal.Zero
	for _, e := range linked {
		switch e.Type {
		case model.EntryCashback:
			promo = promo.Add(e.Amount)
		case model.EntryDeduct:
			promo = promo.Sub(e.Amount)
		}
	}
	if !promo.IsPositive() {
		return nil, nil
	}

	taken := decimal.Min(w.CashbackBalance, promo)
	b := model.Breakdown{Cashback: taken, Withdrawal: promo.Sub(taken)}
	w.Apply(b.Neg())
	if !w.NonNegative() {
		return nil, fmt.Errorf("%w: cannot reverse promotional cashback %s", model.ErrInsufficientBalance, promo.StringFixed(2))
	}
	if err := s.walletRepo.Update(ctx, w, tx); err != nil {
		return nil, fmt.Errorf("update wallet: %w", err)
	}

	entry := &model.LedgerEntry{
		UserID:       w.UserID,
		Type:         model.EntryDeduct,
		Amount:       promo,
		Breakdown:    b,
		Reason:       fmt.Sprintf("Promotional cashback reversed for withdrawal ID: %s", withdrawalID),
		WithdrawalID: &withdrawalID,
	}
	if err := s.record(ctx, tx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
