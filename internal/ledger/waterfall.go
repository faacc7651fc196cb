package ledger

import (
	"fmt"
	"time"

	"wallet-ledger/internal/model"

	"github.com/shopspring/decimal"
)

// Allocate plans a debit of amount against w in waterfall order:
// signup bonus (capped at bonusUsePercent of amount), cashback (capped at the
// cashback share of what is left), deposit, then withdrawal balance.
//
// The plan is computed on values only. w is never modified, so a shortfall
// leaves nothing to roll back.
func Allocate(w *model.Wallet, amount, bonusUsePercent decimal.Decimal, now time.Time, p Policy) (model.Breakdown, error) {
	if err := model.ValidateAmount(amount); err != nil {
		return model.Breakdown{}, err
	}
	if bonusUsePercent.IsNegative() || bonusUsePercent.GreaterThan(hundred) {
		bonusUsePercent = decimal.Zero
	}

	var plan model.Breakdown
	outstanding := amount

	bonusAvailable := w.SignupBonusBalance
	if p.EnforceBonusExpiry && !w.BonusExpiry.IsZero() && now.After(w.BonusExpiry) {
		bonusAvailable = decimal.Zero
	}
	bonusCap := round2(amount.Mul(bonusUsePercent).Div(hundred))
	plan.SignupBonus = decimal.Max(decimal.Zero, decimal.Min(bonusAvailable, bonusCap, outstanding))
	outstanding = outstanding.Sub(plan.SignupBonus)

	cashbackCap := round2(outstanding.Mul(p.CashbackShare))
	plan.Cashback = decimal.Max(decimal.Zero, decimal.Min(w.CashbackBalance, cashbackCap, outstanding))
	outstanding = outstanding.Sub(plan.Cashback)

	plan.Deposit = decimal.Max(decimal.Zero, decimal.Min(w.DepositBalance, outstanding))
	outstanding = outstanding.Sub(plan.Deposit)

	plan.Withdrawal = decimal.Max(decimal.Zero, decimal.Min(w.WithdrawalBalance, outstanding))
	outstanding = outstanding.Sub(plan.Withdrawal)

	if outstanding.IsPositive() {
		return model.Breakdown{}, fmt.Errorf("%w: short by %s", model.ErrInsufficientBalance, outstanding.StringFixed(2))
	}
	return plan, nil
}
