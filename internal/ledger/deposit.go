package ledger

import (
	"sort"

	"wallet-ledger/internal/model"

	"github.com/shopspring/decimal"
)

type BonusKind string

const (
	BonusNone         BonusKind = "none"
	BonusPromotional  BonusKind = "promotional"
	BonusFirstDeposit BonusKind = "first_deposit"
)

// OfferTier grants BonusPercentage of a deposit of at least MinDeposit.
type OfferTier struct {
	MinDeposit      decimal.Decimal `json:"minDeposit"`
	BonusPercentage decimal.Decimal `json:"bonusPercentage"`
}

// DepositOffer is the active promotional deposit offer. A zero MaxBonusAmount
// means the bonus is not capped.
type DepositOffer struct {
	Tiers          []OfferTier     `json:"tiers"`
	MaxBonusAmount decimal.Decimal `json:"maxBonusAmount"`
}

// DepositPlan is the full effect of one gross deposit on a wallet.
type DepositPlan struct {
	Gross     decimal.Decimal
	Tax       decimal.Decimal
	Net       decimal.Decimal
	Bonus     decimal.Decimal
	BonusKind BonusKind
	Breakdown model.Breakdown
}

// SplitDeposit separates the GST set-aside from a gross deposit. The tax is
// rounded to paisa and the net is the exact remainder.
func SplitDeposit(amount decimal.Decimal, p Policy) (tax, net decimal.Decimal) {
	tax = round2(amount.Mul(p.GSTRate))
	return tax, amount.Sub(tax)
}

// OfferBonus returns the bonus of the highest tier the amount qualifies for.
func OfferBonus(amount decimal.Decimal, offer *DepositOffer) decimal.Decimal {
	if offer == nil || len(offer.Tiers) == 0 {
		return decimal.Zero
	}

	tiers := make([]OfferTier, len(offer.Tiers))
	copy(tiers, offer.Tiers)
	sort.Slice(tiers, func(i, j int) bool {
		return tiers[i].MinDeposit.GreaterThan(tiers[j].MinDeposit)
	})

	for _, tier := range tiers {
		if amount.LessThan(tier.MinDeposit) {
			continue
		}
		if !tier.BonusPercentage.IsPositive() {
			return decimal.Zero
		}
		bonus := amount.Mul(tier.BonusPercentage).Div(hundred)
		if offer.MaxBonusAmount.IsPositive() && bonus.GreaterThan(offer.MaxBonusAmount) {
			bonus = offer.MaxBonusAmount
		}
		return round2(bonus)
	}
	return decimal.Zero
}

// DepositBonus picks the bonus for a gross deposit. The promotional offer wins;
// without one, a wallet that never received the first-deposit bonus gets 100%
// of the gross amount.
func DepositBonus(amount decimal.Decimal, offer *DepositOffer, firstDepositBonusGiven bool) (decimal.Decimal, BonusKind) {
	if bonus := OfferBonus(amount, offer); bonus.IsPositive() {
		return bonus, BonusPromotional
	}
	if !firstDepositBonusGiven {
		return amount, BonusFirstDeposit
	}
	return decimal.Zero, BonusNone
}

// PlanDeposit computes tax, net deposit and bonus for a gross deposit.
func PlanDeposit(amount decimal.Decimal, offer *DepositOffer, firstDepositBonusGiven bool, p Policy) DepositPlan {
	tax, net := SplitDeposit(amount, p)
	plan := DepositPlan{
		Gross: amount,
		Tax:   tax,
		Net:   net,
	}

	plan.Bonus, plan.BonusKind = DepositBonus(amount, offer, firstDepositBonusGiven)
	plan.Breakdown = model.Breakdown{
		Deposit:     net,
		Cashback:    tax,
		Withdrawal:  decimal.Zero,
		SignupBonus: plan.Bonus,
	}
	return plan
}
