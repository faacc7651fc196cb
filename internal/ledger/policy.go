// Package ledger holds the pure money rules of the wallet: the waterfall debit
// allocator, the deposit/bonus calculator, the TDS engine and the withdrawal
// status machine. Nothing here touches storage; services call these functions
// on a locked wallet snapshot and persist the result.
package ledger

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Policy carries the tunable rates of the wallet.
type Policy struct {
	GSTRate            decimal.Decimal
	CashbackShare      decimal.Decimal
	TDSRate            decimal.Decimal
	EnforceBonusExpiry bool
}

func DefaultPolicy() Policy {
	return Policy{
		GSTRate:       decimal.RequireFromString("0.28"),
		CashbackShare: decimal.RequireFromString("0.30"),
		TDSRate:       decimal.RequireFromString("0.30"),
	}
}

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
