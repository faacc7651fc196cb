package ledger

import (
	"time"

	"wallet-ledger/internal/model"

	"github.com/shopspring/decimal"
)

type TDSResult struct {
	NetWinnings       decimal.Decimal
	TDSToDeduct       decimal.Decimal
	FinalAmountToUser decimal.Decimal
}

// ComputeTDS withholds tax on the cumulative net winnings of the financial
// year, minus what was already withheld, never more than the withdrawal itself.
func ComputeTDS(amount decimal.Decimal, fy model.FinancialSummary, p Policy) TDSResult {
	newTotalWithdrawals := fy.TotalWithdrawals.Add(amount)
	netWinnings := newTotalWithdrawals.Sub(fy.TotalDeposits).Sub(fy.OpeningBalance)

	if !netWinnings.IsPositive() {
		return TDSResult{
			NetWinnings:       netWinnings,
			TDSToDeduct:       decimal.Zero,
			FinalAmountToUser: amount,
		}
	}

	due := netWinnings.Mul(p.TDSRate).Sub(fy.TDSAlreadyPaid)
	tds := round2(decimal.Min(decimal.Max(due, decimal.Zero), amount))

	return TDSResult{
		NetWinnings:       netWinnings,
		TDSToDeduct:       tds,
		FinalAmountToUser: amount.Sub(tds),
	}
}

// FinancialYearStart returns the most recent April 1st (midnight, in now's
// location) that is not after now.
func FinancialYearStart(now time.Time) time.Time {
	year := now.Year()
	if now.Month() < time.April {
		year--
	}
	return time.Date(year, time.April, 1, 0, 0, 0, 0, now.Location())
}
