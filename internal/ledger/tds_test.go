package ledger

import (
	"testing"
	"time"

	"wallet-ledger/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTDS(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		summary   model.FinancialSummary
		wantNet   string
		wantTDS   string
		wantFinal string
	}{
		{
			name:   "net winnings taxed at thirty percent",
			amount: "10000",
			summary: model.FinancialSummary{
				TotalDeposits: d("2000"),
			},
			wantNet:   "8000",
			wantTDS:   "2400",
			wantFinal: "7600",
		},
		{
			name:   "no net winnings",
			amount: "500",
			summary: model.FinancialSummary{
				TotalDeposits: d("2000"),
			},
			wantNet:   "-1500",
			wantTDS:   "0",
			wantFinal: "500",
		},
		{
			name:   "already paid tds is subtracted",
			amount: "1000",
			summary: model.FinancialSummary{
				TotalDeposits:    d("2000"),
				TotalWithdrawals: d("10000"),
				TDSAlreadyPaid:   d("2400"),
			},
			wantNet:   "9000",
			wantTDS:   "300",
			wantFinal: "700",
		},
		{
			name:   "overpaid tds clamps to zero",
			amount: "100",
			summary: model.FinancialSummary{
				TotalWithdrawals: d("1000"),
				TDSAlreadyPaid:   d("1000"),
			},
			wantNet:   "1100",
			wantTDS:   "0",
			wantFinal: "100",
		},
		{
			name:   "tds never exceeds the withdrawal",
			amount: "100",
			summary: model.FinancialSummary{
				TotalWithdrawals: d("10000"),
			},
			wantNet:   "10100",
			wantTDS:   "100",
			wantFinal: "0",
		},
		{
			name:      "rounded to paisa",
			amount:    "33.33",
			summary:   model.FinancialSummary{},
			wantNet:   "33.33",
			wantTDS:   "10.00",
			wantFinal: "23.33",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTDS(d(tt.amount), tt.summary, DefaultPolicy())
			assert.True(t, got.NetWinnings.Equal(d(tt.wantNet)), "net %s", got.NetWinnings)
			assert.True(t, got.TDSToDeduct.Equal(d(tt.wantTDS)), "tds %s", got.TDSToDeduct)
			assert.True(t, got.FinalAmountToUser.Equal(d(tt.wantFinal)), "final %s", got.FinalAmountToUser)
			assert.True(t, got.TDSToDeduct.Add(got.FinalAmountToUser).Equal(d(tt.amount)))
		})
	}
}

func TestComputeTDS_OpeningBalanceReducesWinnings(t *testing.T) {
	got := ComputeTDS(d("1000"), model.FinancialSummary{OpeningBalance: d("1000")}, DefaultPolicy())
	assert.True(t, got.TDSToDeduct.Equal(decimal.Zero))
}

func TestFinancialYearStart(t *testing.T) {
	ist := time.FixedZone("IST", 5*60*60+30*60)

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"after april", time.Date(2025, 10, 16, 9, 0, 0, 0, ist), time.Date(2025, 4, 1, 0, 0, 0, 0, ist)},
		{"on april first", time.Date(2025, 4, 1, 0, 0, 0, 0, ist), time.Date(2025, 4, 1, 0, 0, 0, 0, ist)},
		{"before april", time.Date(2026, 3, 31, 23, 59, 0, 0, ist), time.Date(2025, 4, 1, 0, 0, 0, 0, ist)},
		{"january", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, FinancialYearStart(tt.now).Equal(tt.want))
		})
	}
}
