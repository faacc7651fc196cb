package metrics

import (
	"wallet-ledger/internal/model"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wallet_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wallet_http_request_duration_seconds",
		Help:    "Request latency",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"method", "route"})

	ledgerEntriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wallet_ledger_entries_total",
		Help: "Ledger entries committed, by type",
	}, []string{"type"})

	ledgerAmountTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wallet_ledger_amount_total",
		Help: "Sum of committed ledger entry amounts, by type",
	}, []string{"type"})

	cacheRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wallet_cache_requests_total",
		Help: "Wallet cache lookups, by result",
	}, []string{"result"})

	upstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wallet_upstream_requests_total",
		Help: "Calls to collaborating services, by service and outcome",
	}, []string{"service", "outcome"})

	WithdrawalStatusTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wallet_withdrawal_status_changes_total",
		Help: "Withdrawal status changes, by new status",
	}, []string{"status"})

	outboxPublishedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wallet_outbox_published_total",
		Help: "Ledger events delivered by the outbox relay",
	})

	outboxFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wallet_outbox_failures_total",
		Help: "Outbox relay batches that failed to publish",
	})
)

// EntriesCommitted records entries after their transaction committed.
func EntriesCommitted(entries ...*model.LedgerEntry) {
	for _, e := range entries {
		ledgerEntriesTotal.WithLabelValues(e.Type.String()).Inc()
		amount, _ := e.Amount.Float64()
		ledgerAmountTotal.WithLabelValues(e.Type.String()).Add(amount)
	}
}

func CacheResult(result string) {
	cacheRequestsTotal.WithLabelValues(result).Inc()
}

func UpstreamCall(service, outcome string) {
	upstreamRequestsTotal.WithLabelValues(service, outcome).Inc()
}

func WithdrawalStatusChanged(status string) {
	WithdrawalStatusTotal.WithLabelValues(status).Inc()
}

func OutboxPublished(n int) {
	outboxPublishedTotal.Add(float64(n))
}

func OutboxFailed() {
	outboxFailuresTotal.Inc()
}
