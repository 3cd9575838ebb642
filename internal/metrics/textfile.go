package metrics

import (
	"github.com/magni-/trm6-ch3-professional-accounting/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/pterm/pterm"
)

// Recorder collects the outcome of one validation run. The process does not
// serve HTTP, so the registry is exported as a node_exporter textfile.
type Recorder struct {
	registry     *prometheus.Registry
	balance      *prometheus.GaugeVec
	transactions *prometheus.GaugeVec
	failures     *prometheus.CounterVec
	lastRun      prometheus.Gauge
	logger       *pterm.Logger
}

func NewRecorder(logger *pterm.Logger) *Recorder {
	registry := prometheus.NewRegistry()

	return &Recorder{
		registry: registry,
		balance: promauto.With(registry).NewGaugeVec(prometheus.GaugeOpts{
			Name: "account_balance",
			Help: "Balance computed for the account in minor units",
		}, []string{"account_id"}),
		transactions: promauto.With(registry).NewGaugeVec(prometheus.GaugeOpts{
			Name: "account_transactions",
			Help: "Number of transactions read for the account",
		}, []string{"account_id"}),
		failures: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "account_check_failures_total",
			Help: "Failed validation runs by failure kind",
		}, []string{"kind"}),
		lastRun: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "account_check_last_run_timestamp_seconds",
			Help: "Unix time of the last validation run",
		}),
		logger: logger,
	}
}

func (r *Recorder) RecordBalance(acc *model.Account, balance int64) {
	r.lastRun.SetToCurrentTime()
	r.balance.WithLabelValues(acc.ID).Set(float64(balance))
	r.transactions.WithLabelValues(acc.ID).Set(float64(len(acc.Transactions)))
}

func (r *Recorder) RecordFailure(err error) {
	r.lastRun.SetToCurrentTime()
	r.failures.WithLabelValues(failureKind(err)).Inc()
}

// WriteTextfile atomically replaces path with the current registry contents.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return err
	}
	r.logger.Debug("metrics written", r.logger.Args("path", path))
	return nil
}

func failureKind(err error) string {
	switch model.KindOf(err) {
	case model.KindIO:
		return "io"
	case model.KindParse:
		return "parse"
	case model.KindNegativeBalance:
		return "negative_balance"
	default:
		return "other"
	}
}
