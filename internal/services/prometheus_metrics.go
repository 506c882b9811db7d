package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	moneyMovementTotal    *prometheus.CounterVec
	moneyMovementDuration prometheus.Histogram
	retryAttempts         *prometheus.CounterVec
	versionConflicts      *prometheus.CounterVec
	authorizationDenials  *prometheus.CounterVec
	transferAmount        prometheus.Histogram
	interestAppliedTotal  prometheus.Counter
	activeAccountsTotal   prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		moneyMovementTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "money_movement_total",
				Help: "Total number of money movement commands by operation and status",
			},
			[]string{"operation", "status"},
		),
		moneyMovementDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "money_movement_duration_milliseconds",
				Help:    "Money movement command duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		retryAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "money_movement_retry_attempts_total",
				Help: "Total number of optimistic concurrency retries",
			},
			[]string{"operation"},
		),
		versionConflicts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "version_conflicts_total",
				Help: "Total number of optimistic concurrency conflicts by operation",
			},
			[]string{"operation"},
		),
		authorizationDenials: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authorization_denials_total",
				Help: "Total number of denied operations",
			},
			[]string{"operation"},
		),
		transferAmount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transfer_amount",
				Help:    "Transfer amount in source currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		interestAppliedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "interest_applications_total",
				Help: "Total number of interest applications to savings accounts",
			},
		),
		activeAccountsTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "active_accounts_total",
				Help: "Current number of active accounts",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	operation := tags["operation"]

	switch name {
	case "money_movement.success":
		m.moneyMovementTotal.WithLabelValues(operation, "success").Inc()
	case "money_movement.failed":
		m.moneyMovementTotal.WithLabelValues(operation, "failed_"+tags["reason"]).Inc()
	case "money_movement.retry":
		m.retryAttempts.WithLabelValues(operation).Inc()
	case "money_movement.version_conflict":
		m.versionConflicts.WithLabelValues(operation).Inc()
	case "authorization.denied":
		m.authorizationDenials.WithLabelValues(operation).Inc()
	case "interest.applied":
		m.interestAppliedTotal.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "money_movement":
		m.moneyMovementDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "transfer_amount":
		m.transferAmount.Observe(value)
	case "active_accounts":
		m.activeAccountsTotal.Set(value)
	}
}
