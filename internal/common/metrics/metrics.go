// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AuditsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aso_audits_completed_total",
			Help: "Total number of audits completed",
		},
		[]string{"platform"},
	)

	AuditsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aso_audits_failed_total",
			Help: "Total number of audits that failed",
		},
		[]string{"platform", "error_code"},
	)

	AuditDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "aso_audit_duration_seconds",
			Help: "Duration of a full audit run in seconds",
		},
		[]string{"platform"},
	)

	CombosGenerated = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aso_combos_generated",
			Help:    "Number of combos produced per generation pass",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
		[]string{"locale"},
	)

	KpiFormulaFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aso_kpi_formula_failures_total",
			Help: "Per-KPI formula failures recorded as neutral contributions",
		},
		[]string{"kpi_id"},
	)
)
