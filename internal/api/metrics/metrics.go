// Package metrics defines all custom Prometheus metrics for the HR system.
// It is the single source of truth for metric names, labels, and help
// strings. The promauto vars register against the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hr"

// ── Time-recording metrics ────────────────────────────────────────────────────

// TimeRecordsCreatedTotal counts successfully persisted time records.
// Label:
//   - has_project: "true" when the record carries a project reference
var TimeRecordsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "time_records_created_total",
		Help:      "Total number of time records successfully persisted.",
	},
	[]string{"has_project"},
)

// TimeRecordRejectionsTotal counts submissions rejected before persistence.
// Label:
//   - reason: "daily_cap", "before_contract", "duplicate", "invalid"
var TimeRecordRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "time_record_rejections_total",
		Help:      "Total number of time-record submissions rejected, by reason.",
	},
	[]string{"reason"},
)

// ── Report metrics ────────────────────────────────────────────────────────────

// ReportsGeneratedTotal counts report files written.
// Label:
//   - kind: "department", "project", or "total"
var ReportsGeneratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_generated_total",
		Help:      "Total number of report files written, by kind.",
	},
	[]string{"kind"},
)

// ReportErrorsTotal counts report generations that failed.
// Label:
//   - reason: "empty", "query", "io"
var ReportErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_errors_total",
		Help:      "Total number of report generations that failed, by reason.",
	},
	[]string{"reason"},
)
