// Package metrics defines and registers all custom Prometheus metrics for
// the time-tracker API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry via promauto
// at package init; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "timetracker"

// ── Record metrics ────────────────────────────────────────────────────────────

// RecordWritesTotal counts record mutations that completed successfully.
// Labels:
//   - action: "created", "updated", or "deleted"
//   - role: role of the acting user (e.g. "admin")
var RecordWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "record_writes_total",
		Help:      "Total number of record mutations successfully applied.",
	},
	[]string{"action", "role"},
)

// RecordWriteFailuresTotal counts record mutations that failed.
// Labels:
//   - action: the attempted mutation
//   - reason: short description of the failure (e.g. "storage")
var RecordWriteFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "record_write_failures_total",
		Help:      "Total number of record mutations that failed.",
	},
	[]string{"action", "reason"},
)

// ExportsTotal counts export documents rendered.
// Label:
//   - scope: "self", "user" (admin filtered to one user), or "all"
var ExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of export documents rendered, by visibility scope.",
	},
	[]string{"scope"},
)

// ── Audit pipeline metrics ────────────────────────────────────────────────────

// AuditEventsTotal counts audit events persisted to the trail.
// Label:
//   - action: the record mutation the event describes
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events successfully persisted.",
	},
	[]string{"action"},
)

// AuditFailuresTotal counts audit events that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "insert_failed")
var AuditFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_failures_total",
		Help:      "Total number of audit events that failed processing.",
	},
	[]string{"reason"},
)

// AuditQueueDepth tracks the current number of audit events waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
