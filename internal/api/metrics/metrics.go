// Package metrics defines the custom Prometheus metrics of the hotel PMS
// API. It is the single source of truth for metric names, labels and help
// strings. Metrics are registered with the default registry through
// promauto when the package is loaded.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hotel_pms"

// ── Session metrics ───────────────────────────────────────────────────────────

// SignInsTotal counts sign-in attempts.
// Label:
//   - result: "success", "invalid_credentials", "user_not_found" or "error"
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sign_ins_total",
		Help:      "Total number of sign-in attempts, by result.",
	},
	[]string{"result"},
)

// SessionsEndedTotal counts sessions that were closed.
// Labels:
//   - kind: "sign_out", "expired" or "revoked"
//   - reason: "idle", "hidden", "unauthorized" or empty
var SessionsEndedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_ended_total",
		Help:      "Total number of sessions ended, by kind and reason.",
	},
	[]string{"kind", "reason"},
)

// ActiveSessionMonitors tracks the sessions with armed expiry timers.
var ActiveSessionMonitors = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_session_monitors",
		Help:      "Current number of sessions with armed expiry timers.",
	},
)

// GateDecisionsTotal counts authorization gate outcomes.
// Labels:
//   - route: the protected route (e.g. "reservations")
//   - state: "authorized", "unauthorized" or "no_user"
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of authorization gate decisions, by route and state.",
	},
	[]string{"route", "state"},
)

// StaffLinksTotal counts add-staff outcomes.
// Label:
//   - outcome: "linked" (existing account), "created" (new account) or "unlinked"
var StaffLinksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "staff_links_total",
		Help:      "Total number of staff records created, by account link outcome.",
	},
	[]string{"outcome"},
)

// ── Write queue metrics ───────────────────────────────────────────────────────

// WritesTotal counts queued writes that finished.
// Labels:
//   - collection: target collection (e.g. "rooms")
//   - op: "delete"
//   - result: "ok", "error" or "dropped" (submitted after shutdown)
var WritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "writes_total",
		Help:      "Total number of queued writes executed, by collection, operation and result.",
	},
	[]string{"collection", "op", "result"},
)

// WritesDedupTotal counts delete deduplication decisions.
// Label:
//   - result: "hit" (repeat, skipped), "miss" or "error"
var WritesDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "writes_dedup_total",
		Help:      "Total number of delete deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// WriteQueueDepth tracks the writes waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var WriteQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "write_queue_depth",
		Help:      "Current number of writes pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// WriteDuration measures how long a queued write takes once dequeued.
// Label:
//   - collection: target collection
var WriteDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "write_duration_seconds",
		Help:      "Duration of queued writes from dequeue to completion.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"collection"},
)

// ── Pricing advisor metrics ───────────────────────────────────────────────────

// AdvisorRequestsTotal counts calls to the pricing advisor.
// Label:
//   - result: "ok" or "error"
var AdvisorRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "advisor_requests_total",
		Help:      "Total number of pricing advisor requests, by result.",
	},
	[]string{"result"},
)

// AdvisorRequestDuration measures pricing advisor round trips.
var AdvisorRequestDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "advisor_request_duration_seconds",
		Help:      "Duration of pricing advisor requests.",
		Buckets:   []float64{.25, .5, 1, 2.5, 5, 10, 20, 30},
	},
)

// ── Response cache metrics ────────────────────────────────────────────────────

// ResponseCacheTotal counts response cache events.
// Label:
//   - result: "stored", "stale_served" or "purged"
var ResponseCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "response_cache_total",
		Help:      "Total number of response cache events, by result.",
	},
	[]string{"result"},
)
