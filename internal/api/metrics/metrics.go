// Package metrics defines all custom Prometheus metrics for the records
// API. It is the single source of truth for metric names, labels, and help
// strings; per-route HTTP metrics come from the echoprometheus middleware
// and are not declared here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "records"

// ResourceMutationsTotal counts successful resource mutations.
// Labels:
//   - resource: "agent" or "case"
//   - operation: "create", "replace", "patch", "delete"
var ResourceMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resource_mutations_total",
		Help:      "Total number of successful resource mutations.",
	},
	[]string{"resource", "operation"},
)

// ValidationFailuresTotal counts requests rejected by payload validation.
// Label:
//   - kind: the failure kind (e.g. "unknown_field", "invalid_date")
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of requests rejected by validation, by failure kind.",
	},
	[]string{"kind"},
)

// RegistrationsTotal counts successfully created user accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AgentCacheTotal counts agent cache lookups.
// Label:
//   - result: "hit" or "miss"
var AgentCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "agent_cache_total",
		Help:      "Total number of agent cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)

// HashingDuration measures bcrypt work on the hashing pool.
// Label:
//   - operation: "hash" or "compare"
var HashingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "hashing_duration_seconds",
		Help:      "Duration of password hash and comparison jobs, queue wait included.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"operation"},
)
