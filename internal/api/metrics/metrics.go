// Package metrics defines and registers all custom Prometheus metrics for the
// acquisitions user API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Request-level HTTP metrics come from the echoprometheus middleware; the
// counters here cover domain events the middleware cannot see.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "acquisitions"

// AuthFailuresTotal counts rejected requests at the authentication middleware.
// Label:
//   - reason: "missing_token", "invalid_token", or "revoked_token"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the authentication middleware.",
	},
	[]string{"reason"},
)

// SignInsTotal counts sign-in attempts.
// Label:
//   - result: "success" or "failure"
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sign_ins_total",
		Help:      "Total number of sign-in attempts, by result.",
	},
	[]string{"result"},
)

// UsersMutatedTotal counts successful mutations on the user table.
// Label:
//   - operation: "create", "update", or "delete"
var UsersMutatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_mutated_total",
		Help:      "Total number of successful user mutations, by operation.",
	},
	[]string{"operation"},
)

// ForbiddenTotal counts authorization denials (role gate and ownership policy).
// Label:
//   - policy: "role_gate" or "ownership"
var ForbiddenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forbidden_total",
		Help:      "Total number of requests denied by an authorization policy.",
	},
	[]string{"policy"},
)
