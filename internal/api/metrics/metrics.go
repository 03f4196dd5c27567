// Package metrics defines the custom Prometheus metrics for the user
// management API. It is the single source of truth for metric names, labels,
// and help strings; HTTP-level request metrics come from echoprometheus and
// are not duplicated here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "usermgmt"

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "email_exists", "invalid_role" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "throttled" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenRejectionsTotal counts tokens rejected by the auth middleware.
// Label:
//   - reason: "expired", "invalid_signature", "malformed" or "missing"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of session tokens rejected during validation.",
	},
	[]string{"reason"},
)

// AccessDeniedTotal counts requests that carried a valid token but failed
// the role check.
var AccessDeniedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of authenticated requests denied by role-based access control.",
	},
)
