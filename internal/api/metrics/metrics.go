// Package metrics defines and registers all custom Prometheus metrics for the
// SkillHire marketplace API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics endpoint and per-request HTTP metrics are wired in
// the router through echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "skillhire"

// HiresCreatedTotal counts hire requests successfully created.
var HiresCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "hires_created_total",
		Help:      "Total number of hire requests created.",
	},
)

// HireDecisionsTotal counts pending hires moved to a terminal state.
// Label:
//   - status: "Accepted" or "Rejected"
var HireDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "hire_decisions_total",
		Help:      "Total number of hire requests decided, by terminal status.",
	},
	[]string{"status"},
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

// RegistrationsTotal counts completed registrations.
// Label:
//   - role: "Client", "Worker", or "Admin"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of completed registrations, by role.",
	},
	[]string{"role"},
)

// UsersDeletedTotal counts user deletions.
// Label:
//   - forced: "true" when the cascade removed dependents, "false" otherwise
var UsersDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deleted_total",
		Help:      "Total number of users deleted, by whether the cascade was forced.",
	},
	[]string{"forced"},
)
