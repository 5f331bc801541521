// Package metrics defines the Prometheus counters for the clinic API.
// Metrics register with the default registry on package init via promauto
// and are served by the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clinic"

// ── Account metrics ───────────────────────────────────────────────────────────

// AccountsCreatedTotal counts accounts created.
// Label:
//   - role: "patient", "doctor" or "admin"
var AccountsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_created_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

var AccountsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_deleted_total",
		Help:      "Total number of accounts deleted.",
	},
)

// AccountFieldUpdatesTotal counts single-field updates.
// Label:
//   - field: username, password, name or email
var AccountFieldUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "account_field_updates_total",
		Help:      "Total number of account field updates, by field.",
	},
	[]string{"field"},
)

// ── Appointment metrics ───────────────────────────────────────────────────────

var AppointmentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_created_total",
		Help:      "Total number of appointments created.",
	},
)

var AppointmentsCancelledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_cancelled_total",
		Help:      "Total number of appointments cancelled.",
	},
)

var AppointmentsRescheduledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_rescheduled_total",
		Help:      "Total number of appointment start time changes.",
	},
)

var AppointmentsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_deleted_total",
		Help:      "Total number of appointments deleted.",
	},
)
