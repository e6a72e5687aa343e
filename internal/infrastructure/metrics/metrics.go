// Package metrics exposes Prometheus instrumentation for the billing
// engine. Counters are registered on the default registry and served on
// /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var EntriesValidated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "crmrmm_time_entries_validated_total",
	Help: "Time entries validated by the consumption engine.",
})

var HoursConsumed = promauto.NewCounter(prometheus.CounterOpts{
	Name: "crmrmm_hours_bank_consumed_hours_total",
	Help: "Hours drawn from hours-bank contracts (requested amount).",
})

var ThresholdNotifications = promauto.NewCounter(prometheus.CounterOpts{
	Name: "crmrmm_threshold_notifications_total",
	Help: "Hours-bank under-threshold notifications raised.",
})

var InvoicesDerived = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "crmrmm_invoices_derived_total",
	Help: "Invoices derived by the billing engine.",
}, []string{"source"})

var TicketsPrebilled = promauto.NewCounter(prometheus.CounterOpts{
	Name: "crmrmm_tickets_prebilling_queued_total",
	Help: "Tickets enqueued for the consolidated pre-billing pass.",
})
