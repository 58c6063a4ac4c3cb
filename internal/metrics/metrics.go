package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DispatchOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_outcomes_total",
			Help: "Total number of dispatch pipeline outcomes",
		},
		[]string{"outcome"},
	)

	EmailDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_deliveries_total",
			Help: "Total number of email delivery attempts by sender mode",
		},
		[]string{"mode", "status"},
	)

	DispatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "dispatch_duration_seconds",
			Help: "Duration of dispatch pipeline runs in seconds",
		},
	)

	WebhookEventsIgnored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "webhook_events_ignored_total",
			Help: "Total number of webhook events discarded at ingress",
		},
	)
)
