package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "talentflow_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	CalendarEventsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "talentflow_calendar_events_created_total",
			Help: "Total number of Google Calendar events created.",
		},
	)
	WebhookDispatchCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "talentflow_webhook_dispatches_total",
			Help: "Total number of outbound automation webhook dispatches.",
		},
		[]string{"outcome"},
	)
	StatusTransitionsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "talentflow_candidate_status_transitions_total",
			Help: "Total number of candidate status transitions.",
		},
		[]string{"status"},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "talentflow_http_request_duration_seconds",
			Help:    "Duration of handled HTTP requests in seconds.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"path"},
	)
)

func Register() {
	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(CalendarEventsCounter)
	prometheus.MustRegister(WebhookDispatchCounter)
	prometheus.MustRegister(StatusTransitionsCounter)
	prometheus.MustRegister(RequestDuration)
}

func Handler() http.Handler {
	return promhttp.Handler()
}
