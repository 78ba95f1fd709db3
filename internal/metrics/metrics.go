package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	PollTicksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orderbot_poll_ticks_total",
			Help: "Total number of notification poll ticks",
		},
	)

	OrdersNotifiedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orderbot_orders_notified_total",
			Help: "Total number of order alerts delivered to the admin channel",
		},
	)

	DecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orderbot_decisions_total",
			Help: "Total number of order decisions by outcome",
		},
		[]string{"outcome"},
	)

	MirrorFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orderbot_mirror_failures_total",
			Help: "Total number of failed mirror calls to the web app",
		},
	)
)

// Register registers all metrics with the default registry.
func Register() {
	prometheus.MustRegister(PollTicksTotal)
	prometheus.MustRegister(OrdersNotifiedTotal)
	prometheus.MustRegister(DecisionsTotal)
	prometheus.MustRegister(MirrorFailuresTotal)
}
