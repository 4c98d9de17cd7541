package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics counts order lifecycle and gateway callback events.
type OrderMetrics struct {
	ordersCreated    prometheus.Counter
	ordersClosed     *prometheus.CounterVec
	paymentsApplied  *prometheus.CounterVec
	duplicatesNoop   prometheus.Counter
	untrustedDropped prometheus.Counter
}

func NewOrderMetrics() *OrderMetrics {
	return newOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &OrderMetrics{
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "automarket_orders_created_total",
			Help: "Total number of orders created",
		}),
		ordersClosed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "automarket_orders_closed_total",
			Help: "Total number of orders cancelled or refunded",
		}, []string{"status"}),
		paymentsApplied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "automarket_payments_applied_total",
			Help: "Total number of payment confirmations applied",
		}, []string{"purpose"}),
		duplicatesNoop: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "automarket_payment_duplicates_total",
			Help: "Total number of replayed confirmations dropped as no-ops",
		}),
		untrustedDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "automarket_untrusted_callbacks_total",
			Help: "Total number of gateway callbacks failing verification",
		}),
	}

	registerer.MustRegister(m.ordersCreated, m.ordersClosed,
		m.paymentsApplied, m.duplicatesNoop, m.untrustedDropped)

	return m
}

func (m *OrderMetrics) OrderCreated() {
	m.ordersCreated.Inc()
}

func (m *OrderMetrics) OrderClosed(status string) {
	m.ordersClosed.WithLabelValues(status).Inc()
}

func (m *OrderMetrics) PaymentApplied(purpose string) {
	m.paymentsApplied.WithLabelValues(purpose).Inc()
}

func (m *OrderMetrics) DuplicateConfirmation() {
	m.duplicatesNoop.Inc()
}

func (m *OrderMetrics) UntrustedCallback() {
	m.untrustedDropped.Inc()
}
