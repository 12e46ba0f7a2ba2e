package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the order workflow instruments on an explicitly constructed
// registry. Nothing is registered globally: every consumer receives its
// Metrics value from the composition root, so tests can construct their own
// isolated instance.
type Metrics struct {
	registry *prometheus.Registry

	// OrdersPlaced counts successfully placed orders.
	OrdersPlaced prometheus.Counter

	// OrdersRejected counts failed placement attempts by reason
	// (validation, payment, inventory, policy).
	OrdersRejected *prometheus.CounterVec

	// Transitions counts lifecycle transition attempts by event and outcome.
	Transitions *prometheus.CounterVec

	// Compensations counts compensating refunds issued when a workflow
	// failed after the customer had been charged.
	Compensations prometheus.Counter
}

// New creates a Metrics value with a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		OrdersPlaced: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "orderflow",
			Name:      "orders_placed_total",
			Help:      "Number of orders successfully placed.",
		}),
		OrdersRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "orderflow",
			Name:      "orders_rejected_total",
			Help:      "Number of failed order placement attempts by reason.",
		}, []string{"reason"}),
		Transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "orderflow",
			Name:      "order_transitions_total",
			Help:      "Number of order lifecycle transition attempts by event and outcome.",
		}, []string{"event", "outcome"}),
		Compensations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "orderflow",
			Name:      "payment_compensations_total",
			Help:      "Number of compensating refunds issued after a failed workflow step.",
		}),
	}
}

// Handler returns an HTTP handler exposing the registry in Prometheus
// exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry for additional registrations.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
