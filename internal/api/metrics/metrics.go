// Package metrics defines and registers all custom Prometheus metrics for
// the storefront API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package load via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// OrdersPlacedTotal counts checkouts that committed successfully.
var OrdersPlacedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of orders committed successfully.",
	},
)

// OrderFailuresTotal counts rejected or failed checkouts.
// Label:
//   - reason: "empty_cart", "invalid_quantity", "product_not_found",
//     "insufficient_stock", or "persistence"
var OrderFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_failures_total",
		Help:      "Total number of failed checkout attempts, by reason.",
	},
	[]string{"reason"},
)

// OrderValue observes the total of each committed order.
var OrderValue = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "order_value",
		Help:      "Distribution of committed order totals.",
		Buckets:   []float64{10, 50, 100, 250, 500, 1000, 2500, 5000},
	},
)

// UsersRegisteredTotal counts successful account registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts registered.",
	},
)
