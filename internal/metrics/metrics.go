package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Checkout counts checkout outcomes and observes order totals. A nil
// *Checkout is a no-op, so services built without metrics stay quiet.
type Checkout struct {
	Outcomes    *prometheus.CounterVec
	OrderTotals prometheus.Histogram
}

func NewCheckout(reg prometheus.Registerer) *Checkout {
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shop",
		Subsystem: "checkout",
		Name:      "attempts_total",
		Help:      "Checkout attempts by outcome kind.",
	}, []string{"outcome"})
	totals := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "shop",
		Subsystem: "checkout",
		Name:      "order_total_amount",
		Help:      "Total amount of successfully placed orders.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	})
	reg.MustRegister(outcomes, totals)
	return &Checkout{Outcomes: outcomes, OrderTotals: totals}
}

func (c *Checkout) Observe(outcome string, total float64) {
	if c == nil {
		return
	}
	c.Outcomes.WithLabelValues(outcome).Inc()
	if outcome == "success" {
		c.OrderTotals.Observe(total)
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
