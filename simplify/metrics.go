package simplify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	outcomeOK             = "ok"
	outcomeInvalid        = "invalid"
	outcomeNotEquivalent  = "not_equivalent"
	outcomeCanceled       = "canceled"
	outcomeInternalFailed = "error"
)

type metrics struct {
	// requests counts requests by form and outcome.
	requests *prometheus.CounterVec
	// groups observes the number of groups per successful map.
	groups prometheus.Histogram
	// literals observes the literal count of each minimized expression.
	literals prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)

	return &metrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kmap",
			Name:      "requests_total",
			Help:      "Simplify requests by form and outcome.",
		}, []string{"form", "outcome"}),
		groups: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "kmap",
			Name:      "groups",
			Help:      "Number of adjacency groups per map.",
			Buckets:   prometheus.LinearBuckets(0, 1, 9),
		}),
		literals: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "kmap",
			Name:      "expression_literals",
			Help:      "Literal count of minimized expressions.",
			Buckets:   prometheus.LinearBuckets(0, 2, 9),
		}),
	}
}
