package pricing

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	StrategiesAppliedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_strategies_applied_total",
			Help: "Count of pricing strategy applications by strategy id.",
		},
		[]string{"strategy_id"},
	)

	StrategiesSkippedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_strategies_skipped_total",
			Help: "Count of pricing strategies skipped due to invalid configuration.",
		},
		[]string{"strategy_id"},
	)
)

func init() {
	prometheus.MustRegister(StrategiesAppliedTotal, StrategiesSkippedTotal)
}
