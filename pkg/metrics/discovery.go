package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the discovery Recommend HTTP handler
	DiscoveryLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "discovery_recommend_latency_seconds",
		Help:    "Latency of layover experience discovery requests",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of discovery requests served
	DiscoveryRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "discovery_recommend_requests_total",
		Help: "Total number of discovery requests",
	})

	// Candidates dropped because their scoring failed
	CandidatesDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "discovery_candidates_dropped_total",
		Help: "Candidates excluded from a response due to scoring failures",
	})

	// Requests answered with the conservative weather fallback
	WeatherFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "discovery_weather_fallbacks_total",
		Help: "Discovery requests served with the neutral weather fallback",
	})
)

func Init() {
	prometheus.MustRegister(
		DiscoveryLatency,
		DiscoveryRequests,
		CandidatesDropped,
		WeatherFallbacks,
	)
}
