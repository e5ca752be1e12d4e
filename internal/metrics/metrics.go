// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mmynk/peticao/internal/calculator"
)

var (
	RPCRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "peticao_rpc_requests_total",
		Help: "RPC calls by procedure and result code.",
	}, []string{"procedure", "code"})

	RPCDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "peticao_rpc_duration_seconds",
		Help:    "RPC latency by procedure.",
		Buckets: prometheus.DefBuckets,
	}, []string{"procedure"})

	ClaimsComputed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "peticao_claims_computed_total",
		Help: "Calculated claim items by rule and confidence level.",
	}, []string{"rule", "confidence"})

	CaseEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "peticao_cases_total",
		Help: "Case lifecycle events by action.",
	}, []string{"action"})
)

// ObserveSummary counts the items of a computed summary.
func ObserveSummary(sum calculator.Summary) {
	for _, it := range sum.Items {
		ClaimsComputed.WithLabelValues(it.Rule, string(it.Confidence)).Inc()
	}
}
