package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RuleEvaluations counts engine evaluations by rule family and
	// outcome ("applied" or "none").
	RuleEvaluations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tariff_rule_evaluations_total",
		Help: "Rate rule evaluations by family and outcome.",
	}, []string{"family", "outcome"})

	// PromotionSelections counts best-of promotion selections by
	// outcome ("applied" or "none").
	PromotionSelections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tariff_promotion_selections_total",
		Help: "Promotion best-of selections by outcome.",
	}, []string{"outcome"})

	// RequestDuration observes HTTP request latency per route.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tariff_http_request_duration_seconds",
		Help:    "HTTP request latency by route, method and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method", "status"})
)

// Handler exposes the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
