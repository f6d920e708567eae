package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathfinder_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	AggregationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pathfinder_jobs_aggregation_duration_seconds",
			Help:    "Duration of each live jobs aggregation in seconds.",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40},
		},
	)
	BoardSearchDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "pathfinder_board_search_duration_seconds",
			Help:       "Duration of a single board search request.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"board"},
	)
	BoardFailuresCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathfinder_board_failures_total",
			Help: "Total number of failed board searches.",
		},
		[]string{"board"},
	)
	JobsCacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathfinder_jobs_cache_events_total",
			Help: "Jobs cache lookups by result.",
		},
		[]string{"result"},
	)
	AggregationsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pathfinder_jobs_aggregations_total",
			Help: "Total number of live jobs aggregations.",
		},
	)
)

func Register() {
	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(AggregationDuration)
	prometheus.MustRegister(BoardSearchDuration)
	prometheus.MustRegister(BoardFailuresCounter)
	prometheus.MustRegister(JobsCacheEvents)
	prometheus.MustRegister(AggregationsCounter)
}

func Handler() http.Handler {
	return promhttp.Handler()
}
