package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomePersisted    = "persisted"
	OutcomeRejected     = "rejected"
	OutcomePersistError = "persist_error"
	OutcomeHalted       = "halted"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	SubmissionOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_submissions_total",
			Help: "Intake submit attempts by outcome",
		},
		[]string{"outcome"},
	)

	SafetyHalts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "intake_safety_halts_total",
			Help: "Sessions halted on a safety answer",
		},
	)

	ASRSScores = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "intake_asrs_score",
			Help:    "ASRS-6 totals of persisted submissions",
			Buckets: prometheus.LinearBuckets(0, 4, 7),
		},
	)
)

var registerOnce sync.Once

// Init registers every collector with the default registry. Safe to call
// more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(SubmissionOutcomes)
		prometheus.MustRegister(SafetyHalts)
		prometheus.MustRegister(ASRSScores)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}
