package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tally"

var (
	EvaluationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "evaluations_total",
		Help:      "Evaluations served, by outcome (completed, rejected, empty)",
	}, []string{"outcome"})

	ValidationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_errors_total",
		Help:      "Rejected evaluations by validation error kind",
	}, []string{"kind"})

	EvaluationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "evaluation_duration_seconds",
		Help:      "Time spent validating and scoring one evaluation",
		Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
	})

	AlternativesPerEvaluation = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "alternatives_per_evaluation",
		Help:      "Number of alternatives in each evaluation request",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, []string{"method", "route", "status"})
)

const (
	OutcomeCompleted = "completed"
	OutcomeRejected  = "rejected"
	OutcomeEmpty     = "empty"
)
