// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Counters
	JobsStartedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "playrunner_jobs_started_total",
			Help: "Total number of jobs that transitioned to running",
		},
	)

	JobsFinishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playrunner_jobs_finished_total",
			Help: "Total number of jobs that reached a terminal status",
		},
		[]string{"status"}, // successful, failed, canceled, error
	)

	StartRefusedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playrunner_start_refused_total",
			Help: "Start requests refused before any process work",
		},
		[]string{"reason"}, // passwords_needed, conflict, not_found
	)

	PromptsAnsweredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playrunner_prompts_answered_total",
			Help: "Interactive prompts answered by the session runner",
		},
		[]string{"prompt"},
	)

	MonitorErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playrunner_monitor_errors_total",
			Help: "Errors while flushing output or polling for cancellation",
		},
		[]string{"op"}, // flush, cancel_poll
	)

	// Gauges
	RunningJobs = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "playrunner_running_jobs",
			Help: "Current number of jobs being executed",
		},
	)

	QueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "playrunner_dispatch_queue_length",
			Help: "Jobs accepted by the dispatcher and waiting for a worker",
		},
	)

	// Buckets: 1s to ~4.5h
	RunDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "playrunner_run_duration_seconds",
			Help:    "Wall time of playbook runs",
			Buckets: prometheus.ExponentialBuckets(1, 2, 15),
		},
		[]string{"outcome"},
	)

	TranscriptBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "playrunner_transcript_bytes",
			Help:    "Size of the captured output per run",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 10),
		},
	)
)
