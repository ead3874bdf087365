package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"pressroom/internal/pkg/config"
)

// WorkerMetrics exposes Prometheus metrics for the snapshot worker. It embeds
// the shared ConfigMetrics for configuration fallback tracking and adds
// job-level execution metrics.
type WorkerMetrics struct {
	*config.ConfigMetrics

	// SnapshotRunsTotal counts snapshot runs by status (success/failure).
	SnapshotRunsTotal *prometheus.CounterVec

	// SnapshotDurationSeconds measures snapshot job duration.
	SnapshotDurationSeconds prometheus.Histogram

	// SnapshotLastSuccessTimestamp records the last successful run.
	SnapshotLastSuccessTimestamp prometheus.Gauge
}

// NewWorkerMetrics creates and auto-registers the worker metrics.
func NewWorkerMetrics() *WorkerMetrics {
	return &WorkerMetrics{
		ConfigMetrics: config.NewConfigMetrics("worker"),

		SnapshotRunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_snapshot_runs_total",
			Help: "Total number of gauge snapshot runs by status",
		}, []string{"status"}),

		SnapshotDurationSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "worker_snapshot_duration_seconds",
			Help:    "Duration of gauge snapshot runs in seconds",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 5, 15, 60},
		}),

		SnapshotLastSuccessTimestamp: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "worker_snapshot_last_success_timestamp",
			Help: "Unix timestamp of the last successful snapshot run",
		}),
	}
}

// MustRegister is a no-op kept for the conventional init pattern; promauto
// registers the metrics at construction time.
func (m *WorkerMetrics) MustRegister() {}

// RecordJobRun increments the run counter for "success" or "failure".
func (m *WorkerMetrics) RecordJobRun(status string) {
	m.SnapshotRunsTotal.WithLabelValues(status).Inc()
}

// RecordJobDuration observes a snapshot run duration in seconds.
func (m *WorkerMetrics) RecordJobDuration(seconds float64) {
	m.SnapshotDurationSeconds.Observe(seconds)
}

// RecordLastSuccess stamps the last successful run with the current time.
func (m *WorkerMetrics) RecordLastSuccess() {
	m.SnapshotLastSuccessTimestamp.SetToCurrentTime()
}
