// Package worker holds the runtime plumbing for the background stats worker:
// configuration, health probes, and job metrics.
package worker

import (
	"fmt"
	"log/slog"
	"time"

	"pressroom/internal/pkg/config"
)

// WorkerConfig controls the snapshot schedule and the worker's own endpoints.
// All fields have defaults and the loader falls back to them on invalid
// input, so the worker always starts.
type WorkerConfig struct {
	// CronSchedule is the cron expression for the gauge snapshot job.
	// Default: every 5 minutes.
	CronSchedule string

	// Timezone is the IANA timezone used by the cron scheduler.
	Timezone string

	// SnapshotTimeout bounds a single snapshot run.
	SnapshotTimeout time.Duration

	// HealthPort is the port for the liveness/readiness server.
	HealthPort int
}

// DefaultConfig returns production-ready defaults.
func DefaultConfig() WorkerConfig {
	return WorkerConfig{
		CronSchedule:    "*/5 * * * *",
		Timezone:        "UTC",
		SnapshotTimeout: 1 * time.Minute,
		HealthPort:      9091,
	}
}

// Validate checks every field and aggregates the failures.
func (c *WorkerConfig) Validate() error {
	var errs []error

	if err := config.ValidateCronSchedule(c.CronSchedule); err != nil {
		errs = append(errs, fmt.Errorf("cron schedule: %w", err))
	}
	if err := config.ValidateTimezone(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	if err := config.ValidateDuration(c.SnapshotTimeout, 1*time.Second, 10*time.Minute); err != nil {
		errs = append(errs, fmt.Errorf("snapshot timeout: %w", err))
	}
	if err := config.ValidateIntRange(c.HealthPort, 1024, 65535); err != nil {
		errs = append(errs, fmt.Errorf("health port: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %v", errs)
	}
	return nil
}

// LoadConfigFromEnv loads the worker configuration from environment variables
// with a fail-open strategy: invalid values fall back to defaults, log a
// warning, and bump the fallback metrics. It never returns an error so the
// worker cannot be wedged by a bad environment.
//
// Environment variables:
//   - SNAPSHOT_CRON: cron expression (default "*/5 * * * *")
//   - WORKER_TIMEZONE: IANA timezone (default "UTC")
//   - SNAPSHOT_TIMEOUT: duration, e.g. "1m" (default 1 minute)
//   - WORKER_HEALTH_PORT: integer 1024-65535 (default 9091)
func LoadConfigFromEnv(logger *slog.Logger, metrics *WorkerMetrics) (*WorkerConfig, error) {
	cfg := DefaultConfig()

	loadString := func(envKey, field string, target *string, validator func(string) error) {
		result := config.LoadEnvWithFallback(envKey, *target, validator)
		*target = result.Value.(string)
		recordFallback(logger, metrics, result, field)
	}

	loadString("SNAPSHOT_CRON", "cron_schedule", &cfg.CronSchedule, config.ValidateCronSchedule)
	loadString("WORKER_TIMEZONE", "timezone", &cfg.Timezone, config.ValidateTimezone)

	result := config.LoadEnvDuration("SNAPSHOT_TIMEOUT", cfg.SnapshotTimeout, func(d time.Duration) error {
		return config.ValidateDuration(d, 1*time.Second, 10*time.Minute)
	})
	cfg.SnapshotTimeout = result.Value.(time.Duration)
	recordFallback(logger, metrics, result, "snapshot_timeout")

	result = config.LoadEnvInt("WORKER_HEALTH_PORT", cfg.HealthPort, func(v int) error {
		return config.ValidateIntRange(v, 1024, 65535)
	})
	cfg.HealthPort = result.Value.(int)
	recordFallback(logger, metrics, result, "health_port")

	metrics.RecordLoadTimestamp()
	return &cfg, nil
}

func recordFallback(logger *slog.Logger, metrics *WorkerMetrics, result config.ConfigLoadResult, field string) {
	if !result.FallbackApplied {
		return
	}
	metrics.RecordValidationError(field)
	metrics.RecordFallback(field, "default")
	for _, warning := range result.Warnings {
		logger.Warn("configuration fallback applied",
			slog.String("field", field),
			slog.String("warning", warning))
	}
}
