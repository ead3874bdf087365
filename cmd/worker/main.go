package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/robfig/cron/v3"

	"pressroom/internal/handler/http/respond"
	pgRepo "pressroom/internal/infra/adapter/persistence/postgres"
	"pressroom/internal/infra/db"
	workerPkg "pressroom/internal/infra/worker"
	"pressroom/internal/observability/logging"
	"pressroom/internal/usecase/analytics"
)

// waitForMigrations blocks until the API process has created the schema.
// The worker never runs migrations itself; the two would race on startup.
func waitForMigrations(logger *slog.Logger, database *sql.DB) {
	const probe = "SELECT 1 FROM articles LIMIT 1"
	for i := 0; i < 10; i++ {
		if _, err := database.Exec(probe); err == nil {
			return
		}
		logger.Info("waiting for migrations, retrying in 3s", slog.Int("attempt", i+1))
		time.Sleep(3 * time.Second)
	}
	logger.Error("migrations did not complete in time")
	os.Exit(1)
}

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	database := db.Open()
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()
	waitForMigrations(logger, database)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	workerMetrics := workerPkg.NewWorkerMetrics()
	workerMetrics.MustRegister()
	workerConfig, err := workerPkg.LoadConfigFromEnv(logger, workerMetrics)
	if err != nil {
		logger.Error("failed to load worker configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("worker configuration loaded",
		slog.String("cron_schedule", workerConfig.CronSchedule),
		slog.String("timezone", workerConfig.Timezone),
		slog.Duration("snapshot_timeout", workerConfig.SnapshotTimeout),
		slog.Int("health_port", workerConfig.HealthPort))

	startMetricsServer(ctx, logger)

	healthAddr := fmt.Sprintf(":%d", workerConfig.HealthPort)
	healthServer := workerPkg.NewHealthServer(healthAddr, logger)
	go func() {
		if err := healthServer.Start(ctx); err != nil && err != http.ErrServerClosed {
			logger.Error("health server failed", slog.Any("error", err))
		}
	}()
	logger.Info("health check server started", slog.String("addr", healthAddr))

	snapshot := analytics.NewSnapshot(
		pgRepo.NewArticleRepo(database),
		pgRepo.NewUserRepo(database),
		logger,
	)

	startCronWorker(logger, snapshot, workerConfig, workerMetrics, healthServer)
}

// startCronWorker schedules the snapshot job and blocks forever.
func startCronWorker(logger *slog.Logger, snapshot *analytics.Snapshot, cfg *workerPkg.WorkerConfig, metrics *workerPkg.WorkerMetrics, healthServer *workerPkg.HealthServer) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("invalid timezone, using UTC", slog.String("timezone", cfg.Timezone), slog.Any("error", err))
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))

	_, err = c.AddFunc(cfg.CronSchedule, func() {
		runSnapshotJob(logger, snapshot, cfg, metrics)
	})
	if err != nil {
		logger.Error("failed to add cron job", slog.Any("error", err))
		os.Exit(1)
	}
	c.Start()

	// Seed the gauges immediately instead of waiting for the first tick.
	runSnapshotJob(logger, snapshot, cfg, metrics)

	healthServer.SetReady(true)
	logger.Info("worker marked as ready")

	logger.Info("worker started", slog.String("schedule", cfg.CronSchedule), slog.String("timezone", cfg.Timezone))
	select {}
}

// runSnapshotJob executes one gauge refresh with timeout and error handling.
func runSnapshotJob(logger *slog.Logger, snapshot *analytics.Snapshot, cfg *workerPkg.WorkerConfig, metrics *workerPkg.WorkerMetrics) {
	startTime := time.Now()
	metrics.RecordJobRun("started")
	logger.Info("snapshot started")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.SnapshotTimeout)
	defer cancel()

	if err := snapshot.Refresh(ctx); err != nil {
		logger.Error("snapshot failed", slog.String("error", respond.SanitizeError(err)))
		metrics.RecordJobRun("failure")
		metrics.RecordJobDuration(time.Since(startTime).Seconds())
		return
	}

	metrics.RecordJobRun("success")
	metrics.RecordJobDuration(time.Since(startTime).Seconds())
	metrics.RecordLastSuccess()

	logger.Info("snapshot completed", slog.Duration("duration", time.Since(startTime)))
}
