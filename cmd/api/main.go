package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"pressroom/internal/common/pagination"
	"pressroom/internal/config"
	pgRepo "pressroom/internal/infra/adapter/persistence/postgres"
	"pressroom/internal/infra/db"
	"pressroom/internal/observability/logging"
	"pressroom/internal/observability/slo"
	"pressroom/internal/observability/tracing"
	"pressroom/internal/resilience/circuitbreaker"
	"pressroom/internal/resilience/retry"
	"pressroom/internal/token"

	accUC "pressroom/internal/usecase/account"
	anaUC "pressroom/internal/usecase/analytics"
	artUC "pressroom/internal/usecase/article"

	hhttp "pressroom/internal/handler/http"
	haccount "pressroom/internal/handler/http/account"
	hanalytics "pressroom/internal/handler/http/analytics"
	harticle "pressroom/internal/handler/http/article"
	hauth "pressroom/internal/handler/http/auth"
	"pressroom/internal/handler/http/middleware"
	"pressroom/internal/handler/http/requestid"
	authservice "pressroom/internal/service/auth"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	securityCfg := loadSecurityConfig(logger)
	secret := validateJWTSecret(logger, securityCfg)

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	shutdownTracing, err := tracing.InitTracer("pressroom")
	if err != nil {
		logger.Error("failed to initialize tracing", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Error("tracer shutdown failed", slog.Any("error", err))
		}
	}()

	version := getVersion()
	handler := setupServer(logger, database, securityCfg, secret, version)

	runServer(logger, handler, version)
}

// loadSecurityConfig reads the security policy file named by SECURITY_CONFIG.
// An unset variable selects the built-in defaults; a set but unreadable path
// is a startup failure rather than a silent downgrade.
func loadSecurityConfig(logger *slog.Logger) *config.SecurityConfig {
	path := os.Getenv("SECURITY_CONFIG")
	if path == "" {
		logger.Info("security config not set, using defaults")
		return config.DefaultSecurityConfig()
	}

	cfg, err := config.LoadSecurityConfig(path)
	if err != nil {
		logger.Error("failed to load security config", slog.String("path", path), slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("security config loaded", slog.String("path", path))
	return cfg
}

// validateJWTSecret enforces the signing secret requirements at startup and
// returns the secret. A minimum of 32 characters (256 bits) is required.
func validateJWTSecret(logger *slog.Logger, cfg *config.SecurityConfig) string {
	envName := cfg.JWTSecretEnv()
	secret := os.Getenv(envName)
	if secret == "" {
		logger.Error("JWT signing secret must be set", slog.String("env", envName))
		os.Exit(1)
	}
	if len(secret) < 32 {
		logger.Error("JWT signing secret must be at least 32 characters (256 bits)", slog.String("env", envName))
		os.Exit(1)
	}
	weakSecrets := []string{"secret", "password", "test", "admin", "default"}
	for _, weak := range weakSecrets {
		if secret == weak || secret == weak+"123" {
			logger.Error("JWT signing secret is a known weak value", slog.String("env", envName))
			os.Exit(1)
		}
	}
	return secret
}

// initDatabase opens the connection pool and runs migrations, retrying on
// transient connection errors.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()

	err := retry.WithBackoff(context.Background(), retry.DBConfig(), func() error {
		return db.MigrateUp(database)
	})
	if err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer wires the repositories, services, and routes, and returns the
// fully middleware-wrapped handler.
func setupServer(logger *slog.Logger, database *sql.DB, securityCfg *config.SecurityConfig, secret, version string) http.Handler {
	// All queries go through the circuit breaker so a struggling database
	// sheds load fast instead of piling up connections.
	breaker := circuitbreaker.NewDBCircuitBreaker(database)

	admins := pgRepo.NewAdminRepo(breaker)
	users := pgRepo.NewUserRepo(breaker)
	articles := pgRepo.NewArticleRepo(breaker)
	analyticsRepo := pgRepo.NewAnalyticsRepo(breaker)

	tokens := token.New([]byte(secret), securityCfg.TokenTTL())
	resolver := authservice.NewResolver(admins, users)
	guard := hauth.NewGuard(tokens, resolver)

	accSvc := &accUC.Service{
		Admins: admins,
		Users:  users,
		Tokens: tokens,
		Hasher: accUC.BcryptHasher{Cost: securityCfg.BcryptCost()},
		Policy: securityCfg.PasswordPolicy(),
	}
	seedBootstrapAdmin(logger, accSvc)

	artSvc := &artUC.Service{Repo: articles}
	anaSvc := &anaUC.Service{Analytics: analyticsRepo, Users: users}

	perMinute, burst := securityCfg.LoginThrottle()
	throttle := middleware.NewLoginThrottle(perMinute, burst)

	paginationCfg := pagination.LoadFromEnv()

	mux := http.NewServeMux()
	haccount.Register(mux, accSvc, guard, throttle)
	harticle.Register(mux, artSvc, guard, paginationCfg, logger)
	hanalytics.Register(mux, anaSvc, guard)

	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	return applyMiddleware(logger, mux)
}

// seedBootstrapAdmin creates the first moderator account from the
// BOOTSTRAP_ADMIN_* environment variables. Admin registration is admin-gated,
// so without this seed a fresh deployment with an empty admins table has no
// way to mint an admin through the API. The seed is idempotent across
// restarts; a missing configuration is skipped with a warning.
func seedBootstrapAdmin(logger *slog.Logger, svc *accUC.Service) {
	email := os.Getenv("BOOTSTRAP_ADMIN_EMAIL")
	password := os.Getenv("BOOTSTRAP_ADMIN_PASSWORD")
	if email == "" && password == "" {
		logger.Warn("bootstrap admin not configured, skipping seed")
		return
	}
	if email == "" || password == "" {
		logger.Error("BOOTSTRAP_ADMIN_EMAIL and BOOTSTRAP_ADMIN_PASSWORD must be set together")
		os.Exit(1)
	}
	username := os.Getenv("BOOTSTRAP_ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := svc.BootstrapAdmin(ctx, accUC.RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		logger.Error("failed to seed bootstrap admin", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("bootstrap admin ensured", slog.String("email", email))
}

// applyMiddleware wraps the handler with the middleware chain, applied in
// reverse so the first listed runs innermost:
// tracing → request ID → recovery → logging → timeout → input validation →
// body limit → metrics → routes.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	chain := handler

	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.InputValidation()(chain)
	chain = hhttp.Timeout(30 * time.Second)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)
	chain = tracing.Middleware(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Derive the slo_* gauges from the live registry in the background.
	go slo.NewCalculator(logger).Run(ctx, 30*time.Second)

	srv := &http.Server{
		Addr:              ":8080",
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", ":8080"),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
