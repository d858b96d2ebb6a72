package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"

	"github.com/CATIGERN/job-applications/internal/adapter/fsm"
	httpadapter "github.com/CATIGERN/job-applications/internal/adapter/http"
	"github.com/CATIGERN/job-applications/internal/adapter/notify"
	"github.com/CATIGERN/job-applications/internal/adapter/otel"
	"github.com/CATIGERN/job-applications/internal/adapter/river"
	"github.com/CATIGERN/job-applications/internal/adapter/sqlite"
	"github.com/CATIGERN/job-applications/internal/app"
	"github.com/CATIGERN/job-applications/internal/config"
	"github.com/CATIGERN/job-applications/internal/database"
	"github.com/CATIGERN/job-applications/internal/domain"
)

func runServer(ctx context.Context) error {
	cfg := config.Load()
	logger := cfg.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return run(ctx, cfg, logger)
}

func runMigrations(ctx context.Context) error {
	cfg := config.Load()
	logger := cfg.NewLogger(os.Stdout)

	db, err := sqlite.New(ctx, cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	v, err := sqlite.SchemaVersion(ctx, db)
	if err != nil {
		return err
	}
	logger.Info("migrations applied", slog.String("database", cfg.DatabasePath), slog.Int64("version", v))
	return nil
}

// run wires every adapter, serves HTTP until ctx is cancelled, then shuts
// down gracefully.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	// --- Observability ---
	providers, err := otel.Setup(ctx, otel.ConfigFromEnv())
	if err != nil {
		return fmt.Errorf("otel: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			logger.Error("otel shutdown", slog.Any("error", err))
		}
	}()

	// --- Adapters (out) ---
	db, err := otel.OpenDB(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer db.Close()

	if err := sqlite.Migrate(ctx, db); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	sink, stopSink, err := newEventSink(ctx, cfg, db, logger)
	if err != nil {
		return fmt.Errorf("event sink: %w", err)
	}
	defer stopSink()

	notifier, err := otel.NewMeteredNotifier(otel.NewTracingNotifier(sink), providers.Meter)
	if err != nil {
		return fmt.Errorf("event sink metrics: %w", err)
	}

	offerRepo := otel.NewTracingJobOfferRepository(sqlite.NewJobOfferRepository(db))
	appRepo := otel.NewTracingJobApplicationRepository(sqlite.NewJobApplicationRepository(db))

	// --- Application ---
	txm := database.NewTxManager(db)
	offers := app.NewJobOfferService(offerRepo, notifier, fsm.New(), txm, logger)
	applications := app.NewJobApplicationService(appRepo, offers, notifier, txm, logger)

	// --- Adapters (in) ---
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(otelchi.Middleware("jobboard", otelchi.WithChiRoutes(router)))
	if cfg.RateLimitEnabled {
		limiter := httpadapter.NewRateLimiter(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, logger)
		router.Use(limiter.Middleware)
	}

	api := humachi.New(router, huma.DefaultConfig("jobboard", version))
	httpadapter.Register(api, offers, applications)

	// --- Server ---
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("jobboard listening",
			slog.Int("port", cfg.ServerPort),
			slog.String("docs", fmt.Sprintf("http://localhost:%d/docs", cfg.ServerPort)),
			slog.String("event_sink", cfg.EventSink),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err, ok := <-serverErr:
		if ok {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}

// newEventSink builds the configured lifecycle event sink. The returned stop
// function releases whatever the sink started.
func newEventSink(ctx context.Context, cfg *config.Config, db *sql.DB, logger *slog.Logger) (domain.EventNotifier, func(), error) {
	switch cfg.EventSink {
	case config.EventSinkLog:
		return notify.NewLogNotifier(logger), func() {}, nil
	case config.EventSinkRiver:
		client, err := river.Setup(ctx, db, logger)
		if err != nil {
			return nil, nil, err
		}
		// Started apart from ctx so that in-flight jobs finish during Stop.
		if err := client.Start(context.WithoutCancel(ctx)); err != nil {
			return nil, nil, fmt.Errorf("starting river client: %w", err)
		}
		stop := func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			if err := client.Stop(stopCtx); err != nil {
				logger.Error("river stop", slog.Any("error", err))
			}
		}
		return river.NewNotifier(client), stop, nil
	default:
		return nil, nil, fmt.Errorf("unsupported event sink %q (use %q or %q)", cfg.EventSink, config.EventSinkLog, config.EventSinkRiver)
	}
}
