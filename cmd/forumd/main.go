// Package main is the entry point for the forum daemon. It wires the action
// pipeline, storage, webhook forwarding and the operations HTTP server using
// samber/do v2, and shuts everything down on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/forumcore/internal/adapters/db/memory"
	"github.com/jsamuelsen11/forumcore/internal/adapters/db/sqlite"
	adapthttp "github.com/jsamuelsen11/forumcore/internal/adapters/http"
	"github.com/jsamuelsen11/forumcore/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/forumcore/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/forumcore/internal/adapters/notify/webhook"
	"github.com/jsamuelsen11/forumcore/internal/app"
	"github.com/jsamuelsen11/forumcore/internal/app/action"
	"github.com/jsamuelsen11/forumcore/internal/platform/config"
	"github.com/jsamuelsen11/forumcore/internal/platform/health"
	"github.com/jsamuelsen11/forumcore/internal/platform/i18n"
	"github.com/jsamuelsen11/forumcore/internal/platform/logging"
	"github.com/jsamuelsen11/forumcore/internal/platform/telemetry"
	"github.com/jsamuelsen11/forumcore/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const otelShutdownTimeout = 5 * time.Second

// webhookCheckPrefix marks receivers whose failure only degrades readiness.
const webhookCheckPrefix = "webhook:"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		otelCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolving the server wires the full graph.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	store := do.MustInvoke[ports.Transactor](injector)
	if c, ok := store.(io.Closer); ok {
		defer func() {
			if err := c.Close(); err != nil {
				logger.Error("closing store", slog.Any("error", err))
			}
		}()
	}

	pipeline := do.MustInvoke[*action.Pipeline](injector)
	services := do.MustInvoke[*app.Services](injector)
	logger.Info("action services ready",
		slog.String("storage", store.Name()),
		slog.Int("archivers", len(services.Archivers)),
		slog.Int("removers", len(services.Removers)),
		slog.Int("pinners", len(services.Pinners)),
	)

	var wg sync.WaitGroup
	if cfg.Notify.Enabled {
		notifier := do.MustInvoke[ports.Notifier](injector)
		notifier.Attach(pipeline.Hooks())
		wg.Go(func() {
			if err := notifier.Run(ctx); err != nil {
				logger.Error("webhook notifier stopped", slog.Any("error", err))
			}
		})
	}

	err = server.Run(ctx)
	stop()
	wg.Wait()
	if err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{tracer: tp, meter: mp, metrics: metrics}, nil
}

// openStore connects the configured storage backend.
func openStore(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (ports.Transactor, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return memory.New(), nil
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.DSN)
		if err != nil {
			return nil, err
		}
		if cfg.AutoMigrate {
			if err := sqlite.RunMigrations(ctx, db); err != nil {
				return nil, fmt.Errorf("migrating sqlite: %w", err)
			}
			logger.Info("database migrations applied")
		}
		return sqlite.New(db), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(cfg.Server.ReadTimeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.Transactor, error) {
		store, err := openStore(ctx, cfg.Storage, logger)
		if err != nil {
			return nil, err
		}
		do.MustInvoke[ports.HealthRegistry](i).Register(store)
		return store, nil
	})

	do.Provide(injector, func(i do.Injector) (*action.Pipeline, error) {
		store := do.MustInvoke[ports.Transactor](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return action.NewPipeline(store, action.NewHooks(), metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.Services, error) {
		return app.NewServices(do.MustInvoke[*action.Pipeline](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.Notifier, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		notifier, checkers := webhook.FromConfig(&cfg.Notify, metrics, logger)

		registry := do.MustInvoke[ports.HealthRegistry](i)
		for _, c := range checkers {
			registry.Register(c)
		}
		return notifier, nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.Translator, error) {
		return i18n.Load(cfg.I18n.DefaultLanguage, cfg.I18n.Catalog)
	})

	do.Provide(injector, func(i do.Injector) (*handlers.CatalogHandler, error) {
		return handlers.NewCatalogHandler(do.MustInvoke[ports.Translator](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry, webhookCheckPrefix), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		catalogH := do.MustInvoke[*handlers.CatalogHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(catalogH, healthH, middleware.Stack(logger, metrics)...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		// The store must be reachable before the server accepts probes.
		do.MustInvoke[*app.Services](i)
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
