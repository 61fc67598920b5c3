package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/pubsub"
	"go.uber.org/zap"

	"github.com/fastbite/api/internal/handlers"
	"github.com/fastbite/api/internal/platform/config"
	pfirestore "github.com/fastbite/api/internal/platform/firestore"
	"github.com/fastbite/api/internal/platform/jobs"
	"github.com/fastbite/api/internal/platform/observability"
	"github.com/fastbite/api/internal/repositories"
	firestoreRepo "github.com/fastbite/api/internal/repositories/firestore"
	"github.com/fastbite/api/internal/repositories/memory"
	"github.com/fastbite/api/internal/services"
)

const shutdownTimeout = 15 * time.Second

func main() {
	ctx := context.Background()

	baseLogger, err := observability.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = baseLogger.Sync()
	}()

	logger := baseLogger.Named("api")
	ctx = observability.WithLogger(ctx, logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	metrics, err := observability.NewRequestMetrics()
	if err != nil {
		logger.Fatal("failed to initialise request metrics", zap.Error(err))
	}

	registry, healthOpts, err := buildRegistry(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialise repositories", zap.Error(err))
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := registry.Close(closeCtx); err != nil {
			logger.Warn("repository close error", zap.Error(err))
		}
	}()

	publisher, closePublisher, err := buildOrderEventPublisher(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialise order event publisher", zap.Error(err))
	}
	if closePublisher != nil {
		defer closePublisher()
	}

	svcLogger := observability.ServiceLogger(logger)
	pricing := services.NewPricingEngine()

	orderSvc, err := services.NewOrderService(services.OrderServiceDeps{
		Orders:   registry.Orders(),
		Catalog:  registry.Catalog(),
		Counters: registry.Counters(),
		Pricing:  pricing,
		Events:   publisher,
		Logger:   svcLogger,
	})
	if err != nil {
		logger.Fatal("failed to initialise order service", zap.Error(err))
	}

	statsSvc, err := services.NewStatsService(services.StatsServiceDeps{
		Orders: registry.Orders(),
	})
	if err != nil {
		logger.Fatal("failed to initialise stats service", zap.Error(err))
	}

	catalogSvc, err := services.NewCatalogService(services.CatalogServiceDeps{
		Catalog: registry.Catalog(),
		Logger:  svcLogger,
	})
	if err != nil {
		logger.Fatal("failed to initialise catalog service", zap.Error(err))
	}

	contentSvc, err := services.NewContentService(services.ContentServiceDeps{
		Content: registry.Content(),
		Logger:  svcLogger,
	})
	if err != nil {
		logger.Fatal("failed to initialise content service", zap.Error(err))
	}

	reviewSvc, err := services.NewReviewService(services.ReviewServiceDeps{
		Reviews: registry.Reviews(),
		Logger:  svcLogger,
	})
	if err != nil {
		logger.Fatal("failed to initialise review service", zap.Error(err))
	}

	if version := os.Getenv("APP_VERSION"); version != "" {
		healthOpts = append(healthOpts, handlers.WithHealthVersion(version))
	}

	router := handlers.NewRouter(
		handlers.WithMiddlewares(
			observability.InjectLoggerMiddleware(logger),
			observability.TraceMiddleware(),
			observability.RequestLoggerMiddleware(metrics),
			observability.RecoveryMiddleware(logger),
		),
		handlers.WithHealthHandlers(handlers.NewHealthHandlers(healthOpts...)),
		handlers.WithPublicRoutes(handlers.NewPublicHandlers(catalogSvc, contentSvc, reviewSvc, pricing).Routes),
		handlers.WithOrderRoutes(handlers.NewOrderHandlers(orderSvc).Routes),
		handlers.WithAdminRoutes(handlers.NewAdminHandlers(orderSvc, statsSvc, catalogSvc, contentSvc, reviewSvc).Routes),
	)

	server := &http.Server{
		Addr:         net.JoinHostPort("", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	signalCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ListenAndServe()
	}()
	logger.Info("server listening",
		zap.String("port", cfg.Server.Port),
		zap.String("store_backend", cfg.Store.Backend),
	)

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
		}
	case <-signalCtx.Done():
		logger.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown error", zap.Error(err))
		}
	}

	logger.Info("server stopped")
}

// buildRegistry selects the repository backing per configuration and returns
// the readiness probes the health endpoint should run against it.
func buildRegistry(ctx context.Context, cfg config.Config, logger *zap.Logger) (repositories.Registry, []handlers.HealthOption, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendFirestore:
		provider := pfirestore.NewProvider(cfg.Firestore)
		registry, err := firestoreRepo.NewRegistry(provider)
		if err != nil {
			return nil, nil, err
		}
		check := handlers.WithReadinessCheck("firestore", func(ctx context.Context) error {
			_, err := provider.Client(ctx)
			return err
		})
		return registry, []handlers.HealthOption{check}, nil
	default:
		registry := memory.NewRegistry()
		if cfg.Store.SeedDemo {
			if err := memory.Seed(ctx, registry); err != nil {
				return nil, nil, err
			}
			logger.Info("seeded demo catalog")
		}
		return registry, nil, nil
	}
}

// buildOrderEventPublisher wires the Pub/Sub publisher when a topic is
// configured. A nil publisher disables event emission.
func buildOrderEventPublisher(ctx context.Context, cfg config.Config) (services.OrderEventPublisher, func(), error) {
	if cfg.PubSub.Topic == "" {
		return nil, nil, nil
	}

	client, err := pubsub.NewClient(ctx, cfg.PubSub.ProjectID)
	if err != nil {
		return nil, nil, fmt.Errorf("pubsub client: %w", err)
	}

	topic := client.Topic(cfg.PubSub.Topic)
	publisher, err := jobs.NewPubSubOrderEventPublisher(topic)
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	cleanup := func() {
		topic.Stop()
		_ = client.Close()
	}
	return publisher, cleanup, nil
}
