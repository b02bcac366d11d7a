package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/narender/store-manager/common/config"
	"github.com/narender/store-manager/common/debugutils"
	"github.com/narender/store-manager/common/docstore"
	commonhttp "github.com/narender/store-manager/common/http"
	"github.com/narender/store-manager/common/lifecycle"
	commonlog "github.com/narender/store-manager/common/log"
	"github.com/narender/store-manager/common/logging"
	"github.com/narender/store-manager/common/telemetry"
	"github.com/narender/store-manager/store-manager/src/handlers"
	"github.com/narender/store-manager/store-manager/src/repositories"
	"github.com/narender/store-manager/store-manager/src/services"
)

const storeCloseTimeout = 5 * time.Second

func main() {
	// --- Configuration Loading ---
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Initialization (Telemetry & Logging) ---
	lifecycleLogger := logging.SetupLogrus(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTelemetry, err := telemetry.InitTelemetry(ctx, cfg, lifecycleLogger)
	if err != nil {
		lifecycleLogger.WithError(err).Fatal("Failed to initialize telemetry")
	}

	logger := commonlog.Init(cfg)

	// --- Storage ---
	store, err := docstore.Open(ctx, cfg, logger)
	if err != nil {
		lifecycleLogger.WithError(err).WithField("backend", cfg.StoreBackend).Error("Failed to open document store")
		_ = shutdownTelemetry(context.Background())
		os.Exit(1)
	}
	lifecycleLogger.WithField("backend", cfg.StoreBackend).Info("Document store ready")

	// --- Service and Handler Initialization ---
	simulator := debugutils.NewSimulator(cfg)
	productService := services.NewProductService(repositories.NewProductRepository(store, simulator, logger), logger)
	saleService := services.NewSaleService(repositories.NewSaleRepository(store, simulator, logger), productService, logger)

	app := commonhttp.NewApp(commonhttp.ServerOptionsFor(cfg, lifecycleLogger))

	handlers.Register(app,
		handlers.NewProductHandler(productService, logger),
		handlers.NewSaleHandler(saleService, logger),
		handlers.NewHealthHandler(store, cfg.ServiceName, cfg.ServiceVersion, logger))

	// --- Server Startup ---
	addr := ":" + cfg.Port
	go func() {
		logger.Info("Server starting to listen", slog.String("address", addr))
		if err := app.Listen(addr); err != nil {
			lifecycleLogger.WithError(err).Error("Server listener failed")
			cancel()
		}
	}()

	err = lifecycle.WaitForGracefulShutdown(ctx, cfg.ShutdownTotalTimeout, lifecycleLogger,
		lifecycle.ServerTask("HTTP server", &lifecycle.FiberShutdownAdapter{App: app}, cfg.ShutdownServerTimeout),
		lifecycle.Task{Name: "document store", Timeout: storeCloseTimeout, Shutdown: store.Close},
		lifecycle.Task{Name: "OpenTelemetry", Timeout: cfg.ShutdownOtelMinTimeout, Shutdown: shutdownTelemetry},
	)
	if err != nil {
		os.Exit(1)
	}
}
