package app

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"go.opentelemetry.io/otel/trace"

	"github.com/ternarybob/finsight/internal/common"
	"github.com/ternarybob/finsight/internal/handlers"
	"github.com/ternarybob/finsight/internal/interfaces"
	"github.com/ternarybob/finsight/internal/services/benchmarks"
	"github.com/ternarybob/finsight/internal/services/importer"
	"github.com/ternarybob/finsight/internal/services/report"
	"github.com/ternarybob/finsight/internal/storage"
)

// App holds all application components and dependencies
type App struct {
	Config         *common.Config
	Logger         arbor.ILogger
	StorageManager interfaces.StorageManager

	// Tracing
	Tracer          trace.Tracer
	shutdownTracing func(context.Context) error

	// Analysis services
	ReportEngine       *report.Engine
	ReportService      interfaces.ReportService
	BenchmarkService   *benchmarks.Service
	BenchmarkScheduler *benchmarks.Scheduler
	ImportService      interfaces.ImportService

	// HTTP handlers
	APIHandler       *handlers.APIHandler
	CompanyHandler   *handlers.CompanyHandler
	ReportHandler    *handlers.ReportHandler
	ImportHandler    *handlers.ImportHandler
	BenchmarkHandler *handlers.BenchmarkHandler
}

// New initializes the application with all dependencies
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	// Initialize database
	if err := app.initDatabase(); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize tracing before the services it decorates
	tracer, shutdown, err := common.InitTracing(cfg.Tracing)
	if err != nil {
		app.StorageManager.Close()
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}
	app.Tracer = tracer
	app.shutdownTracing = shutdown

	if err := app.initServices(); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	app.initHandlers()

	logger.Info().
		Bool("benchmarks_enabled", cfg.Benchmarks.Enabled).
		Bool("tracing_enabled", cfg.Tracing.Enabled).
		Int("sectors", app.BenchmarkService.Table().Len()).
		Msg("Application initialization complete")

	return app, nil
}

// initDatabase initializes the storage layer (Badger)
func (a *App) initDatabase() error {
	storageManager, err := storage.NewStorageManager(a.Logger, a.Config)
	if err != nil {
		return fmt.Errorf("failed to create storage manager: %w", err)
	}

	a.StorageManager = storageManager
	a.Logger.Debug().
		Str("storage", "badger").
		Str("path", a.Config.Storage.Badger.Path).
		Msg("Storage layer initialized")

	return nil
}

// initServices initializes the analysis services in dependency order:
// benchmarks -> report engine -> report service (traced) -> importer
func (a *App) initServices() error {
	a.BenchmarkService = benchmarks.NewService(a.StorageManager, a.Config.Benchmarks, a.Logger)

	// Publish stored benchmarks; an empty table only means reports fall back to defaults
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := a.BenchmarkService.Load(ctx); err != nil {
		a.Logger.Warn().Err(err).Msg("Failed to load sector benchmarks")
	}

	a.BenchmarkScheduler = benchmarks.NewScheduler(a.BenchmarkService, a.Logger)

	a.ReportEngine = report.NewEngine(a.Config, a.Logger)
	a.ReportService = report.NewTraced(
		report.NewService(a.ReportEngine, a.StorageManager, a.BenchmarkService, a.Logger),
		a.Tracer,
		a.Logger,
	)

	a.ImportService = importer.NewService(a.StorageManager, a.BenchmarkService, a.Logger)

	return nil
}

// initHandlers initializes the HTTP handlers
func (a *App) initHandlers() {
	a.APIHandler = handlers.NewAPIHandler(a.Logger)
	a.CompanyHandler = handlers.NewCompanyHandler(a.StorageManager, a.Logger)
	a.ReportHandler = handlers.NewReportHandler(a.ReportService, a.Logger)
	a.ImportHandler = handlers.NewImportHandler(a.ImportService, a.Logger)
	a.BenchmarkHandler = handlers.NewBenchmarkHandler(a.BenchmarkService, a.Logger)
}

// StartBackground starts the scheduled benchmark refresh when enabled
func (a *App) StartBackground() error {
	if !a.Config.Benchmarks.Enabled {
		a.Logger.Debug().Msg("Benchmark refresh scheduler disabled")
		return nil
	}
	if err := a.BenchmarkScheduler.Start(a.Config.Benchmarks.Schedule); err != nil {
		return fmt.Errorf("failed to start benchmark scheduler: %w", err)
	}

	// Nothing stored yet: derive now instead of waiting for the first tick
	if a.Config.Benchmarks.Derive && a.BenchmarkService.Table().Len() == 0 {
		a.BenchmarkScheduler.RunNow()
	}
	return nil
}

// Close closes all application resources
func (a *App) Close() error {
	// Stop scheduler
	if a.BenchmarkScheduler != nil {
		a.BenchmarkScheduler.Stop()
	}

	// Flush spans
	if a.shutdownTracing != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.shutdownTracing(ctx); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to shut down tracing")
		}
	}

	// Close storage
	if a.StorageManager != nil {
		if err := a.StorageManager.Close(); err != nil {
			return fmt.Errorf("failed to close storage: %w", err)
		}
		a.Logger.Info().Msg("Storage closed")
	}

	return nil
}
