// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/gestor-financeiro/backend/config"
	"github.com/gestor-financeiro/backend/internal/application/adapter"
	"github.com/gestor-financeiro/backend/internal/application/usecase/cashmovement"
	"github.com/gestor-financeiro/backend/internal/application/usecase/ledger"
	"github.com/gestor-financeiro/backend/internal/application/usecase/report"
	dbconn "github.com/gestor-financeiro/backend/internal/infra/db"
	"github.com/gestor-financeiro/backend/internal/infra/metrics"
	"github.com/gestor-financeiro/backend/internal/infra/server/router"
	"github.com/gestor-financeiro/backend/internal/integration/adapters"
	"github.com/gestor-financeiro/backend/internal/integration/cache"
	"github.com/gestor-financeiro/backend/internal/integration/entrypoint/controller"
	"github.com/gestor-financeiro/backend/internal/integration/entrypoint/middleware"
	"github.com/gestor-financeiro/backend/internal/integration/export"
	"github.com/gestor-financeiro/backend/internal/integration/persistence"
)

// Options carries optional collaborators. Zero values select the defaults.
type Options struct {
	// Redis backs the preview store; nil keeps previews in process memory.
	Redis *redis.Client
	// Clock overrides the system clock in the configured report timezone.
	Clock adapter.Clock
	// Registry receives the report metrics; nil creates a fresh registry.
	Registry *prometheus.Registry
}

// Injector holds all application dependencies.
type Injector struct {
	Config            *config.Config
	DB                *gorm.DB
	Router            *router.Router
	Registry          *prometheus.Registry
	TokenService      adapter.TokenService
	ExportRateLimiter *middleware.ExportRateLimiter
	ReportComputer    *report.ReportComputer
	ExportService     *report.ExportService
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, opts Options) *Injector {
	clock := opts.Clock
	if clock == nil {
		clock = adapters.NewSystemClock(cfg.Report.Location())
	}
	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	reportMetrics := metrics.NewReportMetrics(registry)

	// Create repositories
	cashMovementRepo := persistence.NewCashMovementRepository(db)
	ledgerEntryRepo := persistence.NewLedgerEntryRepository(db)
	reportRepo := persistence.NewReportRepository(db)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)

	var previewStore adapter.ReportPreviewStore
	var cacheHealthChecker func() bool
	if opts.Redis != nil {
		previewStore = cache.NewRedisPreviewStore(opts.Redis, cfg.Report.PreviewTTL)
		cacheHealthChecker = func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return opts.Redis.Ping(ctx).Err() == nil
		}
	} else {
		previewStore = cache.NewMemoryPreviewStore(cfg.Report.PreviewTTL)
	}

	exportService := report.NewExportService(clock, reportMetrics,
		export.NewPDFExporter(),
		export.NewExcelExporter(),
		export.NewCSVExporter(),
	)
	computer := report.NewReportComputer(cashMovementRepo, ledgerEntryRepo, clock, reportMetrics)

	// Create report use cases
	listReportsUseCase := report.NewListReportsUseCase(reportRepo)
	generateReportUseCase := report.NewGenerateReportUseCase(reportRepo, computer, reportMetrics)
	viewReportUseCase := report.NewViewReportUseCase(reportRepo, computer)
	downloadReportUseCase := report.NewDownloadReportUseCase(reportRepo, computer, exportService)
	deleteReportUseCase := report.NewDeleteReportUseCase(reportRepo, reportMetrics)
	previewReportUseCase := report.NewPreviewReportUseCase(computer, previewStore, clock)
	exportPreviewUseCase := report.NewExportPreviewUseCase(previewStore, exportService)

	// Create cash movement use cases
	listCashMovementsUseCase := cashmovement.NewListCashMovementsUseCase(cashMovementRepo)
	createCashMovementUseCase := cashmovement.NewCreateCashMovementUseCase(cashMovementRepo)
	updateCashMovementUseCase := cashmovement.NewUpdateCashMovementUseCase(cashMovementRepo)
	deleteCashMovementUseCase := cashmovement.NewDeleteCashMovementUseCase(cashMovementRepo)

	// Create ledger use cases
	listLedgerEntriesUseCase := ledger.NewListLedgerEntriesUseCase(ledgerEntryRepo)
	createLedgerEntryUseCase := ledger.NewCreateLedgerEntryUseCase(ledgerEntryRepo)
	updateLedgerEntryUseCase := ledger.NewUpdateLedgerEntryUseCase(ledgerEntryRepo)
	deleteLedgerEntryUseCase := ledger.NewDeleteLedgerEntryUseCase(ledgerEntryRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		return dbconn.Ping(db, 2*time.Second)
	}, cacheHealthChecker)

	reportController := controller.NewReportController(
		listReportsUseCase,
		generateReportUseCase,
		viewReportUseCase,
		downloadReportUseCase,
		deleteReportUseCase,
		previewReportUseCase,
		exportPreviewUseCase,
	)

	cashMovementController := controller.NewCashMovementController(
		listCashMovementsUseCase,
		createCashMovementUseCase,
		updateCashMovementUseCase,
		deleteCashMovementUseCase,
	)

	ledgerEntryController := controller.NewLedgerEntryController(
		listLedgerEntriesUseCase,
		createLedgerEntryUseCase,
		updateLedgerEntryUseCase,
		deleteLedgerEntryUseCase,
	)

	// Create middleware
	exportRateLimiter := middleware.NewExportRateLimiter(cfg.Report.ExportRateLimit, cfg.Report.ExportRateWindow)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		reportController,
		cashMovementController,
		ledgerEntryController,
		authMiddleware,
		exportRateLimiter,
		metrics.Handler(registry),
		cfg.Server.CORSOrigins,
	)

	return &Injector{
		Config:            cfg,
		DB:                db,
		Router:            r,
		Registry:          registry,
		TokenService:      tokenService,
		ExportRateLimiter: exportRateLimiter,
		ReportComputer:    computer,
		ExportService:     exportService,
	}
}
