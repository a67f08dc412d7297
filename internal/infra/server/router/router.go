// Package router sets up the HTTP routing for the application.
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/gestor-financeiro/backend/internal/integration/entrypoint/controller"
	"github.com/gestor-financeiro/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	reportController       *controller.ReportController
	cashMovementController *controller.CashMovementController
	ledgerEntryController  *controller.LedgerEntryController
	authMiddleware         *middleware.AuthMiddleware
	exportRateLimiter      *middleware.ExportRateLimiter
	metricsHandler         http.Handler
	corsOrigins            []string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	reportController *controller.ReportController,
	cashMovementController *controller.CashMovementController,
	ledgerEntryController *controller.LedgerEntryController,
	authMiddleware *middleware.AuthMiddleware,
	exportRateLimiter *middleware.ExportRateLimiter,
	metricsHandler http.Handler,
	corsOrigins []string,
) *Router {
	return &Router{
		healthController:       healthController,
		reportController:       reportController,
		cashMovementController: cashMovementController,
		ledgerEntryController:  ledgerEntryController,
		authMiddleware:         authMiddleware,
		exportRateLimiter:      exportRateLimiter,
		metricsHandler:         metricsHandler,
		corsOrigins:            corsOrigins,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	if len(r.corsOrigins) > 0 {
		r.engine.Use(cors.New(cors.Config{
			AllowOrigins:     r.corsOrigins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "Retry-After"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check and metrics endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
	if r.metricsHandler != nil {
		r.engine.GET("/metrics", gin.WrapH(r.metricsHandler))
	}
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate())
	{
		if r.reportController != nil {
			exportLimit := r.exportLimit()

			reports := v1.Group("/reports")
			{
				reports.GET("", r.reportController.List)
				reports.POST("", r.reportController.Generate)
				reports.GET("/preview", r.reportController.Preview)
				reports.GET("/preview/export", exportLimit, r.reportController.ExportPreview)
				reports.GET("/:id", r.reportController.Get)
				reports.GET("/:id/download", exportLimit, r.reportController.Download)
				reports.DELETE("/:id", r.reportController.Delete)
			}
		}

		if r.cashMovementController != nil {
			movements := v1.Group("/cash-movements")
			{
				movements.GET("", r.cashMovementController.List)
				movements.POST("", r.cashMovementController.Create)
				movements.PATCH("/:id", r.cashMovementController.Update)
				movements.DELETE("/:id", r.cashMovementController.Delete)
			}
		}

		if r.ledgerEntryController != nil {
			entries := v1.Group("/ledger-entries")
			{
				entries.GET("", r.ledgerEntryController.List)
				entries.POST("", r.ledgerEntryController.Create)
				entries.PATCH("/:id", r.ledgerEntryController.Update)
				entries.DELETE("/:id", r.ledgerEntryController.Delete)
			}
		}
	}
}

func (r *Router) exportLimit() gin.HandlerFunc {
	if r.exportRateLimiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return r.exportRateLimiter.Middleware()
}

// Engine returns the configured Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
