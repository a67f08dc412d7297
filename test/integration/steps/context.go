// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"

	"github.com/gestor-financeiro/backend/config"
	"github.com/gestor-financeiro/backend/internal/infra/db"
	"github.com/gestor-financeiro/backend/internal/infra/dependency"
	"github.com/gestor-financeiro/backend/test/integration/mock"
)

const testJWTSecret = "integration-test-secret-key-32chars"

var (
	database *mock.Db
	cache    *mock.Redis
	clock    *mock.Time
	injector *dependency.Injector
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	server *httptest.Server

	// Request building
	requestHeaders map[string]string

	// Response
	response     *http.Response
	responseBody []byte

	// Users known by alias, and their signed access tokens
	users  map[string]uuid.UUID
	tokens map[string]string

	// Values captured from responses, substituted as {name} in paths
	saved map[string]string
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		JWT:    config.JWTConfig{Secret: testJWTSecret, Issuer: "gestor-test"},
		Report: config.ReportConfig{
			Timezone:         "UTC",
			PreviewTTL:       10 * time.Minute,
			ExportRateLimit:  100,
			ExportRateWindow: time.Minute,
		},
	}
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		_ = os.Setenv("ENV", "test")

		database = mock.NewDb(db.Models()...)
		cache = mock.NewRedis()
		clock = mock.NewTime()

		injector = dependency.NewInjector(testConfig(), database.DbConn, dependency.Options{
			Redis: cache.Client,
			Clock: clock,
		})
	})

	ctx.AfterSuite(func() {
		if cache != nil {
			cache.Close()
		}
		if database != nil {
			_ = database.Close()
		}
	})
}

// InitializeScenario registers the step definitions and per-scenario hooks.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		if err := database.Reset(); err != nil {
			return ctx, err
		}
		if err := cache.Clear(); err != nil {
			return ctx, fmt.Errorf("failed to clear redis: %w", err)
		}
		clock.SetCurrentTime(time.Now().UTC())

		tc := &TestContext{
			server:         httptest.NewServer(injector.Router.Setup("test")),
			requestHeaders: make(map[string]string),
			users:          make(map[string]uuid.UUID),
			tokens:         make(map[string]string),
			saved:          make(map[string]string),
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if tc := GetTestContext(ctx); tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerCommonSteps(ctx)
	registerDataSteps(ctx)
}
