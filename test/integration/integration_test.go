//go:build integration

// Package integration runs the report API feature files against an in-process
// server backed by sqlite and miniredis.
package integration

import (
	"os"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"

	"github.com/gestor-financeiro/backend/test/integration/steps"
)

func TestFeatures(t *testing.T) {
	format := os.Getenv("GODOG_FORMAT")
	if format == "" {
		format = "pretty"
	}

	opts := godog.Options{
		Format:   format,
		Paths:    []string{"features"},
		Output:   colors.Colored(os.Stdout),
		Strict:   true,
		Tags:     os.Getenv("GODOG_TAGS"),
		TestingT: t,
		// Scenarios share one database and one clock
		Concurrency: 1,
	}

	suite := godog.TestSuite{
		Name:                 "gestor-reports-api",
		ScenarioInitializer:  steps.InitializeScenario,
		TestSuiteInitializer: steps.InitializeTestSuite,
		Options:              &opts,
	}

	if status := suite.Run(); status != 0 {
		t.Fatalf("feature run failed with status %d", status)
	}
}
