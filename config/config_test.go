package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Report.PreviewTTL != 30*time.Minute {
		t.Errorf("expected default preview TTL 30m, got %s", cfg.Report.PreviewTTL)
	}
	if len(cfg.Server.CORSOrigins) != 1 {
		t.Errorf("expected one default CORS origin, got %v", cfg.Server.CORSOrigins)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REPORT_PREVIEW_TTL", "5m")
	t.Setenv("REPORT_EXPORT_RATE_LIMIT", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, ,https://admin.example.com")
	t.Setenv("REDIS_URL", "")

	cfg := Load()

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Report.PreviewTTL != 5*time.Minute {
		t.Errorf("expected preview TTL 5m, got %s", cfg.Report.PreviewTTL)
	}
	if cfg.Report.ExportRateLimit != 20 {
		t.Errorf("expected invalid int to fall back to 20, got %d", cfg.Report.ExportRateLimit)
	}
	if len(cfg.Server.CORSOrigins) != 2 || cfg.Server.CORSOrigins[1] != "https://admin.example.com" {
		t.Errorf("unexpected CORS origins %v", cfg.Server.CORSOrigins)
	}
	if cfg.Redis.URL != "" {
		t.Errorf("expected Redis to be disabled, got %q", cfg.Redis.URL)
	}
}

func TestReportConfig_Location(t *testing.T) {
	if loc := (ReportConfig{Timezone: "Not/AZone"}).Location(); loc != time.UTC {
		t.Errorf("expected UTC fallback, got %s", loc)
	}
	if loc := (ReportConfig{Timezone: "UTC"}).Location(); loc.String() != "UTC" {
		t.Errorf("expected UTC, got %s", loc)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name: "default secret in production",
			mutate: func(c *Config) {
				c.Server.Environment = "production"
			},
			wantErr: true,
		},
		{
			name: "strong secret in production",
			mutate: func(c *Config) {
				c.Server.Environment = "production"
				c.JWT.Secret = "0123456789abcdef0123456789abcdef"
			},
		},
		{
			name:    "unknown timezone",
			mutate:  func(c *Config) { c.Report.Timezone = "Mars/Olympus" },
			wantErr: true,
		},
		{
			name:    "zero preview ttl",
			mutate:  func(c *Config) { c.Report.PreviewTTL = 0 },
			wantErr: true,
		},
		{
			name:    "zero rate limit",
			mutate:  func(c *Config) { c.Report.ExportRateLimit = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
