package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gestor-financeiro/backend/config"
	"github.com/gestor-financeiro/backend/internal/application/usecase/report"
	"github.com/gestor-financeiro/backend/internal/domain/entity"
	"github.com/gestor-financeiro/backend/internal/infra/db"
	"github.com/gestor-financeiro/backend/internal/integration/adapters"
	"github.com/gestor-financeiro/backend/internal/integration/export"
	"github.com/gestor-financeiro/backend/internal/integration/persistence"
)

func exportCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Aggregate an owner's records and write a report file",
		Long: `Fetches the owner's cash movements and ledger entries, aggregates them for
the selected period and writes the export. Nothing is persisted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, v)
		},
	}

	cmd.Flags().String("owner", "", "owner user ID (required)")
	cmd.Flags().String("type", string(entity.ReportTypeFinancial), "report type (financial, cash_flow, categories, taxes, debts)")
	cmd.Flags().String("period", string(entity.ReportPeriodCurrentMonth), "period (all, current_month, quarter, semester, current_year, custom)")
	cmd.Flags().String("format", string(entity.ReportFormatPDF), "export format (pdf, excel, csv)")
	cmd.Flags().String("start", "", "custom period start date (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "custom period end date (YYYY-MM-DD)")
	cmd.Flags().StringP("out", "o", "", "output path or directory (default: suggested filename)")
	cmd.Flags().String("driver", "postgres", "record store driver (postgres, sqlite)")
	cmd.Flags().String("database-url", "", "record store DSN")
	cmd.Flags().String("timezone", "America/Sao_Paulo", "IANA timezone used for \"now\"")

	_ = v.BindPFlag("export.owner", cmd.Flags().Lookup("owner"))
	_ = v.BindPFlag("export.type", cmd.Flags().Lookup("type"))
	_ = v.BindPFlag("export.period", cmd.Flags().Lookup("period"))
	_ = v.BindPFlag("export.format", cmd.Flags().Lookup("format"))
	_ = v.BindPFlag("export.start", cmd.Flags().Lookup("start"))
	_ = v.BindPFlag("export.end", cmd.Flags().Lookup("end"))
	_ = v.BindPFlag("export.out", cmd.Flags().Lookup("out"))
	_ = v.BindPFlag("database.driver", cmd.Flags().Lookup("driver"))
	_ = v.BindPFlag("database.url", cmd.Flags().Lookup("database-url"))
	_ = v.BindPFlag("report.timezone", cmd.Flags().Lookup("timezone"))

	return cmd
}

func runExport(cmd *cobra.Command, v *viper.Viper) error {
	ownerID, err := uuid.Parse(v.GetString("export.owner"))
	if err != nil {
		return fmt.Errorf("--owner must be a UUID: %w", err)
	}

	reportType := entity.ReportType(v.GetString("export.type"))
	if !reportType.IsValid() {
		return fmt.Errorf("unknown report type %q", reportType)
	}
	period := entity.ReportPeriod(v.GetString("export.period"))
	format := entity.ReportFormat(v.GetString("export.format"))

	var custom *entity.DateRange
	if period == entity.ReportPeriodCustom {
		custom, err = parseRange(v.GetString("export.start"), v.GetString("export.end"))
		if err != nil {
			return err
		}
	}

	gdb, err := openRecordStore(v.GetString("database.driver"), v.GetString("database.url"))
	if err != nil {
		return err
	}

	clock := adapters.NewSystemClock(config.ReportConfig{Timezone: v.GetString("report.timezone")}.Location())
	computer := report.NewReportComputer(
		persistence.NewCashMovementRepository(gdb),
		persistence.NewLedgerEntryRepository(gdb),
		clock,
		nil,
	)
	exports := report.NewExportService(clock, nil,
		export.NewPDFExporter(),
		export.NewExcelExporter(),
		export.NewCSVExporter(),
	)

	data, err := computer.Compute(cmd.Context(), report.ComputeInput{
		OwnerID: ownerID,
		Period:  period,
		Custom:  custom,
	})
	if err != nil {
		return err
	}

	file, err := exports.Export(format, reportType, period, data)
	if err != nil {
		return err
	}

	path := outputPath(v.GetString("export.out"), file.Filename)
	if err := os.WriteFile(path, file.Content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	slog.Info("Report exported",
		"owner_id", ownerID,
		"period", period,
		"format", format,
		"path", path,
		"bytes", len(file.Content),
		"net_balance", data.NetBalance.StringFixed(2),
	)
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func parseRange(start, end string) (*entity.DateRange, error) {
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return nil, fmt.Errorf("--start must be YYYY-MM-DD: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return nil, fmt.Errorf("--end must be YYYY-MM-DD: %w", err)
	}
	custom := &entity.DateRange{Start: startDate, End: endDate}
	if err := report.ValidateCustomRange(custom); err != nil {
		return nil, err
	}
	return custom, nil
}

// outputPath resolves --out: empty uses the suggested name, a directory
// receives the suggested name inside it.
func outputPath(out, suggested string) string {
	if out == "" {
		return suggested
	}
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		return filepath.Join(out, suggested)
	}
	return out
}

func openRecordStore(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case "postgres":
		if dsn == "" {
			return nil, fmt.Errorf("--database-url (or GESTOR_DATABASE_URL) is required")
		}
		database, err := db.NewPostgresConnection(&config.DatabaseConfig{
			URL:             dsn,
			MaxOpenConns:    2,
			MaxIdleConns:    1,
			ConnMaxLifetime: time.Minute,
		}, "production")
		if err != nil {
			return nil, err
		}
		return database.DB(), nil
	case "sqlite":
		if dsn == "" {
			return nil, fmt.Errorf("--database-url must point at a sqlite file")
		}
		gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		if err := db.Migrate(gdb); err != nil {
			return nil, err
		}
		return gdb, nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
}
