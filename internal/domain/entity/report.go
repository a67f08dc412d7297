// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReportType represents the kind of report requested by the user.
type ReportType string

const (
	ReportTypeFinancial  ReportType = "financial"
	ReportTypeCashFlow   ReportType = "cash_flow"
	ReportTypeCategories ReportType = "categories"
	ReportTypeTaxes      ReportType = "taxes"
	ReportTypeDebts      ReportType = "debts"
)

// reportTitles holds the document title for each report type.
var reportTitles = map[ReportType]string{
	ReportTypeFinancial:  "Relatório Financeiro",
	ReportTypeCashFlow:   "Fluxo de Caixa",
	ReportTypeCategories: "Relatório por Categorias",
	ReportTypeTaxes:      "Relatório de Impostos",
	ReportTypeDebts:      "Relatório de Dívidas",
}

// IsValid reports whether the report type is known.
func (t ReportType) IsValid() bool {
	_, ok := reportTitles[t]
	return ok
}

// Title returns the document title for the report type.
func (t ReportType) Title() string {
	if title, ok := reportTitles[t]; ok {
		return title
	}
	return reportTitles[ReportTypeFinancial]
}

// ReportPeriod is a period selector used to filter records before aggregation.
type ReportPeriod string

const (
	ReportPeriodCurrentMonth ReportPeriod = "current_month"
	ReportPeriodQuarter      ReportPeriod = "quarter"
	ReportPeriodSemester     ReportPeriod = "semester"
	ReportPeriodCurrentYear  ReportPeriod = "current_year"
	ReportPeriodCustom       ReportPeriod = "custom"
	ReportPeriodAll          ReportPeriod = "all"
)

// IsValidForRecord reports whether the period may be stored on a report label.
func (p ReportPeriod) IsValidForRecord() bool {
	switch p {
	case ReportPeriodCurrentMonth, ReportPeriodQuarter, ReportPeriodSemester,
		ReportPeriodCurrentYear, ReportPeriodCustom:
		return true
	default:
		return false
	}
}

// Label returns the period as shown in export headers (e.g. "CURRENT MONTH").
func (p ReportPeriod) Label() string {
	return strings.ToUpper(strings.ReplaceAll(string(p), "_", " "))
}

// ReportFormat represents the export format of a report.
type ReportFormat string

const (
	ReportFormatPDF   ReportFormat = "pdf"
	ReportFormatExcel ReportFormat = "excel"
	ReportFormatCSV   ReportFormat = "csv"
)

// IsValid reports whether the format is supported.
func (f ReportFormat) IsValid() bool {
	return f == ReportFormatPDF || f == ReportFormatExcel || f == ReportFormatCSV
}

// Extension returns the file extension for the format, without the dot.
func (f ReportFormat) Extension() string {
	switch f {
	case ReportFormatExcel:
		return "xlsx"
	case ReportFormatCSV:
		return "csv"
	default:
		return "pdf"
	}
}

// ContentType returns the MIME type for the format.
func (f ReportFormat) ContentType() string {
	switch f {
	case ReportFormatExcel:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ReportFormatCSV:
		return "text/csv; charset=utf-8"
	default:
		return "application/pdf"
	}
}

// ReportFilename builds the suggested download name: relatorio-<period>-<millis>.<ext>.
func ReportFilename(period ReportPeriod, format ReportFormat, at time.Time) string {
	return fmt.Sprintf("relatorio-%s-%d.%s", period, at.UnixMilli(), format.Extension())
}

// DateRange is an inclusive range of calendar dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ReportRecord is a persisted report label. It stores the parameters of a
// report, never its data: every view or download aggregates again.
type ReportRecord struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Type      ReportType
	Period    ReportPeriod
	Format    ReportFormat
	StartDate *time.Time // Only for custom periods
	EndDate   *time.Time // Only for custom periods
	CreatedAt time.Time
}

// NewReportRecord creates a new ReportRecord entity.
func NewReportRecord(ownerID uuid.UUID, reportType ReportType, period ReportPeriod, format ReportFormat, custom *DateRange) *ReportRecord {
	record := &ReportRecord{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Type:      reportType,
		Period:    period,
		Format:    format,
		CreatedAt: time.Now().UTC(),
	}
	if custom != nil {
		start, end := custom.Start, custom.End
		record.StartDate = &start
		record.EndDate = &end
	}
	return record
}

// CustomRange returns the stored custom date range, or nil.
func (r *ReportRecord) CustomRange() *DateRange {
	if r.StartDate == nil || r.EndDate == nil {
		return nil
	}
	return &DateRange{Start: *r.StartDate, End: *r.EndDate}
}
