// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestor-financeiro/backend/internal/domain/entity"
)

// GenerateReportRequest represents the request body for report label creation.
type GenerateReportRequest struct {
	Type      string  `json:"type" binding:"required"`
	Period    string  `json:"period" binding:"required"`
	Format    string  `json:"format" binding:"required"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
}

// ReportResponse represents a report label in API responses.
type ReportResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Period    string    `json:"period"`
	Format    string    `json:"format"`
	StartDate *string   `json:"start_date,omitempty"`
	EndDate   *string   `json:"end_date,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ReportListResponse represents the report history.
type ReportListResponse struct {
	Reports []ReportResponse `json:"reports"`
}

// TrendBucketResponse represents one month of the monthly trend.
type TrendBucketResponse struct {
	Month       string `json:"month"`
	Income      string `json:"income"`
	CashExpense string `json:"cash_expense"`
	LedgerDebt  string `json:"ledger_debt"`
}

// ReportDataResponse represents aggregated report data. Amounts are
// decimal strings with two places.
type ReportDataResponse struct {
	TotalIncome      string                 `json:"total_income"`
	TotalCashExpense string                 `json:"total_cash_expense"`
	TotalLedgerDebt  string                 `json:"total_ledger_debt"`
	TotalExpense     string                 `json:"total_expense"`
	NetBalance       string                 `json:"net_balance"`
	ByCategory       map[string]string      `json:"by_category"`
	ByLedgerType     map[string]string      `json:"by_ledger_type"`
	MonthlyTrend     []TrendBucketResponse  `json:"monthly_trend"`
	CashMovements    []CashMovementResponse `json:"cash_movements"`
	LedgerEntries    []LedgerEntryResponse  `json:"ledger_entries"`
}

// GenerateReportResponse is returned when a label was created.
type GenerateReportResponse struct {
	Report ReportResponse     `json:"report"`
	Data   ReportDataResponse `json:"data"`
}

// ReportDetailResponse is returned when viewing a label.
type ReportDetailResponse struct {
	Report ReportResponse     `json:"report"`
	Data   ReportDataResponse `json:"data"`
}

// PreviewResponse represents an interactive preview.
type PreviewResponse struct {
	Generation int64              `json:"generation"`
	Period     string             `json:"period"`
	Superseded bool               `json:"superseded"`
	Data       ReportDataResponse `json:"data"`
}

// ReportErrorResponse is an error response that still carries computed data,
// used when a report was aggregated but its label could not be saved.
type ReportErrorResponse struct {
	Error string              `json:"error"`
	Code  string              `json:"code,omitempty"`
	Data  *ReportDataResponse `json:"data,omitempty"`
}

// ToReportResponse converts a domain ReportRecord to a ReportResponse DTO.
func ToReportResponse(r *entity.ReportRecord) ReportResponse {
	return ReportResponse{
		ID:        r.ID.String(),
		Type:      string(r.Type),
		Title:     r.Type.Title(),
		Period:    string(r.Period),
		Format:    string(r.Format),
		StartDate: formatDate(r.StartDate),
		EndDate:   formatDate(r.EndDate),
		CreatedAt: r.CreatedAt,
	}
}

// ToReportListResponse converts report labels to a ReportListResponse.
func ToReportListResponse(records []*entity.ReportRecord) ReportListResponse {
	reports := make([]ReportResponse, len(records))
	for i, r := range records {
		reports[i] = ToReportResponse(r)
	}
	return ReportListResponse{Reports: reports}
}

// ToReportDataResponse converts aggregated data to its API representation.
func ToReportDataResponse(d *entity.ReportData) ReportDataResponse {
	trend := make([]TrendBucketResponse, len(d.MonthlyTrend))
	for i, b := range d.MonthlyTrend {
		trend[i] = TrendBucketResponse{
			Month:       b.MonthLabel,
			Income:      money(b.Income),
			CashExpense: money(b.CashExpense),
			LedgerDebt:  money(b.LedgerDebt),
		}
	}

	movements := make([]CashMovementResponse, len(d.CashMovements))
	for i, m := range d.CashMovements {
		movements[i] = ToCashMovementResponse(m)
	}
	entries := make([]LedgerEntryResponse, len(d.LedgerEntries))
	for i, e := range d.LedgerEntries {
		entries[i] = ToLedgerEntryResponse(e)
	}

	return ReportDataResponse{
		TotalIncome:      money(d.TotalIncome),
		TotalCashExpense: money(d.TotalCashExpense),
		TotalLedgerDebt:  money(d.TotalLedgerDebt),
		TotalExpense:     money(d.TotalExpense()),
		NetBalance:       money(d.NetBalance),
		ByCategory:       moneyMap(d.ByCategory),
		ByLedgerType:     moneyMap(d.ByLedgerType),
		MonthlyTrend:     trend,
		CashMovements:    movements,
		LedgerEntries:    entries,
	}
}

func moneyMap(breakdown map[string]decimal.Decimal) map[string]string {
	out := make(map[string]string, len(breakdown))
	for key, amount := range breakdown {
		out[key] = money(amount)
	}
	return out
}
