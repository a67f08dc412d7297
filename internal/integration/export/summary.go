// Package export renders aggregated report data as PDF, XLSX and CSV payloads.
package export

import (
	"github.com/shopspring/decimal"

	"github.com/gestor-financeiro/backend/internal/domain/entity"
)

const (
	// topCategories is how many categories the PDF lists.
	topCategories = 10

	dateLayout = "02/01/2006"
)

type summaryRow struct {
	label  string
	amount decimal.Decimal
}

// summaryRows returns the top-level totals in display order.
func summaryRows(data *entity.ReportData) []summaryRow {
	return []summaryRow{
		{"Total de Receitas", data.TotalIncome},
		{"Total de Despesas (Caixa)", data.TotalCashExpense},
		{"Total de Dívidas (Lançamentos)", data.TotalLedgerDebt},
		{"Total de Despesas", data.TotalExpense()},
		{"Saldo", data.NetBalance},
	}
}

// money formats an amount with exactly two decimals.
func money(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

func cashTypeLabel(t entity.CashMovementType) string {
	if t == entity.CashMovementTypeIncome {
		return "Receita"
	}
	return "Despesa"
}

func orNA(value *string) string {
	if value == nil || *value == "" {
		return "N/A"
	}
	return *value
}
