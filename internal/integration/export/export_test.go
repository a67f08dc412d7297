package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/gestor-financeiro/backend/internal/application/adapter"
	"github.com/gestor-financeiro/backend/internal/domain/entity"
	domainerror "github.com/gestor-financeiro/backend/internal/domain/error"
)

func strPtr(s string) *string { return &s }

func sampleDocument() adapter.ExportDocument {
	date := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	return adapter.ExportDocument{
		Title:       entity.ReportTypeFinancial.Title(),
		Period:      entity.ReportPeriodCurrentMonth,
		GeneratedAt: time.Date(2025, time.January, 20, 9, 0, 0, 0, time.UTC),
		Data: &entity.ReportData{
			TotalIncome:      decimal.RequireFromString("1000"),
			TotalCashExpense: decimal.RequireFromString("400"),
			TotalLedgerDebt:  decimal.RequireFromString("150.15"),
			NetBalance:       decimal.RequireFromString("600"),
			ByCategory: map[string]decimal.Decimal{
				"Vendas":                decimal.RequireFromString("1000"),
				"Fornecedores":          decimal.RequireFromString("400"),
				entity.UncategorizedKey: decimal.RequireFromString("0"),
			},
			ByLedgerType: map[string]decimal.Decimal{
				"ICMS": decimal.RequireFromString("150.15"),
			},
			CashMovements: []*entity.CashMovement{
				entity.NewCashMovement(uuid.Nil, date, entity.CashMovementTypeIncome, strPtr("Vendas"), strPtr("Venda balcão"), decimal.RequireFromString("1000")),
				entity.NewCashMovement(uuid.Nil, date, entity.CashMovementTypeExpense, nil, nil, decimal.RequireFromString("400")),
			},
			LedgerEntries: []*entity.LedgerEntry{
				entity.NewLedgerEntry(uuid.Nil, date, "ICMS", nil, strPtr("Guia janeiro"), decimal.RequireFromString("150.15")),
			},
		},
	}
}

func TestExporters_NotReadyWithoutData(t *testing.T) {
	exporters := []adapter.ReportExporter{NewPDFExporter(), NewExcelExporter(), NewCSVExporter()}

	for _, exporter := range exporters {
		t.Run(string(exporter.Format()), func(t *testing.T) {
			doc := sampleDocument()
			doc.Data = nil

			out, err := exporter.Export(doc)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, domainerror.ErrReportNotReady)
		})
	}
}

func TestPDFExporter_ContainsBreakdownValues(t *testing.T) {
	doc := sampleDocument()

	out, err := NewPDFExporter().Export(doc)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "expected a PDF header")

	for key, value := range doc.Data.ByCategory {
		assert.Contains(t, string(out), key+": R$ "+value.StringFixed(2))
	}
	for key, value := range doc.Data.ByLedgerType {
		assert.Contains(t, string(out), key+": R$ "+value.StringFixed(2))
	}
	assert.Contains(t, string(out), "CURRENT MONTH")
	assert.Contains(t, string(out), "20/01/2025")
}

func TestPDFExporter_Cp1252Text(t *testing.T) {
	doc := sampleDocument()
	doc.Data.ByCategory = map[string]decimal.Decimal{
		"Café": decimal.NewFromInt(10),
		"税金":   decimal.NewFromInt(20),
	}

	out, err := NewPDFExporter().Export(doc)
	require.NoError(t, err)

	assert.Contains(t, string(out), "Caf\xe9: R$ 10.00", "cp1252 characters are kept")
	assert.Contains(t, string(out), "..: R$ 20.00", "characters outside cp1252 become dots")
}

func TestPDFExporter_PaginatesLongBreakdowns(t *testing.T) {
	doc := sampleDocument()
	doc.Data.ByLedgerType = make(map[string]decimal.Decimal)
	for i := 0; i < 80; i++ {
		doc.Data.ByLedgerType[uuid.NewString()[:8]] = decimal.NewFromInt(int64(i + 1))
	}

	out, err := NewPDFExporter().Export(doc)
	require.NoError(t, err)

	pages := bytes.Count(out, []byte("/Type /Page\n"))
	assert.Greater(t, pages, 1, "expected more than one page")
}

func TestPDFExporter_TopTenCategories(t *testing.T) {
	doc := sampleDocument()
	doc.Data.ByCategory = make(map[string]decimal.Decimal)
	for i := 1; i <= 12; i++ {
		doc.Data.ByCategory["Cat"+string(rune('A'+i-1))] = decimal.NewFromInt(int64(i * 100))
	}

	out, err := NewPDFExporter().Export(doc)
	require.NoError(t, err)

	// The two smallest categories fall outside the top ten.
	assert.NotContains(t, string(out), "CatA: R$ 100.00")
	assert.NotContains(t, string(out), "CatB: R$ 200.00")
	assert.Contains(t, string(out), "CatL: R$ 1200.00")
	assert.Contains(t, string(out), "CatC: R$ 300.00")
}

func TestExcelExporter_Workbook(t *testing.T) {
	doc := sampleDocument()

	out, err := NewExcelExporter().Export(doc)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t,
		[]string{SheetSummary, SheetCategories, SheetLedgerTypes, SheetCashMovements, SheetLedgerEntries},
		f.GetSheetList(),
	)

	cell := func(sheet, axis string) string {
		t.Helper()
		v, err := f.GetCellValue(sheet, axis)
		require.NoError(t, err)
		return v
	}

	t.Run("summary", func(t *testing.T) {
		assert.Equal(t, "CURRENT MONTH", cell(SheetSummary, "B2"))
		assert.Equal(t, "Total de Receitas", cell(SheetSummary, "A5"))
		assert.Equal(t, "1000.00", cell(SheetSummary, "B5"))
		assert.Equal(t, "550.15", cell(SheetSummary, "B8"))
		assert.Equal(t, "600.00", cell(SheetSummary, "B9"))
	})

	t.Run("every breakdown value round-trips", func(t *testing.T) {
		rows, err := f.GetRows(SheetCategories)
		require.NoError(t, err)
		got := map[string]string{}
		for _, row := range rows[1:] {
			got[row[0]] = row[1]
		}
		for key, value := range doc.Data.ByCategory {
			assert.Equal(t, value.StringFixed(2), got[key], "category %s", key)
		}

		assert.Equal(t, "ICMS", cell(SheetLedgerTypes, "A2"))
		assert.Equal(t, "150.15", cell(SheetLedgerTypes, "B2"))
	})

	t.Run("detail rows use N/A for missing fields", func(t *testing.T) {
		assert.Equal(t, "Receita", cell(SheetCashMovements, "B2"))
		assert.Equal(t, "Venda balcão", cell(SheetCashMovements, "D2"))
		assert.Equal(t, "N/A", cell(SheetCashMovements, "C3"))
		assert.Equal(t, "N/A", cell(SheetCashMovements, "D3"))
		assert.Equal(t, "N/A", cell(SheetLedgerEntries, "C2"))
		assert.Equal(t, "10/01/2025", cell(SheetLedgerEntries, "A2"))
	})
}

func TestSheetWriter_StopsAtFirstCellError(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	w := &sheetWriter{f: f}

	w.row("Missing", 1, "label", "other", decimal.NewFromInt(5))

	var notExist excelize.ErrSheetNotExist
	require.ErrorAs(t, w.err, &notExist)
	assert.Contains(t, w.err.Error(), "Missing!A1")

	w.row("Sheet1", 2, "ignored")
	value, err := f.GetCellValue("Sheet1", "A2")
	require.NoError(t, err)
	assert.Empty(t, value, "rows after a failure are skipped")
}

func TestCSVExporter_Sections(t *testing.T) {
	doc := sampleDocument()

	out, err := NewCSVExporter().Export(doc)
	require.NoError(t, err)

	reader := csv.NewReader(bytes.NewReader(out))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)

	pairs := map[string]string{}
	for _, r := range records {
		if len(r) == 2 {
			pairs[r[0]] = r[1]
		}
	}

	assert.Equal(t, doc.Title, records[0][0])
	assert.Equal(t, "CURRENT MONTH", pairs["Período"])
	assert.Equal(t, "20/01/2025", pairs["Data"])
	assert.Equal(t, "1000.00", pairs["Total de Receitas"])
	assert.Equal(t, "550.15", pairs["Total de Despesas"])
	assert.Equal(t, "0.00", pairs[entity.UncategorizedKey])
	assert.Equal(t, "150.15", pairs["ICMS"])

	// No detail rows: descriptions never appear.
	assert.NotContains(t, string(out), "Venda balcão")
	assert.NotContains(t, string(out), "Guia janeiro")
}
