package export

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/gestor-financeiro/backend/internal/application/adapter"
	"github.com/gestor-financeiro/backend/internal/domain/entity"
	domainerror "github.com/gestor-financeiro/backend/internal/domain/error"
)

// Sheet names of the workbook, in order.
const (
	SheetSummary       = "Summary"
	SheetCategories    = "Categories"
	SheetLedgerTypes   = "LedgerTypes"
	SheetCashMovements = "CashMovements"
	SheetLedgerEntries = "LedgerEntries"
)

// numFmtTwoDecimals is the built-in "0.00" number format.
const numFmtTwoDecimals = 2

// ExcelExporter renders reports as XLSX workbooks.
type ExcelExporter struct{}

// NewExcelExporter creates a new ExcelExporter.
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Format implements adapter.ReportExporter.
func (e *ExcelExporter) Format() entity.ReportFormat {
	return entity.ReportFormatExcel
}

// Export implements adapter.ReportExporter.
func (e *ExcelExporter) Export(doc adapter.ExportDocument) ([]byte, error) {
	if doc.Data == nil {
		return nil, domainerror.ErrReportNotReady
	}
	data := doc.Data

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, err
	}
	for _, name := range []string{SheetCategories, SheetLedgerTypes, SheetCashMovements, SheetLedgerEntries} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: numFmtTwoDecimals})
	if err != nil {
		return nil, err
	}
	w := &sheetWriter{f: f, amountStyle: amountStyle}

	w.row(SheetSummary, 1, doc.Title)
	w.row(SheetSummary, 2, "Período", doc.Period.Label())
	w.row(SheetSummary, 3, "Data", doc.GeneratedAt.Format(dateLayout))
	for i, r := range summaryRows(data) {
		w.row(SheetSummary, 5+i, r.label, r.amount)
	}

	w.row(SheetCategories, 1, "Categoria", "Valor")
	for i, c := range entity.SortedByAmount(data.ByCategory) {
		w.row(SheetCategories, 2+i, c.Key, c.Amount)
	}

	w.row(SheetLedgerTypes, 1, "Tipo", "Valor")
	for i, lt := range entity.SortedByAmount(data.ByLedgerType) {
		w.row(SheetLedgerTypes, 2+i, lt.Key, lt.Amount)
	}

	detailHeader := []interface{}{"Data", "Tipo", "Categoria", "Descrição", "Valor"}
	w.row(SheetCashMovements, 1, detailHeader...)
	for i, m := range data.CashMovements {
		w.row(SheetCashMovements, 2+i,
			m.Date.Format(dateLayout), cashTypeLabel(m.Type), orNA(m.Category), orNA(m.Description), m.Amount)
	}

	w.row(SheetLedgerEntries, 1, detailHeader...)
	for i, le := range data.LedgerEntries {
		w.row(SheetLedgerEntries, 2+i,
			le.Date.Format(dateLayout), le.GroupKey(), orNA(le.Category), orNA(le.Description), le.Amount)
	}

	if w.err != nil {
		return nil, fmt.Errorf("failed to fill workbook: %w", w.err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetWriter writes rows and keeps the first error.
type sheetWriter struct {
	f           *excelize.File
	amountStyle int
	err         error
}

// row writes values starting at column A. Decimal values become numeric
// cells with two-decimal formatting.
func (w *sheetWriter) row(sheet string, rowNum int, values ...interface{}) {
	if w.err != nil {
		return
	}
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			w.err = err
			return
		}

		amount, isAmount := value.(decimal.Decimal)
		if !isAmount {
			if err := w.f.SetCellValue(sheet, cell, value); err != nil {
				w.err = fmt.Errorf("%s!%s: %w", sheet, cell, err)
				return
			}
			continue
		}

		if err := w.f.SetCellFloat(sheet, cell, amount.InexactFloat64(), 2, 64); err != nil {
			w.err = fmt.Errorf("%s!%s: %w", sheet, cell, err)
			return
		}
		if err := w.f.SetCellStyle(sheet, cell, cell, w.amountStyle); err != nil {
			w.err = fmt.Errorf("%s!%s: %w", sheet, cell, err)
			return
		}
	}
}
