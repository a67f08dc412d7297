package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/gestor-financeiro/backend/internal/application/adapter"
	"github.com/gestor-financeiro/backend/internal/domain/entity"
	domainerror "github.com/gestor-financeiro/backend/internal/domain/error"
)

// CSVExporter renders reports as a flat CSV stream: header, summary,
// category table and ledger type table. It carries no detail rows.
type CSVExporter struct{}

// NewCSVExporter creates a new CSVExporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Format implements adapter.ReportExporter.
func (e *CSVExporter) Format() entity.ReportFormat {
	return entity.ReportFormatCSV
}

// Export implements adapter.ReportExporter.
func (e *CSVExporter) Export(doc adapter.ExportDocument) ([]byte, error) {
	if doc.Data == nil {
		return nil, domainerror.ErrReportNotReady
	}
	data := doc.Data

	records := [][]string{
		{doc.Title},
		{"Período", doc.Period.Label()},
		{"Data", doc.GeneratedAt.Format(dateLayout)},
		{},
		{"Resumo"},
	}
	for _, r := range summaryRows(data) {
		records = append(records, []string{r.label, money(r.amount)})
	}

	records = append(records, []string{}, []string{"Categoria", "Valor"})
	for _, c := range entity.SortedByAmount(data.ByCategory) {
		records = append(records, []string{c.Key, money(c.Amount)})
	}

	records = append(records, []string{}, []string{"Tipo", "Valor"})
	for _, lt := range entity.SortedByAmount(data.ByLedgerType) {
		records = append(records, []string{lt.Key, money(lt.Amount)})
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.WriteAll(records); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	return buf.Bytes(), nil
}
