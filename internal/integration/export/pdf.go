package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/gestor-financeiro/backend/internal/application/adapter"
	"github.com/gestor-financeiro/backend/internal/domain/entity"
	domainerror "github.com/gestor-financeiro/backend/internal/domain/error"
)

// pageBottom is the y position (mm) after which a new A4 page is started.
const pageBottom = 270.0

// PDFExporter renders reports as A4 PDF documents.
//
// Text uses the core Arial font with the cp1252 code page, which covers
// Portuguese and the other Western European languages. Characters outside
// cp1252 in category or ledger type names are printed as '.'; the Excel and
// CSV exports keep them intact.
type PDFExporter struct{}

// NewPDFExporter creates a new PDFExporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Format implements adapter.ReportExporter.
func (e *PDFExporter) Format() entity.ReportFormat {
	return entity.ReportFormatPDF
}

// Export implements adapter.ReportExporter.
func (e *PDFExporter) Export(doc adapter.ExportDocument) ([]byte, error) {
	if doc.Data == nil {
		return nil, domainerror.ErrReportNotReady
	}
	data := doc.Data

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(doc.Title, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	w := &pdfWriter{pdf: pdf, tr: tr}
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 10, tr(doc.Title))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	w.line(fmt.Sprintf("Período: %s", doc.Period.Label()))
	w.line(fmt.Sprintf("Data: %s", doc.GeneratedAt.Format(dateLayout)))
	pdf.Ln(6)

	w.heading("Resumo Financeiro")
	for _, row := range summaryRows(data) {
		w.line(fmt.Sprintf("%s: R$ %s", row.label, money(row.amount)))
	}
	pdf.Ln(6)

	categories := entity.SortedByAmount(data.ByCategory)
	if len(categories) > 0 {
		w.heading("Top 10 Categorias")
		if len(categories) > topCategories {
			categories = categories[:topCategories]
		}
		for _, c := range categories {
			w.line(fmt.Sprintf("%s: R$ %s", c.Key, money(c.Amount)))
		}
		pdf.Ln(6)
	}

	ledgerTypes := entity.SortedByAmount(data.ByLedgerType)
	if len(ledgerTypes) > 0 {
		w.heading("Lançamentos por Tipo")
		for _, lt := range ledgerTypes {
			w.line(fmt.Sprintf("%s: R$ %s", lt.Key, money(lt.Amount)))
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// pdfWriter appends lines and starts a new page when the cursor passes pageBottom.
type pdfWriter struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func (w *pdfWriter) breakIfNeeded() {
	if w.pdf.GetY() > pageBottom {
		w.pdf.AddPage()
	}
}

func (w *pdfWriter) heading(text string) {
	w.breakIfNeeded()
	w.pdf.SetFont("Arial", "B", 14)
	w.pdf.Cell(0, 8, w.tr(text))
	w.pdf.Ln(10)
	w.pdf.SetFont("Arial", "", 12)
}

func (w *pdfWriter) line(text string) {
	w.breakIfNeeded()
	w.pdf.Cell(0, 7, w.tr(text))
	w.pdf.Ln(7)
}
