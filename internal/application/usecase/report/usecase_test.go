package report

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gestor-financeiro/backend/internal/domain/entity"
	domainerror "github.com/gestor-financeiro/backend/internal/domain/error"
)

type fixture struct {
	cashRepo   *stubCashMovementRepository
	ledgerRepo *stubLedgerEntryRepository
	reportRepo *memoryReportRepository
	computer   *ReportComputer
	exports    *ExportService
	pdf        *stubExporter
}

func newFixture() *fixture {
	f := &fixture{
		cashRepo: &stubCashMovementRepository{movements: []*entity.CashMovement{
			movement(day(2025, time.January, 10), entity.CashMovementTypeIncome, strPtr("Vendas"), "1000"),
			movement(day(2025, time.January, 15), entity.CashMovementTypeExpense, strPtr("Fornecedores"), "400"),
		}},
		ledgerRepo: &stubLedgerEntryRepository{entries: []*entity.LedgerEntry{
			ledgerEntry(day(2025, time.January, 5), "ICMS", "150"),
		}},
		reportRepo: newMemoryReportRepository(),
		pdf:        &stubExporter{format: entity.ReportFormatPDF},
	}
	f.computer = NewReportComputer(f.cashRepo, f.ledgerRepo, testNow, nil)
	f.exports = NewExportService(testNow, nil, f.pdf,
		&stubExporter{format: entity.ReportFormatExcel},
		&stubExporter{format: entity.ReportFormatCSV},
	)
	return f
}

func TestReportComputer_FetchFailed(t *testing.T) {
	tests := []struct {
		name      string
		cashErr   error
		ledgerErr error
	}{
		{"cash movements unavailable", errStoreDown, nil},
		{"ledger entries unavailable", nil, errStoreDown},
		{"both unavailable", errStoreDown, errStoreDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.cashRepo.err = tt.cashErr
			f.ledgerRepo.err = tt.ledgerErr

			data, err := f.computer.Compute(context.Background(), ComputeInput{
				OwnerID: uuid.New(),
				Period:  entity.ReportPeriodAll,
			})
			if data != nil {
				t.Error("expected no partial data on fetch failure")
			}
			if !errors.Is(err, domainerror.ErrFetchFailed) {
				t.Errorf("expected ErrFetchFailed, got %v", err)
			}
			if code := reportErrorCode(err); code != domainerror.ErrCodeFetchFailed {
				t.Errorf("expected code %s, got %s", domainerror.ErrCodeFetchFailed, code)
			}
		})
	}
}

func TestReportComputer_CancelledDuringFetch(t *testing.T) {
	cashRepo := &blockingCashMovementRepository{entered: make(chan struct{})}
	computer := NewReportComputer(cashRepo, &stubLedgerEntryRepository{}, testNow, nil)
	uc := NewPreviewReportUseCase(computer, newMemoryPreviewStore(), testNow)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := uc.Execute(ctx, PreviewReportInput{OwnerID: uuid.New(), Period: entity.ReportPeriodAll})
		done <- err
	}()

	<-cashRepo.entered
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
		if errors.Is(err, domainerror.ErrFetchFailed) {
			t.Errorf("cancellation must not be reported as a fetch failure: %v", err)
		}
		if code := reportErrorCode(err); code != "" {
			t.Errorf("expected no report error code, got %s", code)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("preview did not return after cancellation")
	}
}

func TestReportComputer_FetchFailedKeepsCause(t *testing.T) {
	f := newFixture()
	f.ledgerRepo.err = errStoreDown

	_, err := f.computer.Compute(context.Background(), ComputeInput{Period: entity.ReportPeriodAll})
	if !errors.Is(err, errStoreDown) {
		t.Errorf("expected the store error in the chain, got %v", err)
	}
}

func TestReportComputer_UnknownPeriodSkipsFetch(t *testing.T) {
	f := newFixture()
	f.cashRepo.err = errStoreDown

	_, err := f.computer.Compute(context.Background(), ComputeInput{Period: "fortnight"})
	if !errors.Is(err, domainerror.ErrUnknownPeriod) {
		t.Errorf("expected ErrUnknownPeriod, got %v", err)
	}
}

func TestGenerateReportUseCase_Execute(t *testing.T) {
	ownerID := uuid.New()

	t.Run("persists one label and returns fresh data", func(t *testing.T) {
		f := newFixture()
		uc := NewGenerateReportUseCase(f.reportRepo, f.computer, nil)

		out, err := uc.Execute(context.Background(), GenerateReportInput{
			OwnerID: ownerID,
			Type:    entity.ReportTypeFinancial,
			Period:  entity.ReportPeriodCurrentMonth,
			Format:  entity.ReportFormatPDF,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Record == nil || out.Record.OwnerID != ownerID {
			t.Fatalf("expected record owned by %s, got %+v", ownerID, out.Record)
		}
		if out.Record.StartDate != nil || out.Record.EndDate != nil {
			t.Error("expected no date range for a non-custom period")
		}
		assertAmount(t, "netBalance", out.Data.NetBalance, "600")
		if len(f.reportRepo.records) != 1 {
			t.Errorf("expected 1 persisted label, got %d", len(f.reportRepo.records))
		}
	})

	t.Run("custom period stores its range", func(t *testing.T) {
		f := newFixture()
		uc := NewGenerateReportUseCase(f.reportRepo, f.computer, nil)
		start, end := day(2025, time.January, 1), day(2025, time.January, 12)

		out, err := uc.Execute(context.Background(), GenerateReportInput{
			OwnerID:   ownerID,
			Type:      entity.ReportTypeCashFlow,
			Period:    entity.ReportPeriodCustom,
			Format:    entity.ReportFormatCSV,
			StartDate: &start,
			EndDate:   &end,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := out.Record.CustomRange(); got == nil || !got.Start.Equal(start) || !got.End.Equal(end) {
			t.Errorf("unexpected custom range %+v", got)
		}
		assertAmount(t, "totalIncome", out.Data.TotalIncome, "1000")
		assertAmount(t, "totalCashExpense", out.Data.TotalCashExpense, "0")
	})

	validation := []struct {
		name  string
		input GenerateReportInput
		code  domainerror.ReportErrorCode
	}{
		{"invalid type", GenerateReportInput{Type: "yearly", Period: entity.ReportPeriodCurrentMonth, Format: entity.ReportFormatPDF}, domainerror.ErrCodeInvalidReportType},
		{"invalid format", GenerateReportInput{Type: entity.ReportTypeDebts, Period: entity.ReportPeriodCurrentMonth, Format: "docx"}, domainerror.ErrCodeInvalidReportFormat},
		{"all is not a label period", GenerateReportInput{Type: entity.ReportTypeTaxes, Period: entity.ReportPeriodAll, Format: entity.ReportFormatPDF}, domainerror.ErrCodeUnknownPeriod},
		{"custom without dates", GenerateReportInput{Type: entity.ReportTypeTaxes, Period: entity.ReportPeriodCustom, Format: entity.ReportFormatPDF}, domainerror.ErrCodeInvalidCustomRange},
	}
	for _, tt := range validation {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			uc := NewGenerateReportUseCase(f.reportRepo, f.computer, nil)

			out, err := uc.Execute(context.Background(), tt.input)
			if out != nil {
				t.Error("expected no output on validation failure")
			}
			if code := reportErrorCode(err); code != tt.code {
				t.Errorf("expected code %s, got %s (%v)", tt.code, code, err)
			}
			if len(f.reportRepo.records) != 0 {
				t.Error("expected no label to be persisted")
			}
		})
	}

	t.Run("persist failure keeps computed data", func(t *testing.T) {
		f := newFixture()
		f.reportRepo.createErr = errStoreDown
		uc := NewGenerateReportUseCase(f.reportRepo, f.computer, nil)

		out, err := uc.Execute(context.Background(), GenerateReportInput{
			OwnerID: ownerID,
			Type:    entity.ReportTypeFinancial,
			Period:  entity.ReportPeriodCurrentMonth,
			Format:  entity.ReportFormatExcel,
		})
		if !errors.Is(err, domainerror.ErrPersistFailed) {
			t.Fatalf("expected ErrPersistFailed, got %v", err)
		}
		if out == nil || out.Data == nil {
			t.Fatal("expected computed data alongside PersistFailed")
		}
		if out.Record != nil {
			t.Error("expected no record when persist failed")
		}
		assertAmount(t, "totalIncome", out.Data.TotalIncome, "1000")
	})

	t.Run("fetch failure persists nothing", func(t *testing.T) {
		f := newFixture()
		f.ledgerRepo.err = errStoreDown
		uc := NewGenerateReportUseCase(f.reportRepo, f.computer, nil)

		_, err := uc.Execute(context.Background(), GenerateReportInput{
			OwnerID: ownerID,
			Type:    entity.ReportTypeFinancial,
			Period:  entity.ReportPeriodCurrentMonth,
			Format:  entity.ReportFormatPDF,
		})
		if !errors.Is(err, domainerror.ErrFetchFailed) {
			t.Errorf("expected ErrFetchFailed, got %v", err)
		}
		if len(f.reportRepo.records) != 0 {
			t.Error("expected no label to be persisted")
		}
	})
}

func seedRecord(t *testing.T, f *fixture, ownerID uuid.UUID, format entity.ReportFormat) *entity.ReportRecord {
	t.Helper()
	record := entity.NewReportRecord(ownerID, entity.ReportTypeFinancial, entity.ReportPeriodCurrentMonth, format, nil)
	if err := f.reportRepo.Create(context.Background(), record); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return record
}

func TestViewReportUseCase_RecomputesFromLiveRecords(t *testing.T) {
	f := newFixture()
	ownerID := uuid.New()
	record := seedRecord(t, f, ownerID, entity.ReportFormatPDF)
	uc := NewViewReportUseCase(f.reportRepo, f.computer)

	first, err := uc.Execute(context.Background(), ViewReportInput{OwnerID: ownerID, ReportID: record.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertAmount(t, "first totalIncome", first.Data.TotalIncome, "1000")

	f.cashRepo.movements = append(f.cashRepo.movements,
		movement(day(2025, time.January, 18), entity.CashMovementTypeIncome, strPtr("Vendas"), "250"))

	second, err := uc.Execute(context.Background(), ViewReportInput{OwnerID: ownerID, ReportID: record.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertAmount(t, "second totalIncome", second.Data.TotalIncome, "1250")
}

func TestReportAccessErrors(t *testing.T) {
	f := newFixture()
	ownerID := uuid.New()
	record := seedRecord(t, f, ownerID, entity.ReportFormatPDF)

	view := NewViewReportUseCase(f.reportRepo, f.computer)
	download := NewDownloadReportUseCase(f.reportRepo, f.computer, f.exports)
	remove := NewDeleteReportUseCase(f.reportRepo, nil)

	tests := []struct {
		name     string
		ownerID  uuid.UUID
		reportID uuid.UUID
		code     domainerror.ReportErrorCode
	}{
		{"missing report", ownerID, uuid.New(), domainerror.ErrCodeReportNotFound},
		{"someone else's report", uuid.New(), record.ID, domainerror.ErrCodeNotAuthorizedReport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := view.Execute(context.Background(), ViewReportInput{OwnerID: tt.ownerID, ReportID: tt.reportID})
			if code := reportErrorCode(err); code != tt.code {
				t.Errorf("view: expected %s, got %s", tt.code, code)
			}

			_, err = download.Execute(context.Background(), DownloadReportInput{OwnerID: tt.ownerID, ReportID: tt.reportID})
			if code := reportErrorCode(err); code != tt.code {
				t.Errorf("download: expected %s, got %s", tt.code, code)
			}

			err = remove.Execute(context.Background(), DeleteReportInput{OwnerID: tt.ownerID, ReportID: tt.reportID})
			if code := reportErrorCode(err); code != tt.code {
				t.Errorf("delete: expected %s, got %s", tt.code, code)
			}
		})
	}

	if _, ok := f.reportRepo.records[record.ID]; !ok {
		t.Error("expected report to survive unauthorized delete")
	}
}

func TestDownloadReportUseCase_UsesLabelFormat(t *testing.T) {
	f := newFixture()
	ownerID := uuid.New()
	record := seedRecord(t, f, ownerID, entity.ReportFormatPDF)
	uc := NewDownloadReportUseCase(f.reportRepo, f.computer, f.exports)

	out, err := uc.Execute(context.Background(), DownloadReportInput{OwnerID: ownerID, ReportID: record.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(out.File.Content) != "pdf:600.00" {
		t.Errorf("unexpected content %q", out.File.Content)
	}
	if out.File.ContentType != "application/pdf" {
		t.Errorf("unexpected content type %q", out.File.ContentType)
	}
	wantName := "relatorio-current_month-" + "1737367200000" + ".pdf"
	if out.File.Filename != wantName {
		t.Errorf("filename = %q, want %q", out.File.Filename, wantName)
	}
	if len(f.pdf.docs) != 1 || f.pdf.docs[0].Title != "Relatório Financeiro" {
		t.Errorf("unexpected export documents %+v", f.pdf.docs)
	}
}

func TestDeleteReportUseCase_RemovesLabel(t *testing.T) {
	f := newFixture()
	ownerID := uuid.New()
	record := seedRecord(t, f, ownerID, entity.ReportFormatCSV)

	if err := NewDeleteReportUseCase(f.reportRepo, nil).Execute(context.Background(), DeleteReportInput{
		OwnerID:  ownerID,
		ReportID: record.ID,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := NewListReportsUseCase(f.reportRepo).Execute(context.Background(), ListReportsInput{OwnerID: ownerID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Reports) != 0 {
		t.Errorf("expected empty history, got %d", len(out.Reports))
	}
}

func TestExportService_Export(t *testing.T) {
	t.Run("nil data is NotReady", func(t *testing.T) {
		f := newFixture()
		for _, format := range []entity.ReportFormat{entity.ReportFormatPDF, entity.ReportFormatExcel, entity.ReportFormatCSV} {
			file, err := f.exports.Export(format, entity.ReportTypeFinancial, entity.ReportPeriodCurrentMonth, nil)
			if file != nil {
				t.Errorf("%s: expected no file bytes", format)
			}
			if code := reportErrorCode(err); code != domainerror.ErrCodeReportNotReady {
				t.Errorf("%s: expected NotReady, got %v", format, err)
			}
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		f := newFixture()
		_, err := f.exports.Export("odt", entity.ReportTypeFinancial, entity.ReportPeriodAll, &entity.ReportData{})
		if !errors.Is(err, domainerror.ErrInvalidReportFormat) {
			t.Errorf("expected ErrInvalidReportFormat, got %v", err)
		}
	})

	t.Run("generator failure is ExportFailed", func(t *testing.T) {
		broken := &stubExporter{format: entity.ReportFormatPDF, err: errors.New("font missing")}
		exports := NewExportService(testNow, nil, broken)

		_, err := exports.Export(entity.ReportFormatPDF, entity.ReportTypeFinancial, entity.ReportPeriodAll, &entity.ReportData{})
		if !errors.Is(err, domainerror.ErrExportFailed) {
			t.Fatalf("expected ErrExportFailed, got %v", err)
		}
		if !strings.Contains(err.Error(), "font missing") {
			t.Errorf("expected cause in message, got %q", err.Error())
		}
	})
}
