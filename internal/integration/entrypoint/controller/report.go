// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gestor-financeiro/backend/internal/application/usecase/report"
	"github.com/gestor-financeiro/backend/internal/domain/entity"
	domainerror "github.com/gestor-financeiro/backend/internal/domain/error"
	"github.com/gestor-financeiro/backend/internal/integration/entrypoint/dto"
)

// statusClientClosedRequest is written when the caller went away mid-request.
const statusClientClosedRequest = 499

// ReportController handles report endpoints.
type ReportController struct {
	listUseCase          *report.ListReportsUseCase
	generateUseCase      *report.GenerateReportUseCase
	viewUseCase          *report.ViewReportUseCase
	downloadUseCase      *report.DownloadReportUseCase
	deleteUseCase        *report.DeleteReportUseCase
	previewUseCase       *report.PreviewReportUseCase
	exportPreviewUseCase *report.ExportPreviewUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	listUseCase *report.ListReportsUseCase,
	generateUseCase *report.GenerateReportUseCase,
	viewUseCase *report.ViewReportUseCase,
	downloadUseCase *report.DownloadReportUseCase,
	deleteUseCase *report.DeleteReportUseCase,
	previewUseCase *report.PreviewReportUseCase,
	exportPreviewUseCase *report.ExportPreviewUseCase,
) *ReportController {
	return &ReportController{
		listUseCase:          listUseCase,
		generateUseCase:      generateUseCase,
		viewUseCase:          viewUseCase,
		downloadUseCase:      downloadUseCase,
		deleteUseCase:        deleteUseCase,
		previewUseCase:       previewUseCase,
		exportPreviewUseCase: exportPreviewUseCase,
	}
}

// List handles GET /reports requests.
func (c *ReportController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), report.ListReportsInput{OwnerID: userID})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportListResponse(output.Reports))
}

// Generate handles POST /reports requests.
func (c *ReportController) Generate(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.GenerateReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		badCustomRange(ctx, "start_date must be YYYY-MM-DD")
		return
	}
	endDate, err := dto.ParseDate(req.EndDate)
	if err != nil {
		badCustomRange(ctx, "end_date must be YYYY-MM-DD")
		return
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), report.GenerateReportInput{
		OwnerID:   userID,
		Type:      entity.ReportType(req.Type),
		Period:    entity.ReportPeriod(req.Period),
		Format:    entity.ReportFormat(req.Format),
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		var reportErr *domainerror.ReportError
		if output != nil && output.Data != nil && errors.As(err, &reportErr) {
			data := dto.ToReportDataResponse(output.Data)
			ctx.JSON(c.getStatusCodeForReportError(reportErr.Code), dto.ReportErrorResponse{
				Error: reportErr.Message,
				Code:  string(reportErr.Code),
				Data:  &data,
			})
			return
		}
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.GenerateReportResponse{
		Report: dto.ToReportResponse(output.Record),
		Data:   dto.ToReportDataResponse(output.Data),
	})
}

// Preview handles GET /reports/preview requests.
func (c *ReportController) Preview(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	period := entity.ReportPeriod(ctx.Query("period"))
	input := report.PreviewReportInput{OwnerID: userID, Period: period}
	if period == entity.ReportPeriodCustom {
		custom, ok := parseQueryRange(ctx)
		if !ok {
			return
		}
		input.Custom = custom
	}

	output, err := c.previewUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PreviewResponse{
		Generation: output.Generation,
		Period:     string(output.Period),
		Superseded: output.Superseded,
		Data:       dto.ToReportDataResponse(output.Data),
	})
}

// ExportPreview handles GET /reports/preview/export requests.
func (c *ReportController) ExportPreview(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	input := report.ExportPreviewInput{
		OwnerID: userID,
		Type:    entity.ReportType(ctx.Query("type")),
		Period:  entity.ReportPeriod(ctx.Query("period")),
		Format:  entity.ReportFormat(ctx.Query("format")),
	}
	if input.Period == entity.ReportPeriodCustom {
		custom, ok := parseQueryRange(ctx)
		if !ok {
			return
		}
		input.Custom = custom
	}

	file, err := c.exportPreviewUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	writeFile(ctx, file)
}

// Get handles GET /reports/:id requests.
func (c *ReportController) Get(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	reportID, ok := parseResourceID(ctx, "report")
	if !ok {
		return
	}

	output, err := c.viewUseCase.Execute(ctx.Request.Context(), report.ViewReportInput{
		OwnerID:  userID,
		ReportID: reportID,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ReportDetailResponse{
		Report: dto.ToReportResponse(output.Record),
		Data:   dto.ToReportDataResponse(output.Data),
	})
}

// Download handles GET /reports/:id/download requests.
func (c *ReportController) Download(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	reportID, ok := parseResourceID(ctx, "report")
	if !ok {
		return
	}

	output, err := c.downloadUseCase.Execute(ctx.Request.Context(), report.DownloadReportInput{
		OwnerID:  userID,
		ReportID: reportID,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	writeFile(ctx, output.File)
}

// Delete handles DELETE /reports/:id requests.
func (c *ReportController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	reportID, ok := parseResourceID(ctx, "report")
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), report.DeleteReportInput{
		OwnerID:  userID,
		ReportID: reportID,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func writeFile(ctx *gin.Context, file *report.ExportedFile) {
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	ctx.Data(http.StatusOK, file.ContentType, file.Content)
}

func parseQueryRange(ctx *gin.Context) (*entity.DateRange, bool) {
	start := ctx.Query("start_date")
	end := ctx.Query("end_date")
	startDate, err := dto.ParseDate(&start)
	if err != nil || startDate == nil {
		badCustomRange(ctx, "start_date must be YYYY-MM-DD")
		return nil, false
	}
	endDate, err := dto.ParseDate(&end)
	if err != nil || endDate == nil {
		badCustomRange(ctx, "end_date must be YYYY-MM-DD")
		return nil, false
	}
	return &entity.DateRange{Start: *startDate, End: *endDate}, true
}

func badCustomRange(ctx *gin.Context, details string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   domainerror.ErrInvalidCustomRange.Error(),
		Code:    string(domainerror.ErrCodeInvalidCustomRange),
		Details: details,
	})
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	if errors.Is(err, context.Canceled) {
		ctx.Status(statusClientClosedRequest)
		return
	}

	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		ctx.JSON(c.getStatusCodeForReportError(reportErr.Code), dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	slog.Error("Unhandled report error", "path", ctx.FullPath(), "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForReportError maps report error codes to HTTP status codes.
func (c *ReportController) getStatusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeUnknownPeriod,
		domainerror.ErrCodeInvalidReportType,
		domainerror.ErrCodeInvalidReportFormat,
		domainerror.ErrCodeInvalidCustomRange:
		return http.StatusBadRequest
	case domainerror.ErrCodeReportNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedReport:
		return http.StatusForbidden
	case domainerror.ErrCodeReportNotReady:
		return http.StatusConflict
	case domainerror.ErrCodeFetchFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
