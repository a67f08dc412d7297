// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gestor-financeiro/backend/internal/application/usecase/ledger"
	domainerror "github.com/gestor-financeiro/backend/internal/domain/error"
	"github.com/gestor-financeiro/backend/internal/integration/entrypoint/dto"
)

// LedgerEntryController handles ledger endpoints.
type LedgerEntryController struct {
	listUseCase   *ledger.ListLedgerEntriesUseCase
	createUseCase *ledger.CreateLedgerEntryUseCase
	updateUseCase *ledger.UpdateLedgerEntryUseCase
	deleteUseCase *ledger.DeleteLedgerEntryUseCase
}

// NewLedgerEntryController creates a new ledger entry controller instance.
func NewLedgerEntryController(
	listUseCase *ledger.ListLedgerEntriesUseCase,
	createUseCase *ledger.CreateLedgerEntryUseCase,
	updateUseCase *ledger.UpdateLedgerEntryUseCase,
	deleteUseCase *ledger.DeleteLedgerEntryUseCase,
) *LedgerEntryController {
	return &LedgerEntryController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /ledger-entries requests.
func (c *LedgerEntryController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), ledger.ListLedgerEntriesInput{OwnerID: userID})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLedgerEntryListResponse(output.Entries))
}

// Create handles POST /ledger-entries requests.
func (c *LedgerEntryController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateLedgerEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.invalidBody(ctx, err.Error())
		return
	}

	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		c.invalidBody(ctx, "date must be YYYY-MM-DD")
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), ledger.CreateLedgerEntryInput{
		OwnerID:     userID,
		Date:        date,
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(output.Entry))
}

// Update handles PATCH /ledger-entries/:id requests.
func (c *LedgerEntryController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseResourceID(ctx, "ledger entry")
	if !ok {
		return
	}

	var req dto.UpdateLedgerEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.invalidBody(ctx, err.Error())
		return
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		c.invalidBody(ctx, "date must be YYYY-MM-DD")
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), ledger.UpdateLedgerEntryInput{
		OwnerID:     userID,
		ID:          id,
		Date:        date,
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLedgerEntryResponse(output.Entry))
}

// Delete handles DELETE /ledger-entries/:id requests.
func (c *LedgerEntryController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseResourceID(ctx, "ledger entry")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), ledger.DeleteLedgerEntryInput{
		OwnerID: userID,
		ID:      id,
	}); err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *LedgerEntryController) invalidBody(ctx *gin.Context, details string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid request body",
		Code:    string(domainerror.ErrCodeInvalidLedgerBody),
		Details: details,
	})
}

func (c *LedgerEntryController) handleLedgerError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		ctx.JSON(c.getStatusCodeForLedgerError(ledgerErr.Code), dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

func (c *LedgerEntryController) getStatusCodeForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeLedgerEntryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedLedgerEntry:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidLedgerAmount,
		domainerror.ErrCodeMissingLedgerDate,
		domainerror.ErrCodeLedgerFieldTooLong,
		domainerror.ErrCodeInvalidLedgerBody:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
