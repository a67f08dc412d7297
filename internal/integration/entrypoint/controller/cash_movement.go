// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gestor-financeiro/backend/internal/application/usecase/cashmovement"
	"github.com/gestor-financeiro/backend/internal/domain/entity"
	domainerror "github.com/gestor-financeiro/backend/internal/domain/error"
	"github.com/gestor-financeiro/backend/internal/integration/entrypoint/dto"
)

// CashMovementController handles cash register endpoints.
type CashMovementController struct {
	listUseCase   *cashmovement.ListCashMovementsUseCase
	createUseCase *cashmovement.CreateCashMovementUseCase
	updateUseCase *cashmovement.UpdateCashMovementUseCase
	deleteUseCase *cashmovement.DeleteCashMovementUseCase
}

// NewCashMovementController creates a new cash movement controller instance.
func NewCashMovementController(
	listUseCase *cashmovement.ListCashMovementsUseCase,
	createUseCase *cashmovement.CreateCashMovementUseCase,
	updateUseCase *cashmovement.UpdateCashMovementUseCase,
	deleteUseCase *cashmovement.DeleteCashMovementUseCase,
) *CashMovementController {
	return &CashMovementController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /cash-movements requests.
func (c *CashMovementController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), cashmovement.ListCashMovementsInput{OwnerID: userID})
	if err != nil {
		c.handleCashMovementError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCashMovementListResponse(output.Movements))
}

// Create handles POST /cash-movements requests.
func (c *CashMovementController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateCashMovementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.invalidBody(ctx, err.Error())
		return
	}

	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		c.invalidBody(ctx, "date must be YYYY-MM-DD")
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), cashmovement.CreateCashMovementInput{
		OwnerID:     userID,
		Date:        date,
		Type:        entity.CashMovementType(req.Type),
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		c.handleCashMovementError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCashMovementResponse(output.Movement))
}

// Update handles PATCH /cash-movements/:id requests.
func (c *CashMovementController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseResourceID(ctx, "cash movement")
	if !ok {
		return
	}

	var req dto.UpdateCashMovementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.invalidBody(ctx, err.Error())
		return
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		c.invalidBody(ctx, "date must be YYYY-MM-DD")
		return
	}

	input := cashmovement.UpdateCashMovementInput{
		OwnerID:     userID,
		ID:          id,
		Date:        date,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
	}
	if req.Type != nil {
		movementType := entity.CashMovementType(*req.Type)
		input.Type = &movementType
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCashMovementError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCashMovementResponse(output.Movement))
}

// Delete handles DELETE /cash-movements/:id requests.
func (c *CashMovementController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseResourceID(ctx, "cash movement")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), cashmovement.DeleteCashMovementInput{
		OwnerID: userID,
		ID:      id,
	}); err != nil {
		c.handleCashMovementError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *CashMovementController) invalidBody(ctx *gin.Context, details string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid request body",
		Code:    string(domainerror.ErrCodeInvalidCashMovementBody),
		Details: details,
	})
}

// handleCashMovementError handles cash movement errors and returns appropriate HTTP responses.
func (c *CashMovementController) handleCashMovementError(ctx *gin.Context, err error) {
	var movementErr *domainerror.CashMovementError
	if errors.As(err, &movementErr) {
		ctx.JSON(c.getStatusCodeForCashMovementError(movementErr.Code), dto.ErrorResponse{
			Error: movementErr.Message,
			Code:  string(movementErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

func (c *CashMovementController) getStatusCodeForCashMovementError(code domainerror.CashMovementErrorCode) int {
	switch code {
	case domainerror.ErrCodeCashMovementNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedCashMovement:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidCashMovementType,
		domainerror.ErrCodeInvalidCashMovementAmount,
		domainerror.ErrCodeMissingCashMovementDate,
		domainerror.ErrCodeCashMovementFieldTooLong,
		domainerror.ErrCodeInvalidCashMovementBody:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
