// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/gestor-financeiro/backend/internal/domain/error"
	"github.com/gestor-financeiro/backend/internal/integration/entrypoint/dto"
	"github.com/gestor-financeiro/backend/internal/integration/entrypoint/middleware"
)

// requireUser returns the authenticated user ID, writing 401 when absent.
func requireUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

func parseResourceID(ctx *gin.Context, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + resource + " ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
