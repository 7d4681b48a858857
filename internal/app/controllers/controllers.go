// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shiningstar/learninglens/internal/app/models/dto"
)

// currentUserID returns the authenticated user's ID from the request context
func currentUserID(ctx *gin.Context) int64 {
	if val, exists := ctx.Get("userID"); exists {
		if id, ok := val.(int64); ok {
			return id
		}
	}
	return 0
}

// currentRole returns the authenticated user's role from the request context
func currentRole(ctx *gin.Context) string {
	if val, exists := ctx.Get("role"); exists {
		if role, ok := val.(string); ok {
			return role
		}
	}
	return ""
}

// parseIDParam parses a path parameter as an int64 ID.
// On failure it writes the error response and returns false.
func parseIDParam(ctx *gin.Context, name, label string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+label)
		errorDetail = errorDetail.WithDetails(label + " must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
