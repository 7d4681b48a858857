package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shiningstar/learninglens/internal/app/models/dto"
	"github.com/shiningstar/learninglens/internal/app/services"
	"github.com/shiningstar/learninglens/internal/middleware"
	"github.com/shiningstar/learninglens/internal/pkg/helpers"
)

// LogController handles activity log queries
type LogController struct {
	activityLogService services.ActivityLogService
}

// NewLogController creates a new LogController
func NewLogController(activityLogService services.ActivityLogService) *LogController {
	return &LogController{
		activityLogService: activityLogService,
	}
}

// GetLogs lists activity entries
// @Summary List activity logs
// @Description Retrieves a paginated list of activity entries, newest first
// @Tags logs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param size query int false "Page size (default 10, max 100)"
// @Success 200 {object} dto.APIResponse{data=dto.ActivityLogListResponse} "Logs retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/logs [get]
func (c *LogController) GetLogs(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	logs, err := c.activityLogService.List(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      logs,
		Timestamp: time.Now(),
	})
}
