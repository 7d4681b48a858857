package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shiningstar/learninglens/internal/app/models/dto"
	"github.com/shiningstar/learninglens/internal/app/services"
	"github.com/shiningstar/learninglens/internal/middleware"
)

// ReportController handles report operations
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// GenerateReports builds the report set for an analyzed assessment
// @Summary Generate reports
// @Description Generates the student, parent and teacher reports for an analyzed assessment. Regenerating replaces the previously stored set.
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GenerateReportsRequest true "Assessment to report on"
// @Success 201 {object} dto.APIResponse{data=dto.GeneratedReportsResponse} "Reports generated successfully"
// @Failure 400 {object} dto.ErrorResponse "Assessment is not analyzed"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/generate-reports [post]
func (c *ReportController) GenerateReports(ctx *gin.Context) {
	var req dto.GenerateReportsRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	reports, err := c.reportService.GenerateReports(ctx, req.AssessmentID, currentUserID(ctx), ctx.ClientIP())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      reports,
		Timestamp: time.Now(),
	})
}

// GetReportByID retrieves a report by ID
// @Summary Get report by ID
// @Description Retrieves a single generated report including its content
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 200 {object} dto.APIResponse{data=dto.ReportResponse} "Report retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid report ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Report not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/{id} [get]
func (c *ReportController) GetReportByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Report ID")
	if !ok {
		return
	}

	report, err := c.reportService.GetReportByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewReportResponse(report),
		Timestamp: time.Now(),
	})
}

// GetReportsByAssessment lists the reports for an assessment
// @Summary List assessment reports
// @Description Lists the reports generated for an assessment
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param assessmentId path int true "Assessment ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ReportResponse} "Reports retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid assessment ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/assessment/{assessmentId} [get]
func (c *ReportController) GetReportsByAssessment(ctx *gin.Context) {
	assessmentID, ok := parseIDParam(ctx, "assessmentId", "Assessment ID")
	if !ok {
		return
	}

	reports, err := c.reportService.GetReportsByAssessment(ctx, assessmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.ReportResponse, 0, len(reports))
	for _, report := range reports {
		responses = append(responses, *dto.NewReportResponse(report))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      responses,
		Timestamp: time.Now(),
	})
}

// MarkDelivered flags a report as delivered
// @Summary Mark report delivered
// @Description Flags a report as handed over to its audience
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Report marked delivered"
// @Failure 400 {object} dto.ErrorResponse "Invalid report ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Report not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/reports/{id}/delivered [put]
func (c *ReportController) MarkDelivered(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Report ID")
	if !ok {
		return
	}

	if err := c.reportService.MarkDelivered(ctx, id, currentUserID(ctx), ctx.ClientIP()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Report marked delivered"},
		Timestamp: time.Now(),
	})
}
