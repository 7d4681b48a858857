package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shiningstar/learninglens/internal/app/models/dto"
	"github.com/shiningstar/learninglens/internal/app/services"
	"github.com/shiningstar/learninglens/internal/middleware"
)

// AssessmentController handles assessment lifecycle operations
type AssessmentController struct {
	assessmentService services.AssessmentService
}

// NewAssessmentController creates a new AssessmentController
func NewAssessmentController(assessmentService services.AssessmentService) *AssessmentController {
	return &AssessmentController{
		assessmentService: assessmentService,
	}
}

// CreateAssessment opens a new assessment for a student
// @Summary Create an assessment
// @Description Opens a new pending assessment for the given student
// @Tags assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Success 201 {object} dto.APIResponse{data=models.Assessment} "Assessment created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/assessments/create/{studentId} [post]
func (c *AssessmentController) CreateAssessment(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId", "Student ID")
	if !ok {
		return
	}

	assessment, err := c.assessmentService.CreateAssessment(ctx, studentID, currentUserID(ctx), ctx.ClientIP())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      assessment,
		Timestamp: time.Now(),
	})
}

// GetAssessmentByID retrieves an assessment by ID
// @Summary Get assessment by ID
// @Description Retrieves an assessment with its responses and analysis results
// @Tags assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assessment ID"
// @Success 200 {object} dto.APIResponse{data=models.Assessment} "Assessment retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid assessment ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/assessments/{id} [get]
func (c *AssessmentController) GetAssessmentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Assessment ID")
	if !ok {
		return
	}

	assessment, err := c.assessmentService.GetAssessmentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      assessment,
		Timestamp: time.Now(),
	})
}

// GetAssessments lists assessments
// @Summary List assessments
// @Description Lists assessments, optionally filtered by student
// @Tags assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId query int false "Filter by student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Assessment} "Assessments retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/assessments [get]
func (c *AssessmentController) GetAssessments(ctx *gin.Context) {
	var studentID int64
	if raw := ctx.Query("studentId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
			errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		studentID = parsed
	}

	assessments, err := c.assessmentService.GetAssessments(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      assessments,
		Timestamp: time.Now(),
	})
}

// DeleteAssessment deletes an assessment
// @Summary Delete an assessment
// @Description Deletes an assessment along with its responses and reports
// @Tags assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assessment ID"
// @Success 204 "Assessment deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid assessment ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/assessments/{id} [delete]
func (c *AssessmentController) DeleteAssessment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Assessment ID")
	if !ok {
		return
	}

	if err := c.assessmentService.DeleteAssessment(ctx, id, currentUserID(ctx), ctx.ClientIP()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetQuestionnaire returns the question set for an assessment
// @Summary Get the questionnaire
// @Description Returns the age-banded question set and the parent question set for an assessment. Fetching the questionnaire for a pending assessment starts it.
// @Tags assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param assessmentId path int true "Assessment ID"
// @Success 200 {object} dto.APIResponse{data=dto.QuestionnaireResponse} "Questionnaire retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid assessment ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questionnaire/{assessmentId} [get]
func (c *AssessmentController) GetQuestionnaire(ctx *gin.Context) {
	assessmentID, ok := parseIDParam(ctx, "assessmentId", "Assessment ID")
	if !ok {
		return
	}

	questionnaire, err := c.assessmentService.GetQuestionnaire(ctx, assessmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      questionnaire,
		Timestamp: time.Now(),
	})
}

// SubmitQuestionnaire stores one respondent's answers
// @Summary Submit questionnaire responses
// @Description Stores the responses of one respondent role. The assessment becomes completed once student, parent and teacher have all answered.
// @Tags assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitQuestionnaireRequest true "Responses"
// @Success 200 {object} dto.APIResponse{data=models.Assessment} "Responses stored successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 409 {object} dto.ErrorResponse "Responses already submitted for this role"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/submit-questionnaire [post]
func (c *AssessmentController) SubmitQuestionnaire(ctx *gin.Context) {
	var req dto.SubmitQuestionnaireRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	assessment, err := c.assessmentService.SubmitResponses(ctx, &req, currentUserID(ctx), ctx.ClientIP())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      assessment,
		Timestamp: time.Now(),
	})
}

// AnalyzeAssessment runs the diagnostic engine
// @Summary Analyze an assessment
// @Description Runs the diagnostic engine over a completed assessment and persists the learning profile. Re-analyzing an analyzed assessment returns the stored profile.
// @Tags assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AnalyzeAssessmentRequest true "Assessment to analyze"
// @Success 200 {object} dto.APIResponse{data=report.Profile} "Assessment analyzed successfully"
// @Failure 400 {object} dto.ErrorResponse "Assessment is not completed"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/analyze-assessment [post]
func (c *AssessmentController) AnalyzeAssessment(ctx *gin.Context) {
	var req dto.AnalyzeAssessmentRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	profile, err := c.assessmentService.Analyze(ctx, req.AssessmentID, currentUserID(ctx), ctx.ClientIP())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      profile,
		Timestamp: time.Now(),
	})
}
