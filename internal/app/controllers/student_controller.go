package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shiningstar/learninglens/internal/app/models"
	"github.com/shiningstar/learninglens/internal/app/models/dto"
	"github.com/shiningstar/learninglens/internal/app/services"
	"github.com/shiningstar/learninglens/internal/middleware"
	"github.com/shiningstar/learninglens/internal/pkg/apperrors"
)

// StudentController handles student profile and access grant operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// CreateStudent handles student creation
// @Summary Create a new student
// @Description Registers a new student profile. At least one parent contact is required.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	student, err := c.studentService.CreateStudent(ctx, &req, currentUserID(ctx), ctx.ClientIP())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// GetStudentByID retrieves a student by ID
// @Summary Get student by ID
// @Description Retrieves a student profile. Non-admin users need an access grant for the student.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "No access to this student"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Student ID")
	if !ok {
		return
	}

	allowed, err := c.studentService.CanAccessStudent(ctx, currentUserID(ctx), currentRole(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !allowed {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	student, err := c.studentService.GetStudentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// GetStudents lists students visible to the caller
// @Summary List students
// @Description Lists all students for admins, or the students the caller has access to otherwise
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetStudents(ctx *gin.Context) {
	var (
		students []*models.Student
		err      error
	)

	if currentRole(ctx) == string(models.RoleAdmin) {
		students, err = c.studentService.GetStudents(ctx)
	} else {
		students, err = c.studentService.GetStudentsForUser(ctx, currentUserID(ctx))
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      students,
		Timestamp: time.Now(),
	})
}

// UpdateStudent updates an existing student
// @Summary Update a student
// @Description Applies partial changes to a student profile
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Updated student information"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Student ID")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	student, err := c.studentService.UpdateStudent(ctx, id, &req, currentUserID(ctx), ctx.ClientIP())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// DeleteStudent deletes a student
// @Summary Delete a student
// @Description Deletes a student profile and its assessments
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 204 "Student deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Student ID")
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx, id, currentUserID(ctx), ctx.ClientIP()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GrantAccess gives a user read access to a student
// @Summary Grant student access
// @Description Grants a user read access to a student profile
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GrantAccessRequest true "Access grant"
// @Success 201 {object} dto.APIResponse{data=models.StudentAccess} "Access granted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "User or student not found"
// @Failure 409 {object} dto.ErrorResponse "Access already granted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students/access [post]
func (c *StudentController) GrantAccess(ctx *gin.Context) {
	var req dto.GrantAccessRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	access, err := c.studentService.GrantAccess(ctx, &req, currentUserID(ctx), ctx.ClientIP())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      access,
		Timestamp: time.Now(),
	})
}

// RevokeAccess removes a user's access to a student
// @Summary Revoke student access
// @Description Revokes a user's read access to a student profile
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param studentId path int true "Student ID"
// @Success 204 "Access revoked successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Grant not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students/access/{userId}/{studentId} [delete]
func (c *StudentController) RevokeAccess(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId", "User ID")
	if !ok {
		return
	}
	studentID, ok := parseIDParam(ctx, "studentId", "Student ID")
	if !ok {
		return
	}

	if err := c.studentService.RevokeAccess(ctx, userID, studentID, currentUserID(ctx), ctx.ClientIP()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
