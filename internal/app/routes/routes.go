package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shiningstar/learninglens/internal/app/controllers"
	"github.com/shiningstar/learninglens/internal/app/models"
	"github.com/shiningstar/learninglens/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	studentController *controllers.StudentController,
	assessmentController *controllers.AssessmentController,
	reportController *controllers.ReportController,
	logController *controllers.LogController,
	healthController *controllers.HealthController,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Health check endpoint (public)
	v1.GET("/health", healthController.Health)

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", rateLimiter.Limit("login"), authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Student profiles readable by admins and users with an access grant
		authenticated.GET("/students", studentController.GetStudents)
		authenticated.GET("/students/:id", studentController.GetStudentByID)

		// Assessment workflow
		authenticated.GET("/questionnaire/:assessmentId", assessmentController.GetQuestionnaire)
		authenticated.POST("/api/submit-questionnaire", assessmentController.SubmitQuestionnaire)
		authenticated.POST("/api/analyze-assessment", assessmentController.AnalyzeAssessment)
		authenticated.POST("/api/generate-reports", reportController.GenerateReports)

		// Generated reports
		authenticated.GET("/reports/:id", reportController.GetReportByID)
		authenticated.GET("/reports/assessment/:assessmentId", reportController.GetReportsByAssessment)

		// --- Admin routes ---
		admin := authenticated.Group("")
		admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			admin.GET("/metrics", healthController.Metrics)

			users := admin.Group("/admin/users")
			{
				users.POST("", userController.CreateUser)
				users.GET("", userController.GetAllUsers)
				users.GET("/:id", userController.GetUserByID)
				users.PUT("/:id", userController.UpdateUser)
				users.DELETE("/:id", userController.DeleteUser)
			}

			students := admin.Group("/admin/students")
			{
				students.POST("", studentController.CreateStudent)
				students.PUT("/:id", studentController.UpdateStudent)
				students.DELETE("/:id", studentController.DeleteStudent)
				students.POST("/access", studentController.GrantAccess)
				students.DELETE("/access/:userId/:studentId", studentController.RevokeAccess)
			}

			assessments := admin.Group("/admin/assessments")
			{
				assessments.POST("/create/:studentId", assessmentController.CreateAssessment)
				assessments.GET("", assessmentController.GetAssessments)
				assessments.GET("/:id", assessmentController.GetAssessmentByID)
				assessments.DELETE("/:id", assessmentController.DeleteAssessment)
			}

			admin.PUT("/admin/reports/:id/delivered", reportController.MarkDelivered)
			admin.GET("/admin/logs", logController.GetLogs)
		}
	}

	// Swagger routes are set up in bootstrap.go already
}
