package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/tullab/tullab/internal/app/controllers"
	"github.com/tullab/tullab/internal/app/models"
	"github.com/tullab/tullab/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	examController *controllers.ExamController,
	studyFileController *controllers.StudyFileController,
	quizController *controllers.QuizController,
	subjectController *controllers.SubjectController,
	healthController *controllers.HealthController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Public read routes ---
	// Students browse without an account; only writes need the admin token
	v1.GET("/subjects", subjectController.ListSubjects)

	exams := v1.Group("/exams")
	{
		exams.GET("", examController.ListExams)
		exams.GET("/:id", examController.GetExamByID)
	}

	files := v1.Group("/files")
	{
		files.GET("", studyFileController.ListStudyFiles)
		files.GET("/:id", studyFileController.GetStudyFileByID)
	}

	quizzes := v1.Group("/quizzes")
	{
		quizzes.GET("", quizController.ListQuizzes)
		quizzes.GET("/:id", quizController.GetQuizByID)
	}

	// --- Admin routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	adminProtected := authenticated.Group("")
	adminProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
	{
		adminProtected.POST("/exams", examController.CreateExam)
		adminProtected.DELETE("/exams/:id", examController.DeleteExam)

		adminProtected.POST("/files", studyFileController.CreateStudyFile)
		adminProtected.DELETE("/files/:id", studyFileController.DeleteStudyFile)

		adminProtected.POST("/quizzes", quizController.CreateQuiz)
		adminProtected.DELETE("/quizzes/:id", quizController.DeleteQuiz)
	}

	// Health check endpoint (public)
	v1.GET("/health", healthController.Check)

	// Swagger routes are set up in bootstrap.go already
}
