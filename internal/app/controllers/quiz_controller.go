package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tullab/tullab/internal/app/models"
	"github.com/tullab/tullab/internal/app/models/dto"
	"github.com/tullab/tullab/internal/app/services"
	"github.com/tullab/tullab/internal/middleware"
	"github.com/tullab/tullab/internal/pkg/helpers"
)

// QuizController handles quiz-related operations
type QuizController struct {
	quizService services.QuizService
}

// NewQuizController creates a new QuizController
func NewQuizController(quizService services.QuizService) *QuizController {
	return &QuizController{
		quizService: quizService,
	}
}

// CreateQuiz handles quiz creation
// @Summary Add a quiz link
// @Description Registers an external quiz link for a subject. The link must not already be on the board.
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateQuizRequest true "Quiz information"
// @Success 201 {object} dto.APIResponse{data=dto.QuizResponse} "Quiz created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 409 {object} dto.ErrorResponse "A quiz with this link already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	var req dto.CreateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	quiz := models.Quiz{
		Subject: models.Subject(req.Subject),
		Title:   req.Title,
		URL:     req.URL,
	}

	if _, err := c.quizService.CreateQuiz(ctx, &quiz); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromQuiz(&quiz)))
}

// GetQuizByID retrieves a quiz by ID
// @Summary Get quiz details
// @Description Retrieves a single quiz link
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path int true "Quiz ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.QuizResponse} "Quiz retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid quiz ID format"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes/{id} [get]
func (c *QuizController) GetQuizByID(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid quiz ID")
		errorDetail = errorDetail.WithDetails("Quiz ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	quiz, err := c.quizService.GetQuizByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromQuiz(quiz)))
}

// ListQuizzes retrieves quizzes
// @Summary List quizzes
// @Description Retrieves quiz links, newest first, optionally filtered by subject
// @Tags quizzes
// @Accept json
// @Produce json
// @Param subject query string false "Filter by subject" Enums(MATH, PHYSICS, CHEMISTRY, BIOLOGY, ENGLISH, ARABIC, ISLAMIC, COMPUTER)
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.QuizListResponse} "Quizzes retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Unknown subject"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	var subject *models.Subject
	if subjectStr := ctx.Query("subject"); subjectStr != "" {
		s := models.Subject(subjectStr)
		subject = &s
	}

	page, size := helpers.ParsePaginationParams(ctx)

	quizzes, total, err := c.quizService.ListQuizzes(ctx, subject, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.QuizResponse, 0, len(quizzes))
	for i := range quizzes {
		responses = append(responses, dto.FromQuiz(&quizzes[i]))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.QuizListResponse{
		Quizzes:    responses,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}))
}

// DeleteQuiz removes a quiz link
// @Summary Delete a quiz
// @Description Deletes a quiz link by its ID
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Quiz deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid quiz ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes/{id} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid quiz ID")
		errorDetail = errorDetail.WithDetails("Quiz ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.quizService.DeleteQuiz(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil).WithMessage("Quiz deleted successfully"))
}
