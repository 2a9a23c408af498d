package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tullab/tullab/internal/app/models"
	"github.com/tullab/tullab/internal/app/models/dto"
	"github.com/tullab/tullab/internal/app/services"
	"github.com/tullab/tullab/internal/middleware"
)

// ExamController handles exam-related operations
type ExamController struct {
	examService services.ExamService
	nowFunc     func() time.Time
}

// NewExamController creates a new ExamController
func NewExamController(examService services.ExamService) *ExamController {
	return &ExamController{
		examService: examService,
		nowFunc:     time.Now,
	}
}

// CreateExam handles exam creation
// @Summary Create a new exam
// @Description Adds an exam to the board with its subject, date and topic list
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateExamRequest true "Exam information"
// @Success 201 {object} dto.APIResponse{data=dto.ExamResponse} "Exam created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req dto.CreateExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	exam := models.Exam{
		Subject: models.Subject(req.Subject),
		Date:    req.Date,
		Topics:  req.Topics,
	}

	if _, err := c.examService.CreateExam(ctx, &exam); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromExam(&exam, c.nowFunc())))
}

// GetExamByID retrieves an exam by ID
// @Summary Get exam details
// @Description Retrieves a single exam with its remaining-days countdown
// @Tags exams
// @Accept json
// @Produce json
// @Param id path int true "Exam ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ExamResponse} "Exam retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid exam ID format"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams/{id} [get]
func (c *ExamController) GetExamByID(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid exam ID")
		errorDetail = errorDetail.WithDetails("Exam ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	exam, err := c.examService.GetExamByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromExam(exam, c.nowFunc())))
}

// ListExams retrieves all exams
// @Summary List exams
// @Description Retrieves every exam on the board, soonest first, optionally filtered by subject
// @Tags exams
// @Accept json
// @Produce json
// @Param subject query string false "Filter by subject" Enums(MATH, PHYSICS, CHEMISTRY, BIOLOGY, ENGLISH, ARABIC, ISLAMIC, COMPUTER)
// @Success 200 {object} dto.APIResponse{data=dto.ExamListResponse} "Exams retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Unknown subject"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams [get]
func (c *ExamController) ListExams(ctx *gin.Context) {
	var subject *models.Subject
	if subjectStr := ctx.Query("subject"); subjectStr != "" {
		s := models.Subject(subjectStr)
		subject = &s
	}

	exams, err := c.examService.ListExams(ctx, subject)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	now := c.nowFunc()
	responses := make([]dto.ExamResponse, 0, len(exams))
	for i := range exams {
		responses = append(responses, dto.FromExam(&exams[i], now))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ExamListResponse{Exams: responses}))
}

// DeleteExam removes an exam from the board
// @Summary Delete an exam
// @Description Deletes an exam by its ID
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exam ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Exam deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid exam ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams/{id} [delete]
func (c *ExamController) DeleteExam(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid exam ID")
		errorDetail = errorDetail.WithDetails("Exam ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.examService.DeleteExam(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil).WithMessage("Exam deleted successfully"))
}
