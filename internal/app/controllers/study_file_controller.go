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

// StudyFileController handles study file operations
type StudyFileController struct {
	studyFileService services.StudyFileService
}

// NewStudyFileController creates a new StudyFileController
func NewStudyFileController(studyFileService services.StudyFileService) *StudyFileController {
	return &StudyFileController{
		studyFileService: studyFileService,
	}
}

// CreateStudyFile handles study file uploads
// @Summary Upload a study file
// @Description Uploads a document (notes, worksheets, past papers) for a subject
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param subject formData string true "Subject" Enums(MATH, PHYSICS, CHEMISTRY, BIOLOGY, ENGLISH, ARABIC, ISLAMIC, COMPUTER)
// @Param title formData string true "Display title"
// @Param file formData file true "The document itself"
// @Success 201 {object} dto.APIResponse{data=dto.StudyFileResponse} "File uploaded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /files [post]
func (c *StudyFileController) CreateStudyFile(ctx *gin.Context) {
	subject := models.Subject(ctx.PostForm("subject"))
	title := ctx.PostForm("title")

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid upload")
		errorDetail = errorDetail.WithField("file").WithDetails("A file is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	file, err := c.studyFileService.CreateStudyFile(ctx, subject, title, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromStudyFile(file)))
}

// GetStudyFileByID retrieves a study file by ID
// @Summary Get study file details
// @Description Retrieves metadata for a single study file
// @Tags files
// @Accept json
// @Produce json
// @Param id path int true "File ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.StudyFileResponse} "File retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid file ID format"
// @Failure 404 {object} dto.ErrorResponse "File not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /files/{id} [get]
func (c *StudyFileController) GetStudyFileByID(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid file ID")
		errorDetail = errorDetail.WithDetails("File ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	file, err := c.studyFileService.GetStudyFileByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromStudyFile(file)))
}

// ListStudyFiles retrieves study files
// @Summary List study files
// @Description Retrieves study files, newest first, optionally filtered by subject
// @Tags files
// @Accept json
// @Produce json
// @Param subject query string false "Filter by subject" Enums(MATH, PHYSICS, CHEMISTRY, BIOLOGY, ENGLISH, ARABIC, ISLAMIC, COMPUTER)
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.StudyFileListResponse} "Files retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Unknown subject"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /files [get]
func (c *StudyFileController) ListStudyFiles(ctx *gin.Context) {
	var subject *models.Subject
	if subjectStr := ctx.Query("subject"); subjectStr != "" {
		s := models.Subject(subjectStr)
		subject = &s
	}

	page, size := helpers.ParsePaginationParams(ctx)

	files, total, err := c.studyFileService.ListStudyFiles(ctx, subject, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.StudyFileResponse, 0, len(files))
	for i := range files {
		responses = append(responses, dto.FromStudyFile(&files[i]))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.StudyFileListResponse{
		Files:      responses,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}))
}

// DeleteStudyFile removes a study file
// @Summary Delete a study file
// @Description Deletes the file record and the stored document
// @Tags files
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "File ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "File deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid file ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "File not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /files/{id} [delete]
func (c *StudyFileController) DeleteStudyFile(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid file ID")
		errorDetail = errorDetail.WithDetails("File ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.studyFileService.DeleteStudyFile(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil).WithMessage("Study file deleted successfully"))
}
