package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tullab/tullab/internal/app/models"
	"github.com/tullab/tullab/internal/app/models/dto"
)

// SubjectController exposes the fixed subject list
type SubjectController struct{}

// NewSubjectController creates a new SubjectController
func NewSubjectController() *SubjectController {
	return &SubjectController{}
}

// ListSubjects returns every subject the board knows about
// @Summary List subjects
// @Description Retrieves the fixed list of subjects exams, files and quizzes can belong to
// @Tags subjects
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Subject} "Subjects retrieved successfully"
// @Router /subjects [get]
func (c *SubjectController) ListSubjects(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(models.AllSubjects()))
}
