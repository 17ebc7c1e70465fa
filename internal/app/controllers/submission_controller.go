package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ngvthanh/classform/internal/app/models/dto"
	"github.com/ngvthanh/classform/internal/app/services"
	"github.com/ngvthanh/classform/internal/middleware"
)

// SubmissionController handles form intake requests
type SubmissionController struct {
	submissionService services.SubmissionService
}

// NewSubmissionController creates a new SubmissionController
func NewSubmissionController(submissionService services.SubmissionService) *SubmissionController {
	return &SubmissionController{
		submissionService: submissionService,
	}
}

// Submit records one form response
// @Summary Submit a form response
// @Description Records the selected student's birth date, favorite animal and image choice
// @Tags submissions
// @Accept json
// @Produce json
// @Param request body dto.SubmitRequest true "Form response"
// @Success 200 {object} dto.APIResponse{data=models.Submission} "Submission recorded"
// @Failure 400 {object} dto.APIResponse "Invalid student reference"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/submit [post]
func (c *SubmissionController) Submit(ctx *gin.Context) {
	var req dto.SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request data"))
		return
	}

	submission, err := c.submissionService.Submit(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to save submission")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(submission))
}
