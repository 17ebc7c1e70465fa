package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ngvthanh/classform/internal/app/models"
	"github.com/ngvthanh/classform/internal/app/models/dto"
	"github.com/ngvthanh/classform/internal/app/services"
	"github.com/ngvthanh/classform/internal/middleware"
)

// StudentController handles roster directory requests
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// ListStudents returns the roster for the name-picker step
// @Summary List students
// @Description Retrieves the seeded roster ordered by roll-call ordinal
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Roster retrieved successfully"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch students")
		return
	}

	if students == nil {
		students = []models.Student{}
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(students))
}
