package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ngvthanh/classform/internal/app/models"
	"github.com/ngvthanh/classform/internal/app/models/dto"
	"github.com/ngvthanh/classform/internal/app/services"
	"github.com/ngvthanh/classform/internal/middleware"
)

// AdminController handles the privileged reporting endpoints
type AdminController struct {
	adminService  services.AdminService
	reportService services.ReportService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService, reportService services.ReportService) *AdminController {
	return &AdminController{
		adminService:  adminService,
		reportService: reportService,
	}
}

// Login checks the shared secret and issues a session token
// @Summary Admin login
// @Description Verifies the admin password and returns a short-lived session token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.AdminLoginRequest true "Admin password"
// @Success 200 {object} dto.APIResponse{data=dto.AdminSessionData} "Login accepted"
// @Failure 401 {object} dto.APIResponse "Incorrect password"
// @Router /api/admin/login [post]
func (c *AdminController) Login(ctx *gin.Context) {
	var req dto.AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request data"))
		return
	}

	session, err := c.adminService.Login(req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(session))
}

// ListSubmissions returns every submission enriched with roster info
// @Summary List submissions
// @Description Retrieves all recorded submissions joined with the roster, ordered by ordinal
// @Tags admin
// @Produce json
// @Param token query string false "Session token (alternative to Authorization header)"
// @Success 200 {object} dto.APIResponse{data=[]models.SubmissionDetail} "Submissions retrieved"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/admin/submissions [get]
func (c *AdminController) ListSubmissions(ctx *gin.Context) {
	details, err := c.reportService.ListSubmissions(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch submissions")
		return
	}

	if details == nil {
		details = []models.SubmissionDetail{}
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(details))
}

// ExportCSV streams the submissions report as a CSV download
// @Summary Export submissions
// @Description Downloads all submissions as a BOM-prefixed CSV attachment
// @Tags admin
// @Produce text/csv
// @Param token query string false "Session token (alternative to Authorization header)"
// @Success 200 {string} string "CSV document"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/admin/export [get]
func (c *AdminController) ExportCSV(ctx *gin.Context) {
	document, err := c.reportService.ExportCSV(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to export submissions")
		return
	}

	ctx.Header("Content-Disposition", "attachment; filename=submissions.csv")
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(document))
}
