package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ngvthanh/classform/internal/app/controllers"
	"github.com/ngvthanh/classform/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	submissionController *controllers.SubmissionController,
	adminController *controllers.AdminController,
	adminMiddleware *middleware.AdminMiddleware,
) {
	api := router.Group("/api")

	// --- Public intake routes ---
	api.GET("/students", studentController.ListStudents)
	api.POST("/submit", submissionController.Submit)

	// --- Admin routes ---
	admin := api.Group("/admin")
	{
		admin.POST("/login", adminController.Login)

		// Every privileged read independently re-validates the credential
		protected := admin.Group("")
		protected.Use(adminMiddleware.RequireAdmin())
		{
			protected.GET("/submissions", adminController.ListSubmissions)
			protected.GET("/export", adminController.ExportCSV)
		}
	}
}
