package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ecalderon/guidancehub/internal/app/controllers"
	"github.com/ecalderon/guidancehub/internal/app/models"
	"github.com/ecalderon/guidancehub/internal/app/models/dto"
	"github.com/ecalderon/guidancehub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
	counselorController *controllers.CounselorController,
	studentController *controllers.StudentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register/student", authController.RegisterStudent)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	// Admin dashboard routes
	admin := authenticated.Group("/admin")
	admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
	{
		admin.POST("/counselors", adminController.CreateCounselor)
		admin.GET("/counselors", adminController.ListCounselors)
		admin.PUT("/counselors/:id", adminController.UpdateCounselor)
		admin.DELETE("/counselors/:id", adminController.DeleteCounselor)
		admin.PUT("/counselors/:id/assignments", adminController.SaveAssignments)

		admin.GET("/students", adminController.ListStudents)
		admin.GET("/students/:id", adminController.GetStudent)
		admin.POST("/students/:id/remarks", adminController.AddRemark)
		admin.PUT("/students/:id/remarks/:index", adminController.EditRemark)

		admin.GET("/dashboard-stats", adminController.DashboardStats)
	}

	// Counselor dashboard routes
	counselor := authenticated.Group("/counselor")
	counselor.Use(authMiddleware.RoleRequired(string(models.RoleCounselor)))
	{
		counselor.GET("/profile", counselorController.Profile)

		counselor.GET("/students", counselorController.ListStudents)
		counselor.GET("/students/:id", counselorController.GetStudent)
		counselor.PUT("/students/:id", counselorController.UpdateStudent)
		counselor.DELETE("/students/:id", counselorController.DeleteStudent)
		counselor.POST("/students/:id/remarks", counselorController.AddRemark)
		counselor.PUT("/students/:id/send-to-admin", counselorController.SendToAdmin)

		counselor.GET("/appointments", counselorController.ListAppointments)
		counselor.PUT("/appointments/:id/status", counselorController.UpdateAppointmentStatus)
		counselor.POST("/appointments/:id/remarks", counselorController.AddAppointmentRemark)
		counselor.POST("/bulk-schedule", counselorController.BulkSchedule)
	}

	// Student dashboard routes
	student := authenticated.Group("/student")
	student.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
	{
		student.GET("/profile", studentController.Profile)
		student.GET("/assigned-counselor", studentController.AssignedCounselor)

		student.POST("/appointments", studentController.RequestAppointment)
		student.GET("/appointments", studentController.ListAppointments)
		student.GET("/schedules", studentController.ListSchedules)
		student.GET("/counseling-history", studentController.CounselingHistory)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Success: true,
			Data:    gin.H{"status": "ok"},
		})
	})
}
