package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/chwc/clinicops/internal/app/controllers"
	"github.com/chwc/clinicops/internal/app/models"
	"github.com/chwc/clinicops/internal/app/models/dto"
	"github.com/chwc/clinicops/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	eligibilityController *controllers.EligibilityController,
	onboardingController *controllers.OnboardingController,
	documentController *controllers.DocumentController,
	appointmentController *controllers.AppointmentController,
	emergencyController *controllers.EmergencyController,
	studentController *controllers.StudentController,
	scheduleController *controllers.ScheduleController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login",
			middleware.ValidateBody(func() interface{} { return &dto.LoginRequest{} }),
			authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Student record routes
		students := authenticated.Group("/students/:studentNumber")
		{
			students.GET("/eligibility", eligibilityController.Check)
			students.GET("/onboarding", eligibilityController.CheckOnboarding)

			// Proof of registration lifecycle
			students.POST("/documents", documentController.Upload)
			students.GET("/documents", documentController.ListFiles)
			students.GET("/documents/latest", documentController.GetLatest)
			students.GET("/documents/status", eligibilityController.CheckDocument)

			// Appointment history for the student view
			students.GET("/appointments", appointmentController.ListByStudent)

			// Review decision and intake review are staff actions
			studentsStaff := students.Group("")
			studentsStaff.Use(authMiddleware.RoleRequired(models.RoleStaff))
			{
				studentsStaff.POST("/documents/decision", documentController.Decide)
				studentsStaff.GET("/onboarding/record", onboardingController.Get)
			}
		}

		authenticated.POST("/onboarding", onboardingController.Create)
		authenticated.GET("/documents/:id/download", documentController.Download)

		// Appointment routes
		appointments := authenticated.Group("/appointments")
		{
			appointments.POST("", appointmentController.Create)
			appointments.GET("/student/:studentNumber", appointmentController.ListScheduleByStudent)
			appointments.PUT("/:id", appointmentController.Update)
			appointments.PUT("/:id/cancel", appointmentController.Cancel)

			appointmentsStaff := appointments.Group("")
			appointmentsStaff.Use(authMiddleware.RoleRequired(models.RoleStaff))
			{
				appointmentsStaff.GET("", appointmentController.ListAll)
			}
		}

		// Staff management surface: student accounts, the lunch schedule
		// board, and the intake overview
		staff := authenticated.Group("/staff")
		staff.Use(authMiddleware.RoleRequired(models.RoleStaff))
		{
			staff.POST("/students", studentController.Create)
			staff.GET("/students", studentController.List)
			staff.POST("/students/reset-password", studentController.ResetPassword)

			staff.POST("/schedule", scheduleController.Save)
			staff.GET("/schedule/today", scheduleController.Today)

			staff.GET("/onboarding-data", onboardingController.Data)
		}

		// Emergency reports are staff only
		emergencies := authenticated.Group("/emergencies")
		emergencies.Use(authMiddleware.RoleRequired(models.RoleStaff))
		{
			emergencies.POST("", emergencyController.Create)
			emergencies.GET("", emergencyController.List)
			emergencies.GET("/:id", emergencyController.Get)
			emergencies.PUT("/:id", emergencyController.Update)
			emergencies.DELETE("/:id", emergencyController.Delete)
		}
	}
}
