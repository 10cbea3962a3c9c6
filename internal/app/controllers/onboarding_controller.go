package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chwc/clinicops/internal/app/models/dto"
	"github.com/chwc/clinicops/internal/app/services"
	"github.com/chwc/clinicops/internal/middleware"
)

// OnboardingController handles student intake endpoints
type OnboardingController struct {
	onboardingService services.OnboardingService
}

// NewOnboardingController creates a new OnboardingController
func NewOnboardingController(onboardingService services.OnboardingService) *OnboardingController {
	return &OnboardingController{onboardingService: onboardingService}
}

// Create stores a completed intake form. The form binds as a plain map,
// only dictionary fields reach the database.
func (c *OnboardingController) Create(ctx *gin.Context) {
	var record map[string]interface{}
	if err := ctx.ShouldBindJSON(&record); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	id, err := c.onboardingService.Create(ctx.Request.Context(), record)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CreatedResponse{
		Message:  "Form submitted successfully!",
		RecordID: id,
	})
}

// Get returns a student's full intake record
func (c *OnboardingController) Get(ctx *gin.Context) {
	studentNumber := ctx.Param("studentNumber")

	record, err := c.onboardingService.Get(ctx.Request.Context(), studentNumber)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, record)
}

// Data returns the intake overview rows for the staff dashboard,
// optionally bounded by from and to date query parameters.
func (c *OnboardingController) Data(ctx *gin.Context) {
	from := ctx.Query("from")
	to := ctx.Query("to")

	resp, err := c.onboardingService.ListSummaries(ctx.Request.Context(), from, to)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
