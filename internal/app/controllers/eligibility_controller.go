package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chwc/clinicops/internal/app/models/dto"
	"github.com/chwc/clinicops/internal/app/services"
	"github.com/chwc/clinicops/internal/middleware"
)

// EligibilityController exposes the booking gate checks
type EligibilityController struct {
	eligibilityService services.EligibilityService
}

// NewEligibilityController creates a new EligibilityController
func NewEligibilityController(eligibilityService services.EligibilityService) *EligibilityController {
	return &EligibilityController{eligibilityService: eligibilityService}
}

// Check returns the full booking gate state for a student
func (c *EligibilityController) Check(ctx *gin.Context) {
	studentNumber := ctx.Param("studentNumber")
	if studentNumber == "" {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Student number is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	response, err := c.eligibilityService.Check(ctx.Request.Context(), studentNumber)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// CheckOnboarding answers whether the student has completed onboarding
func (c *EligibilityController) CheckOnboarding(ctx *gin.Context) {
	studentNumber := ctx.Param("studentNumber")

	response, err := c.eligibilityService.CheckOnboarding(ctx.Request.Context(), studentNumber)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// CheckDocument answers whether the student has an uploaded and approved document
func (c *EligibilityController) CheckDocument(ctx *gin.Context) {
	studentNumber := ctx.Param("studentNumber")

	response, err := c.eligibilityService.CheckDocument(ctx.Request.Context(), studentNumber)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}
