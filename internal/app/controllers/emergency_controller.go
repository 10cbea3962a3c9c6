package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chwc/clinicops/internal/app/models/dto"
	"github.com/chwc/clinicops/internal/app/services"
	"github.com/chwc/clinicops/internal/middleware"
)

// EmergencyController handles incident report endpoints
type EmergencyController struct {
	emergencyService services.EmergencyService
}

// NewEmergencyController creates a new EmergencyController
func NewEmergencyController(emergencyService services.EmergencyService) *EmergencyController {
	return &EmergencyController{emergencyService: emergencyService}
}

func bindRecord(ctx *gin.Context) (map[string]interface{}, bool) {
	var record map[string]interface{}
	if err := ctx.ShouldBindJSON(&record); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return nil, false
	}
	return record, true
}

func emergencyID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid emergency ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return 0, false
	}
	return id, true
}

// Create stores a new incident report
func (c *EmergencyController) Create(ctx *gin.Context) {
	record, ok := bindRecord(ctx)
	if !ok {
		return
	}

	id, err := c.emergencyService.Create(ctx.Request.Context(), record)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CreatedResponse{
		Message:  "Emergency report submitted successfully!",
		RecordID: id,
	})
}

// List returns summaries of all incident reports
func (c *EmergencyController) List(ctx *gin.Context) {
	response, err := c.emergencyService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// Get returns one full incident report
func (c *EmergencyController) Get(ctx *gin.Context) {
	id, ok := emergencyID(ctx)
	if !ok {
		return
	}

	response, err := c.emergencyService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// Update replaces an incident report's stored fields
func (c *EmergencyController) Update(ctx *gin.Context) {
	id, ok := emergencyID(ctx)
	if !ok {
		return
	}

	record, ok := bindRecord(ctx)
	if !ok {
		return
	}

	if err := c.emergencyService.Update(ctx.Request.Context(), id, record); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Emergency report updated successfully!"})
}

// Delete removes an incident report
func (c *EmergencyController) Delete(ctx *gin.Context) {
	id, ok := emergencyID(ctx)
	if !ok {
		return
	}

	if err := c.emergencyService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Emergency report deleted successfully!"})
}
