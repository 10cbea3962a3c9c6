package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chwc/clinicops/internal/app/models/dto"
	"github.com/chwc/clinicops/internal/app/services"
	"github.com/chwc/clinicops/internal/middleware"
)

// AppointmentController handles booking endpoints
type AppointmentController struct {
	appointmentService services.AppointmentService
}

// NewAppointmentController creates a new AppointmentController
func NewAppointmentController(appointmentService services.AppointmentService) *AppointmentController {
	return &AppointmentController{appointmentService: appointmentService}
}

// Create books a new appointment
func (c *AppointmentController) Create(ctx *gin.Context) {
	var req dto.CreateAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	id, err := c.appointmentService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AppointmentCreatedResponse{
		Message:       "Appointment saved successfully!",
		AppointmentID: id,
	})
}

// ListByStudent returns a student's bookings, most recently made first
func (c *AppointmentController) ListByStudent(ctx *gin.Context) {
	studentNumber := ctx.Param("studentNumber")

	response, err := c.appointmentService.ListByStudent(ctx.Request.Context(), studentNumber)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ListScheduleByStudent returns a student's bookings in schedule order
func (c *AppointmentController) ListScheduleByStudent(ctx *gin.Context) {
	studentNumber := ctx.Param("studentNumber")

	response, err := c.appointmentService.ListScheduleByStudent(ctx.Request.Context(), studentNumber)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ListAll returns every booking, for the staff schedule view
func (c *AppointmentController) ListAll(ctx *gin.Context) {
	response, err := c.appointmentService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// Update reschedules a booking
func (c *AppointmentController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid appointment ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	if err := c.appointmentService.Update(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Appointment updated successfully!"})
}

// Cancel marks a booking cancelled
func (c *AppointmentController) Cancel(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid appointment ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	if err := c.appointmentService.Cancel(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Appointment cancelled successfully!"})
}
