package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chwc/clinicops/internal/app/models/dto"
	"github.com/chwc/clinicops/internal/app/services"
	"github.com/chwc/clinicops/internal/middleware"
)

// AuthController handles authentication endpoints
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login authenticates a staff member or student
func (c *AuthController) Login(ctx *gin.Context) {
	req := ctx.MustGet("validatedBody").(*dto.LoginRequest)

	response, err := c.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}
