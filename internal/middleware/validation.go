package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/chwc/clinicops/internal/app/models/dto"
)

var validate = validator.New()

// ValidateBody binds and validates a JSON request body, storing the
// validated object in the context under "validatedBody".
func ValidateBody(factory func() interface{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		obj := factory()
		if err := c.ShouldBindJSON(obj); err != nil {
			detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
				WithDetails(err.Error())
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
			return
		}

		if err := validate.Struct(obj); err != nil {
			detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
				WithDetails(err.Error())
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
			return
		}

		c.Set("validatedBody", obj)
		c.Next()
	}
}
