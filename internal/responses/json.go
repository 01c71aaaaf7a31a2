package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/validation"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Message string                  `json:"message"`
	Errors  []validation.FieldError `json:"errors"`
}

// Error sends a generic failure body. Internal causes are logged by the
// caller, never echoed to the client.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{Message: message})
}

// ValidationFailed sends a 400 with the per-field error collection.
func ValidationFailed(c *gin.Context, message string, errs []validation.FieldError) {
	c.JSON(http.StatusBadRequest, ValidationErrorResponse{Message: message, Errors: errs})
}
