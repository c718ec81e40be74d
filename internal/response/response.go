package response

import (
	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/validation"
)

// ErrorResponse is the body of every non-validation error
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

// ValidationErrorResponse is the body returned when a payload fails validation.
// Errors holds every message joined into one string; Details keeps them per field.
type ValidationErrorResponse struct {
	Errors  string                  `json:"errors"`
	Details []validation.FieldError `json:"details"`
}

// MessageResponse is a plain informational body
type MessageResponse struct {
	Message string `json:"message"`
}

// SendSuccess writes data as the response body
func SendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// SendError writes an ErrorResponse
func SendError(c *gin.Context, statusCode int, code, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
	})
}

// SendValidationError writes a ValidationErrorResponse
func SendValidationError(c *gin.Context, statusCode int, failure *validation.Failure) {
	c.AbortWithStatusJSON(statusCode, ValidationErrorResponse{
		Errors:  failure.Error(),
		Details: failure.Errors,
	})
}
