package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/validation"
)

// handleServiceError maps service layer errors to HTTP responses. Anything it does
// not recognize is attached to the context for middleware.ErrorHandler.
func handleServiceError(c *gin.Context, err error) {
	var failure *validation.Failure
	if errors.As(err, &failure) {
		response.SendValidationError(c, http.StatusUnprocessableEntity, failure)
		return
	}

	if errors.Is(err, repository.ErrInvalidIdentifier) {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeInvalidID, err.Error())
		return
	}

	var appErr *response.AppError
	if errors.As(err, &appErr) {
		response.SendError(c, mapErrorCodeToHTTPStatus(appErr.Code), appErr.Code, appErr.Message)
		return
	}

	_ = c.Error(err)
	c.Abort()
}

// mapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(code string) int {
	switch code {
	case response.ErrCodeNotFound:
		return http.StatusNotFound
	case response.ErrCodeValidation:
		return http.StatusUnprocessableEntity
	case response.ErrCodeInvalidID, response.ErrCodeBadRequest:
		return http.StatusBadRequest
	case response.ErrCodeNotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
