package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/response"
)

// ErrorHandler answers with a 500 for errors handlers attached with c.Error and did
// not render themselves. The message is the error text, never a stack.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		}
		var perr *repository.PersistenceError
		if errors.As(err, &perr) {
			fields = append(fields, zap.String("op", perr.Op))
		}
		logger.Error("Request failed", fields...)

		if c.Writer.Written() {
			return
		}
		response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, err.Error())
	}
}
