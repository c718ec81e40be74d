package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"kanban-board-api/internal/database"
)

type HealthHandler struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewHealthHandler(db *gorm.DB, redis *redis.Client) *HealthHandler {
	return &HealthHandler{
		db:    db,
		redis: redis,
	}
}

// Health is the liveness endpoint
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "kanban-board-api",
	})
}

// Ready reports whether the store (and Redis, when configured) answer a ping
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	connections := make(map[string]string)
	hasError := false

	if err := database.Ping(ctx, h.db); err != nil {
		connections["database"] = "error: " + err.Error()
		hasError = true
	} else {
		connections["database"] = "connected"
	}

	if h.redis == nil {
		connections["redis"] = "not configured"
	} else if err := h.redis.Ping(ctx).Err(); err != nil {
		connections["redis"] = "error: " + err.Error()
		hasError = true
	} else {
		connections["redis"] = "connected"
	}

	status := http.StatusOK
	statusText := "ready"
	if hasError {
		status = http.StatusServiceUnavailable
		statusText = "not ready"
	}

	c.JSON(status, gin.H{
		"status":      statusText,
		"connections": connections,
	})
}
