package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
)

// StatusMessage is what the v1 status endpoint answers with
const StatusMessage = "API v1 is ready!"

// GetStatus godoc
// @Summary      API status
// @Tags         status
// @Produce      json
// @Success      200 {object} dto.StatusResponse
// @Router       /status [get]
func GetStatus(c *gin.Context) {
	response.SendSuccess(c, http.StatusOK, dto.StatusResponse{Message: StatusMessage})
}
