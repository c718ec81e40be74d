package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

type BoardHandler struct {
	boardService service.BoardService
}

func NewBoardHandler(boardService service.BoardService) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
	}
}

// CreateBoard godoc
// @Summary      Create a board
// @Description  Validates the payload, reporting every violated rule at once, then stores the board with an empty column order
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBoardRequest true "Board to create"
// @Success      201 {object} dto.CreateBoardResponse
// @Failure      400 {object} response.ErrorResponse "Malformed JSON"
// @Failure      422 {object} response.ValidationErrorResponse "Validation failed"
// @Failure      500 {object} response.ErrorResponse
// @Router       /boards [post]
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	var raw map[string]any
	if err := json.NewDecoder(c.Request.Body).Decode(&raw); err != nil {
		msg := "Invalid request body"
		if errors.Is(err, io.EOF) {
			msg = "Request body is required"
		}
		response.SendError(c, http.StatusBadRequest, response.ErrCodeBadRequest, msg)
		return
	}
	if raw == nil {
		raw = map[string]any{}
	}

	id, err := h.boardService.CreateNew(c.Request.Context(), raw)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, dto.CreateBoardResponse{InsertedID: id})
}

// GetAllBoards godoc
// @Summary      List boards
// @Description  Returns every stored board, including destroyed ones
// @Tags         boards
// @Produce      json
// @Success      200 {array} dto.BoardResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /boards [get]
func (h *BoardHandler) GetAllBoards(c *gin.Context) {
	boards, err := h.boardService.GetAllBoards(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.NewBoardResponses(boards))
}

// GetBoardDetail godoc
// @Summary      Get board detail
// @Description  Returns the board with all of its columns and a flat list of its cards.
// @Description  An unknown or destroyed board yields an empty object with status 200.
// @Tags         boards
// @Produce      json
// @Param        id path string true "Board ID (UUID)"
// @Success      200 {object} dto.BoardDetailResponse
// @Failure      400 {object} response.ErrorResponse "Malformed board id"
// @Failure      500 {object} response.ErrorResponse
// @Router       /boards/{id} [get]
func (h *BoardHandler) GetBoardDetail(c *gin.Context) {
	detail, found, err := h.boardService.GetBoardDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if !found {
		response.SendSuccess(c, http.StatusOK, gin.H{})
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.NewBoardDetailResponse(detail))
}

// UpdateBoard godoc
// @Summary      Update a board
// @Tags         boards
// @Produce      json
// @Param        id path string true "Board ID (UUID)"
// @Failure      501 {object} response.ErrorResponse
// @Router       /boards/{id} [put]
func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	response.SendError(c, http.StatusNotImplemented, response.ErrCodeNotImplemented, "Updating boards is not supported yet")
}

// DeleteBoard godoc
// @Summary      Delete a board
// @Tags         boards
// @Produce      json
// @Param        id path string true "Board ID (UUID)"
// @Failure      501 {object} response.ErrorResponse
// @Router       /boards/{id} [delete]
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	response.SendError(c, http.StatusNotImplemented, response.ErrCodeNotImplemented, "Deleting boards is not supported yet")
}
