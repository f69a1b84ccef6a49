package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

type ColumnHandler struct {
	engine service.BoardEngine
}

func NewColumnHandler(engine service.BoardEngine) *ColumnHandler {
	return &ColumnHandler{engine: engine}
}

// AddColumn godoc
// @Summary      Add a column
// @Description  Appends an empty column to the board
// @Tags         columns
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID"
// @Param        request body dto.CreateColumnRequest true "Column"
// @Success      201 {object} response.SuccessResponse{data=dto.CreatedResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /boards/{boardId}/columns [post]
func (h *ColumnHandler) AddColumn(c *gin.Context) {
	boardID := c.Param("boardId")
	var req dto.CreateColumnRequest
	if !bindJSON(c, &req) || !requireTitle(c, req.Title) {
		return
	}

	id, ok := h.engine.AddColumn(c.Request.Context(), boardID, req.Title)
	if !ok {
		notFound(c, "Board", boardID)
		return
	}
	response.SendSuccess(c, http.StatusCreated, dto.CreatedResponse{ID: id})
}

// RenameColumn godoc
// @Summary      Rename a column
// @Tags         columns
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID"
// @Param        columnId path string true "Column ID"
// @Param        request body dto.RenameColumnRequest true "Title"
// @Success      200 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /boards/{boardId}/columns/{columnId} [patch]
func (h *ColumnHandler) RenameColumn(c *gin.Context) {
	boardID, columnID := c.Param("boardId"), c.Param("columnId")
	var req dto.RenameColumnRequest
	if !bindJSON(c, &req) || !requireTitle(c, req.Title) {
		return
	}

	if !h.engine.RenameColumn(c.Request.Context(), boardID, columnID, req.Title) {
		notFound(c, "Column", columnID)
		return
	}
	response.SendSuccess(c, http.StatusOK, nil)
}

// DeleteColumn godoc
// @Summary      Delete a column
// @Description  Deletes the column and every card it holds
// @Tags         columns
// @Produce      json
// @Param        boardId path string true "Board ID"
// @Param        columnId path string true "Column ID"
// @Success      200 {object} response.SuccessResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /boards/{boardId}/columns/{columnId} [delete]
func (h *ColumnHandler) DeleteColumn(c *gin.Context) {
	boardID, columnID := c.Param("boardId"), c.Param("columnId")
	if !h.engine.DeleteColumn(c.Request.Context(), boardID, columnID) {
		notFound(c, "Column", columnID)
		return
	}
	response.SendSuccess(c, http.StatusOK, nil)
}

// MoveColumn godoc
// @Summary      Reorder columns
// @Description  Moves the column at fromIndex so that it ends up at toIndex
// @Tags         columns
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID"
// @Param        request body dto.MoveColumnRequest true "Positions"
// @Success      200 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /boards/{boardId}/columns/move [post]
func (h *ColumnHandler) MoveColumn(c *gin.Context) {
	boardID := c.Param("boardId")
	var req dto.MoveColumnRequest
	if !bindJSON(c, &req) {
		return
	}

	board, ok := h.engine.Board(boardID)
	if !ok {
		notFound(c, "Board", boardID)
		return
	}
	if *req.FromIndex >= len(board.Columns) || *req.ToIndex >= len(board.Columns) {
		handleServiceError(c, response.NewValidationError("Column index out of range", ""))
		return
	}

	if !h.engine.MoveColumn(c.Request.Context(), boardID, *req.FromIndex, *req.ToIndex) {
		// the board changed between the lookup and the move
		notFound(c, "Column", "")
		return
	}
	response.SendSuccess(c, http.StatusOK, nil)
}
