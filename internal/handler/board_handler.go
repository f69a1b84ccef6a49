package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

type BoardHandler struct {
	engine service.BoardEngine
	now    func() time.Time
}

func NewBoardHandler(engine service.BoardEngine) *BoardHandler {
	return &BoardHandler{engine: engine, now: time.Now}
}

// ListBoards godoc
// @Summary      List boards
// @Description  Returns every board in collection order with the current selection
// @Tags         boards
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.BoardListResponse}
// @Router       /boards [get]
func (h *BoardHandler) ListBoards(c *gin.Context) {
	selected, _ := h.engine.SelectedBoardID()
	resp := dto.NewBoardListResponse(h.engine.Boards(), selected, h.engine.Revision())
	response.SendSuccess(c, http.StatusOK, resp)
}

// CreateBoard godoc
// @Summary      Create a board
// @Description  Creates a board with the given columns, or the three default columns when none are given. The new board becomes selected.
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBoardRequest true "Board"
// @Success      201 {object} response.SuccessResponse{data=dto.CreatedResponse}
// @Failure      400 {object} response.ErrorResponse
// @Router       /boards [post]
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	var req dto.CreateBoardRequest
	if !bindJSON(c, &req) || !requireTitle(c, req.Title) {
		return
	}

	var (
		id string
		ok bool
	)
	if req.Columns != nil {
		id, ok = h.engine.CreateBoardWithColumns(c.Request.Context(), req.Title, req.Columns)
	} else {
		id, ok = h.engine.CreateBoard(c.Request.Context(), req.Title)
	}
	if !ok {
		handleServiceError(c, response.NewValidationError("Board could not be created", ""))
		return
	}

	response.SendSuccess(c, http.StatusCreated, dto.CreatedResponse{ID: id})
}

// GetBoard godoc
// @Summary      Get a board
// @Tags         boards
// @Produce      json
// @Param        boardId path string true "Board ID"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /boards/{boardId} [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	boardID := c.Param("boardId")
	board, ok := h.engine.Board(boardID)
	if !ok {
		notFound(c, "Board", boardID)
		return
	}

	selected, _ := h.engine.SelectedBoardID()
	response.SendSuccess(c, http.StatusOK, dto.NewBoardResponse(board, selected == boardID, h.now()))
}

// DeleteBoard godoc
// @Summary      Delete a board
// @Description  Deletes the board with all its columns and cards. Clears the selection if it pointed at the board.
// @Tags         boards
// @Produce      json
// @Param        boardId path string true "Board ID"
// @Success      200 {object} response.SuccessResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /boards/{boardId} [delete]
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	boardID := c.Param("boardId")
	if !h.engine.DeleteBoard(c.Request.Context(), boardID) {
		notFound(c, "Board", boardID)
		return
	}
	response.SendSuccess(c, http.StatusOK, nil)
}

// GetSelectedBoard godoc
// @Summary      Get the selected board id
// @Tags         boards
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.SelectedBoardResponse}
// @Router       /boards/selected [get]
func (h *BoardHandler) GetSelectedBoard(c *gin.Context) {
	var resp dto.SelectedBoardResponse
	if id, ok := h.engine.SelectedBoardID(); ok {
		resp.BoardID = &id
	}
	response.SendSuccess(c, http.StatusOK, resp)
}

// SelectBoard godoc
// @Summary      Select a board
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        request body dto.SelectBoardRequest true "Selection"
// @Success      200 {object} response.SuccessResponse{data=dto.SelectedBoardResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /boards/selected [put]
func (h *BoardHandler) SelectBoard(c *gin.Context) {
	var req dto.SelectBoardRequest
	if !bindJSON(c, &req) {
		return
	}
	if !h.engine.SelectBoard(req.BoardID) {
		notFound(c, "Board", req.BoardID)
		return
	}
	response.SendSuccess(c, http.StatusOK, dto.SelectedBoardResponse{BoardID: &req.BoardID})
}
