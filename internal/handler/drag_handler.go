package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

// DropResolver classifies and applies a completed gesture
type DropResolver interface {
	Resolve(ctx context.Context, board domain.Board, draggedID string, dropTargetID *string) (service.DropTarget, bool)
}

type DragHandler struct {
	engine   service.BoardEngine
	resolver DropResolver
}

func NewDragHandler(engine service.BoardEngine, resolver DropResolver) *DragHandler {
	return &DragHandler{engine: engine, resolver: resolver}
}

// Drop godoc
// @Summary      Resolve a drag gesture
// @Description  Classifies the dragged and drop-target ids against the board and applies the column reorder or card move. A gesture that maps to no move is not an error: it answers 200 with applied=false. Moves are applied by entity id, so a gesture computed against an older board moves the same column or card, or is not applied.
// @Tags         drag
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID"
// @Param        request body dto.DragRequest true "Gesture"
// @Success      200 {object} response.SuccessResponse{data=dto.DragResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /boards/{boardId}/drag [post]
func (h *DragHandler) Drop(c *gin.Context) {
	boardID := c.Param("boardId")
	var req dto.DragRequest
	if !bindJSON(c, &req) {
		return
	}

	board, ok := h.engine.Board(boardID)
	if !ok {
		notFound(c, "Board", boardID)
		return
	}

	target, applied := h.resolver.Resolve(c.Request.Context(), board, req.DraggedID, req.DropTargetID)
	response.SendSuccess(c, http.StatusOK, newDragResponse(target, applied))
}

func newDragResponse(target service.DropTarget, applied bool) dto.DragResponse {
	resp := dto.DragResponse{Applied: applied, Kind: dto.DragKindNone}
	switch t := target.(type) {
	case service.ColumnTarget:
		resp.Kind = dto.DragKindColumn
		resp.ItemID = t.ColumnID
		index := t.ToIndex
		resp.Index = &index
	case service.CardTarget:
		resp.Kind = dto.DragKindCard
		resp.ItemID = t.CardID
		resp.ColumnID = t.ToColumnID
		index := t.Index
		resp.Index = &index
	case service.Unresolved:
		resp.Reason = string(t.Reason)
	}
	return resp
}
