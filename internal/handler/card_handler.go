package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

type CardHandler struct {
	engine service.BoardEngine
}

func NewCardHandler(engine service.BoardEngine) *CardHandler {
	return &CardHandler{engine: engine}
}

// AddCard godoc
// @Summary      Add a card
// @Description  Appends a Pending, Medium priority card to the end of the column
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID"
// @Param        columnId path string true "Column ID"
// @Param        request body dto.CreateCardRequest true "Card"
// @Success      201 {object} response.SuccessResponse{data=dto.CreatedResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /boards/{boardId}/columns/{columnId}/cards [post]
func (h *CardHandler) AddCard(c *gin.Context) {
	boardID, columnID := c.Param("boardId"), c.Param("columnId")
	var req dto.CreateCardRequest
	if !bindJSON(c, &req) || !requireTitle(c, req.Title) {
		return
	}

	id, ok := h.engine.AddCard(c.Request.Context(), boardID, columnID, req.Title)
	if !ok {
		notFound(c, "Column", columnID)
		return
	}
	response.SendSuccess(c, http.StatusCreated, dto.CreatedResponse{ID: id})
}

// UpdateCard godoc
// @Summary      Update a card
// @Description  Merges the given fields into the card. clearDescription, clearAssignee and clearDeadline remove those fields. Id and creation time never change.
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID"
// @Param        cardId path string true "Card ID"
// @Param        request body dto.UpdateCardRequest true "Fields to change"
// @Success      200 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /boards/{boardId}/cards/{cardId} [patch]
func (h *CardHandler) UpdateCard(c *gin.Context) {
	boardID, cardID := c.Param("boardId"), c.Param("cardId")
	var req dto.UpdateCardRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.IsEmpty() {
		handleServiceError(c, response.NewValidationError("At least one field is required", ""))
		return
	}
	if req.Title != nil && !requireTitle(c, *req.Title) {
		return
	}

	patch := req.ToPatch()
	if !patch.Valid() {
		handleServiceError(c, response.NewValidationError("A field cannot be set and cleared in the same request", ""))
		return
	}

	if !h.engine.UpdateCard(c.Request.Context(), boardID, cardID, patch) {
		notFound(c, "Card", cardID)
		return
	}
	response.SendSuccess(c, http.StatusOK, nil)
}

// DeleteCard godoc
// @Summary      Delete a card
// @Tags         cards
// @Produce      json
// @Param        boardId path string true "Board ID"
// @Param        cardId path string true "Card ID"
// @Success      200 {object} response.SuccessResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /boards/{boardId}/cards/{cardId} [delete]
func (h *CardHandler) DeleteCard(c *gin.Context) {
	boardID, cardID := c.Param("boardId"), c.Param("cardId")
	if !h.engine.DeleteCard(c.Request.Context(), boardID, cardID) {
		notFound(c, "Card", cardID)
		return
	}
	response.SendSuccess(c, http.StatusOK, nil)
}

// MoveCard godoc
// @Summary      Move a card
// @Description  Moves the card from one column to a position in another (or the same) column
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID"
// @Param        cardId path string true "Card ID"
// @Param        request body dto.MoveCardRequest true "Move"
// @Success      200 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /boards/{boardId}/cards/{cardId}/move [post]
func (h *CardHandler) MoveCard(c *gin.Context) {
	boardID, cardID := c.Param("boardId"), c.Param("cardId")
	var req dto.MoveCardRequest
	if !bindJSON(c, &req) {
		return
	}

	if !h.engine.MoveCard(c.Request.Context(), boardID, req.FromColumnID, req.ToColumnID, cardID, req.TargetIndex) {
		notFound(c, "Card", cardID)
		return
	}
	response.SendSuccess(c, http.StatusOK, nil)
}
