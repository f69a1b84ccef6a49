package dto

import (
	"time"

	"kanban-board-api/internal/domain"
)

// CreateBoardRequest represents the request to create a board
// @Description When columns is omitted the board starts with "To Do", "In Progress" and "Done"
type CreateBoardRequest struct {
	Title   string   `json:"title" binding:"required,max=200" example:"Sprint 12"`
	Columns []string `json:"columns,omitempty" binding:"omitempty,dive,required,max=100" example:"Backlog,Doing,Done"`
}

// SelectBoardRequest represents the request to change the selected board
type SelectBoardRequest struct {
	BoardID string `json:"boardId" binding:"required" example:"3f6c2a9e-7d41-4a8b-9c0e-1b2d3e4f5a6b"`
}

// CreateColumnRequest represents the request to add a column
type CreateColumnRequest struct {
	Title string `json:"title" binding:"required,max=100" example:"Review"`
}

// RenameColumnRequest represents the request to rename a column
type RenameColumnRequest struct {
	Title string `json:"title" binding:"required,max=100" example:"QA"`
}

// MoveColumnRequest represents a positional column move
type MoveColumnRequest struct {
	FromIndex *int `json:"fromIndex" binding:"required,min=0" example:"0"`
	ToIndex   *int `json:"toIndex" binding:"required,min=0" example:"2"`
}

// ColumnResponse represents a column in display order
type ColumnResponse struct {
	ID      string   `json:"id" example:"a1b2c3"`
	Title   string   `json:"title" example:"To Do"`
	CardIDs []string `json:"cardIds"`
}

// BoardResponse represents a board with its columns and cards
type BoardResponse struct {
	ID       string                  `json:"id" example:"3f6c2a9e-7d41-4a8b-9c0e-1b2d3e4f5a6b"`
	Title    string                  `json:"title" example:"Sprint 12"`
	Columns  []ColumnResponse        `json:"columns"`
	Cards    map[string]CardResponse `json:"cards"`
	Selected bool                    `json:"selected"`
}

// BoardSummaryResponse represents one entry of the board list
type BoardSummaryResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	ColumnCount int    `json:"columnCount"`
	CardCount   int    `json:"cardCount"`
	Selected    bool   `json:"selected"`
}

// BoardListResponse represents all boards plus the engine revision they were read at
type BoardListResponse struct {
	Boards          []BoardSummaryResponse `json:"boards"`
	SelectedBoardID *string                `json:"selectedBoardId"`
	Revision        uint64                 `json:"revision"`
}

// SelectedBoardResponse represents the current selection
type SelectedBoardResponse struct {
	BoardID *string `json:"boardId"`
}

// CreatedResponse carries the id allocated by a create operation
type CreatedResponse struct {
	ID string `json:"id" example:"3f6c2a9e-7d41-4a8b-9c0e-1b2d3e4f5a6b"`
}

// NewBoardResponse converts a board snapshot for the API
func NewBoardResponse(b domain.Board, selected bool, now time.Time) BoardResponse {
	columns := make([]ColumnResponse, len(b.Columns))
	for i, col := range b.Columns {
		ids := col.CardIDs
		if ids == nil {
			ids = []string{}
		}
		columns[i] = ColumnResponse{ID: col.ID, Title: col.Title, CardIDs: ids}
	}

	cards := make(map[string]CardResponse, len(b.Cards))
	for id, card := range b.Cards {
		cards[id] = NewCardResponse(card, now)
	}

	return BoardResponse{
		ID:       b.ID,
		Title:    b.Title,
		Columns:  columns,
		Cards:    cards,
		Selected: selected,
	}
}

// NewBoardListResponse summarizes boards in collection order
func NewBoardListResponse(boards []domain.Board, selectedID string, revision uint64) BoardListResponse {
	summaries := make([]BoardSummaryResponse, len(boards))
	for i, b := range boards {
		summaries[i] = BoardSummaryResponse{
			ID:          b.ID,
			Title:       b.Title,
			ColumnCount: len(b.Columns),
			CardCount:   b.CardCount(),
			Selected:    b.ID == selectedID,
		}
	}

	resp := BoardListResponse{Boards: summaries, Revision: revision}
	if selectedID != "" {
		resp.SelectedBoardID = &selectedID
	}
	return resp
}
