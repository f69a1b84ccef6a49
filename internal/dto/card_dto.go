package dto

import (
	"time"

	"kanban-board-api/internal/domain"
)

// CreateCardRequest represents the request to add a card to a column
type CreateCardRequest struct {
	Title string `json:"title" binding:"required,max=200" example:"Write release notes"`
}

// AssigneeRequest represents the person a card is assigned to
type AssigneeRequest struct {
	Name   string `json:"name" binding:"required" example:"Jamie"`
	Avatar string `json:"avatar" example:"https://example.com/avatars/jamie.png"`
}

// UpdateCardRequest represents a partial card update
// @Description Only the fields present in the body are changed. The clear flags remove description, assignee or deadline.
type UpdateCardRequest struct {
	Title       *string          `json:"title,omitempty" binding:"omitempty,max=200" example:"Write release notes"`
	Description *string          `json:"description,omitempty" example:"Cover the drag and drop changes"`
	Assignee    *AssigneeRequest `json:"assignee,omitempty"`
	Status      *string          `json:"status,omitempty" binding:"omitempty,oneof=Pending 'In Progress' Done" example:"In Progress"`
	Priority    *string          `json:"priority,omitempty" binding:"omitempty,oneof=High Medium Low" example:"High"`
	Deadline    *time.Time       `json:"deadline,omitempty" example:"2026-11-01T17:00:00Z"`

	ClearDescription bool `json:"clearDescription,omitempty" example:"false"`
	ClearAssignee    bool `json:"clearAssignee,omitempty" example:"false"`
	ClearDeadline    bool `json:"clearDeadline,omitempty" example:"false"`
}

// ToPatch converts the request into a domain patch
func (r UpdateCardRequest) ToPatch() domain.CardPatch {
	patch := domain.CardPatch{
		Title:            r.Title,
		Description:      r.Description,
		Deadline:         r.Deadline,
		ClearDescription: r.ClearDescription,
		ClearAssignee:    r.ClearAssignee,
		ClearDeadline:    r.ClearDeadline,
	}
	if r.Assignee != nil {
		patch.Assignee = &domain.Assignee{Name: r.Assignee.Name, Avatar: r.Assignee.Avatar}
	}
	if r.Status != nil {
		status := domain.CardStatus(*r.Status)
		patch.Status = &status
	}
	if r.Priority != nil {
		priority := domain.CardPriority(*r.Priority)
		patch.Priority = &priority
	}
	return patch
}

// IsEmpty reports whether the request changes nothing
func (r UpdateCardRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Assignee == nil &&
		r.Status == nil && r.Priority == nil && r.Deadline == nil &&
		!r.ClearDescription && !r.ClearAssignee && !r.ClearDeadline
}

// MoveCardRequest represents an explicit card move
// @Description targetIndex is clamped to the destination column; omit it to append
type MoveCardRequest struct {
	FromColumnID string `json:"fromColumnId" binding:"required" example:"a1b2c3"`
	ToColumnID   string `json:"toColumnId" binding:"required" example:"d4e5f6"`
	TargetIndex  *int   `json:"targetIndex,omitempty" example:"0"`
}

// AssigneeResponse represents the assignee of a card
type AssigneeResponse struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// CardResponse represents a card with its derived deadline state
type CardResponse struct {
	ID                   string            `json:"id"`
	Title                string            `json:"title"`
	Description          *string           `json:"description,omitempty"`
	Assignee             *AssigneeResponse `json:"assignee,omitempty"`
	Status               string            `json:"status" example:"Pending"`
	Priority             string            `json:"priority" example:"Medium"`
	CreatedAt            time.Time         `json:"createdAt"`
	Deadline             *time.Time        `json:"deadline,omitempty"`
	Urgency              string            `json:"urgency" example:"on_track"`
	TimeRemainingPercent int               `json:"timeRemainingPercent" example:"100"`
}

// NewCardResponse converts a card, deriving urgency at now
func NewCardResponse(card domain.Card, now time.Time) CardResponse {
	resp := CardResponse{
		ID:                   card.ID,
		Title:                card.Title,
		Description:          card.Description,
		Status:               string(card.Status),
		Priority:             string(card.Priority),
		CreatedAt:            card.CreatedAt,
		Deadline:             card.Deadline,
		Urgency:              string(card.Urgency(now)),
		TimeRemainingPercent: card.TimeRemainingPercent(now),
	}
	if card.Assignee != nil {
		resp.Assignee = &AssigneeResponse{Name: card.Assignee.Name, Avatar: card.Assignee.Avatar}
	}
	return resp
}
