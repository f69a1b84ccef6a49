package dto

// DragRequest represents a completed drag gesture
// @Description dropTargetId is null when the item was released outside any drop zone
type DragRequest struct {
	DraggedID    string  `json:"draggedId" binding:"required" example:"c1"`
	DropTargetID *string `json:"dropTargetId" example:"c3"`
}

// Drag kinds reported in DragResponse
const (
	DragKindColumn = "column"
	DragKindCard   = "card"
	DragKindNone   = "none"
)

// DragResponse reports how a gesture was classified and whether it changed the board
type DragResponse struct {
	Applied  bool   `json:"applied" example:"true"`
	Kind     string `json:"kind" example:"card"`
	Reason   string `json:"reason,omitempty" example:"no_drop_target"`
	ItemID   string `json:"itemId,omitempty" example:"c1"`
	ColumnID string `json:"columnId,omitempty" example:"d4e5f6"`
	Index    *int   `json:"index,omitempty" example:"0"`
}

// MeResponse represents the caller and the roles the deployment knows about
// @Description userId is empty when authentication is disabled
type MeResponse struct {
	UserID         string   `json:"userId" example:"user-123"`
	Authenticated  bool     `json:"authenticated" example:"true"`
	Roles          []string `json:"roles"`
	AvailableRoles []string `json:"availableRoles"`
}
