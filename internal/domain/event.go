package domain

import (
	"fmt"
	"time"
)

// EventType represents the kind of change a successful board mutation made
type EventType string

const (
	EventBoardCreated  EventType = "BOARD_CREATED"
	EventBoardDeleted  EventType = "BOARD_DELETED"
	EventColumnAdded   EventType = "COLUMN_ADDED"
	EventColumnRenamed EventType = "COLUMN_RENAMED"
	EventColumnDeleted EventType = "COLUMN_DELETED"
	EventColumnMoved   EventType = "COLUMN_MOVED"
	EventCardAdded     EventType = "CARD_ADDED"
	EventCardUpdated   EventType = "CARD_UPDATED"
	EventCardDeleted   EventType = "CARD_DELETED"
	EventCardMoved     EventType = "CARD_MOVED"
)

// Event describes one successful mutation in terms fit for user-facing feedback.
// It carries display names only and is never fed back into the engine.
type Event struct {
	Type            EventType `json:"type"`
	BoardID         string    `json:"boardId"`
	BoardTitle      string    `json:"boardTitle"`
	ColumnTitle     string    `json:"columnTitle,omitempty"`
	CardTitle       string    `json:"cardTitle,omitempty"`
	FromColumnTitle string    `json:"fromColumnTitle,omitempty"`
	ToColumnTitle   string    `json:"toColumnTitle,omitempty"`
	Reordered       bool      `json:"reordered,omitempty"`
	Revision        uint64    `json:"revision"`
	OccurredAt      time.Time `json:"occurredAt"`
}

// Message renders the event as a short human-readable sentence
func (e Event) Message() string {
	switch e.Type {
	case EventBoardCreated:
		return fmt.Sprintf("Board %q created", e.BoardTitle)
	case EventBoardDeleted:
		return fmt.Sprintf("Board %q deleted", e.BoardTitle)
	case EventColumnAdded:
		return fmt.Sprintf("Column %q added", e.ColumnTitle)
	case EventColumnRenamed:
		return fmt.Sprintf("Column renamed to %q", e.ColumnTitle)
	case EventColumnDeleted:
		return fmt.Sprintf("Column %q deleted", e.ColumnTitle)
	case EventColumnMoved:
		return fmt.Sprintf("Moved column %q", e.ColumnTitle)
	case EventCardAdded:
		return fmt.Sprintf("Card %q added", e.CardTitle)
	case EventCardUpdated:
		return fmt.Sprintf("Card %q updated", e.CardTitle)
	case EventCardDeleted:
		return fmt.Sprintf("Card %q deleted", e.CardTitle)
	case EventCardMoved:
		if e.Reordered {
			return fmt.Sprintf("Reordered %q", e.CardTitle)
		}
		return fmt.Sprintf("Moved %q to %q", e.CardTitle, e.ToColumnTitle)
	default:
		return string(e.Type)
	}
}
