package domain

// Default column titles seeded into every new board.
const (
	ColumnTitleToDo       = "To Do"
	ColumnTitleInProgress = "In Progress"
	ColumnTitleDone       = "Done"
)

// DefaultColumnTitles returns the titles of the columns a new board starts with, in display order.
func DefaultColumnTitles() []string {
	return []string{ColumnTitleToDo, ColumnTitleInProgress, ColumnTitleDone}
}

// Board represents a named collection of ordered columns and the cards they reference
type Board struct {
	ID      string          `json:"id"`
	Title   string          `json:"title"`
	Columns []Column        `json:"columns"`
	Cards   map[string]Card `json:"cards"`
}

// Column represents an ordered lane holding card ids (top-to-bottom display order)
type Column struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	CardIDs []string `json:"cardIds"`
}

// ColumnIndex returns the position of the column with the given id, or -1.
func (b Board) ColumnIndex(columnID string) int {
	for i, col := range b.Columns {
		if col.ID == columnID {
			return i
		}
	}
	return -1
}

// ColumnByID returns the column with the given id.
func (b Board) ColumnByID(columnID string) (Column, bool) {
	if i := b.ColumnIndex(columnID); i >= 0 {
		return b.Columns[i], true
	}
	return Column{}, false
}

// ColumnContaining returns the index of the column whose CardIDs contain cardID, or -1.
func (b Board) ColumnContaining(cardID string) int {
	for i, col := range b.Columns {
		if col.CardIndex(cardID) >= 0 {
			return i
		}
	}
	return -1
}

// CardCount returns the number of cards on the board
func (b Board) CardCount() int {
	return len(b.Cards)
}

// CardIndex returns the position of cardID within the column, or -1.
func (c Column) CardIndex(cardID string) int {
	for i, id := range c.CardIDs {
		if id == cardID {
			return i
		}
	}
	return -1
}

// CountCards returns the total number of columns and cards across boards.
func CountCards(boards []Board) (columns, cards int) {
	for _, b := range boards {
		columns += len(b.Columns)
		cards += len(b.Cards)
	}
	return columns, cards
}

// FindBoard returns the index of the board with the given id, or -1.
func FindBoard(boards []Board, boardID string) int {
	for i, b := range boards {
		if b.ID == boardID {
			return i
		}
	}
	return -1
}
