package service

import (
	"context"
	"strings"

	"kanban-board-api/internal/domain"
)

// CreateBoard appends a board seeded with the default columns and selects it
func (e *boardEngine) CreateBoard(ctx context.Context, title string) (string, bool) {
	return e.createBoard(ctx, OpCreateBoard, title, domain.DefaultColumnTitles())
}

// CreateBoardWithColumns appends a board with the given columns, in order, and selects it
func (e *boardEngine) CreateBoardWithColumns(ctx context.Context, title string, columnTitles []string) (string, bool) {
	return e.createBoard(ctx, OpCreateBoardWithColumns, title, columnTitles)
}

func (e *boardEngine) createBoard(ctx context.Context, op, title string, columnTitles []string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if domain.IsBlank(title) {
		e.reject(op, ReasonBlankTitle, "")
		return "", false
	}
	titles := make([]string, len(columnTitles))
	for i, ct := range columnTitles {
		if domain.IsBlank(ct) {
			e.reject(op, ReasonBlankTitle, "")
			return "", false
		}
		titles[i] = strings.TrimSpace(ct)
	}

	b := e.newBoard(strings.TrimSpace(title), titles)
	if b.ID == "" {
		e.reject(op, ReasonIDExhausted, "")
		return "", false
	}

	next := make([]domain.Board, len(e.boards), len(e.boards)+1)
	copy(next, e.boards)
	next = append(next, b)

	if !e.commit(ctx, op, next, domain.Event{
		Type:       domain.EventBoardCreated,
		BoardID:    b.ID,
		BoardTitle: b.Title,
	}) {
		return "", false
	}
	e.selected = b.ID
	return b.ID, true
}

// DeleteBoard removes a board with all its columns and cards
func (e *boardEngine) DeleteBoard(ctx context.Context, boardID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := domain.FindBoard(e.boards, boardID)
	if i < 0 {
		e.reject(OpDeleteBoard, ReasonBoardNotFound, boardID)
		return false
	}
	removed := e.boards[i]

	next := make([]domain.Board, 0, len(e.boards)-1)
	next = append(next, e.boards[:i]...)
	next = append(next, e.boards[i+1:]...)

	if !e.commit(ctx, OpDeleteBoard, next, domain.Event{
		Type:       domain.EventBoardDeleted,
		BoardID:    removed.ID,
		BoardTitle: removed.Title,
	}) {
		return false
	}
	if e.selected == boardID {
		e.selected = ""
	}
	return true
}

// AddColumn appends an empty column to a board
func (e *boardEngine) AddColumn(ctx context.Context, boardID, title string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	i, b, ok := e.lookupBoard(OpAddColumn, boardID)
	if !ok {
		return "", false
	}
	if domain.IsBlank(title) {
		e.reject(OpAddColumn, ReasonBlankTitle, boardID)
		return "", false
	}
	colID, ok := e.allocateID(func(id string) bool { return b.ColumnIndex(id) >= 0 })
	if !ok {
		e.reject(OpAddColumn, ReasonIDExhausted, boardID)
		return "", false
	}

	col := domain.Column{ID: colID, Title: strings.TrimSpace(title), CardIDs: []string{}}
	columns := make([]domain.Column, len(b.Columns), len(b.Columns)+1)
	copy(columns, b.Columns)
	b.Columns = append(columns, col)

	if !e.commit(ctx, OpAddColumn, replaceBoard(e.boards, i, b), domain.Event{
		Type:        domain.EventColumnAdded,
		BoardID:     b.ID,
		BoardTitle:  b.Title,
		ColumnTitle: col.Title,
	}) {
		return "", false
	}
	return colID, true
}

// RenameColumn changes a column title, keeping its id and position
func (e *boardEngine) RenameColumn(ctx context.Context, boardID, columnID, title string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	i, b, ok := e.lookupBoard(OpRenameColumn, boardID)
	if !ok {
		return false
	}
	ci := b.ColumnIndex(columnID)
	if ci < 0 {
		e.reject(OpRenameColumn, ReasonColumnNotFound, boardID)
		return false
	}
	if domain.IsBlank(title) {
		e.reject(OpRenameColumn, ReasonBlankTitle, boardID)
		return false
	}

	col := b.Columns[ci]
	col.Title = strings.TrimSpace(title)
	b.Columns = replaceColumn(b.Columns, ci, col)

	return e.commit(ctx, OpRenameColumn, replaceBoard(e.boards, i, b), domain.Event{
		Type:        domain.EventColumnRenamed,
		BoardID:     b.ID,
		BoardTitle:  b.Title,
		ColumnTitle: col.Title,
	})
}

// DeleteColumn removes a column and every card it holds
func (e *boardEngine) DeleteColumn(ctx context.Context, boardID, columnID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	i, b, ok := e.lookupBoard(OpDeleteColumn, boardID)
	if !ok {
		return false
	}
	ci := b.ColumnIndex(columnID)
	if ci < 0 {
		e.reject(OpDeleteColumn, ReasonColumnNotFound, boardID)
		return false
	}
	removed := b.Columns[ci]

	columns := make([]domain.Column, 0, len(b.Columns)-1)
	columns = append(columns, b.Columns[:ci]...)
	b.Columns = append(columns, b.Columns[ci+1:]...)

	cards := cloneCards(b.Cards)
	for _, cardID := range removed.CardIDs {
		delete(cards, cardID)
	}
	b.Cards = cards

	return e.commit(ctx, OpDeleteColumn, replaceBoard(e.boards, i, b), domain.Event{
		Type:        domain.EventColumnDeleted,
		BoardID:     b.ID,
		BoardTitle:  b.Title,
		ColumnTitle: removed.Title,
	})
}

// AddCard creates a card with default status and priority at the end of a column
func (e *boardEngine) AddCard(ctx context.Context, boardID, columnID, title string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	i, b, ok := e.lookupBoard(OpAddCard, boardID)
	if !ok {
		return "", false
	}
	ci := b.ColumnIndex(columnID)
	if ci < 0 {
		e.reject(OpAddCard, ReasonColumnNotFound, boardID)
		return "", false
	}
	if domain.IsBlank(title) {
		e.reject(OpAddCard, ReasonBlankTitle, boardID)
		return "", false
	}
	cardID, ok := e.allocateID(func(id string) bool { _, taken := b.Cards[id]; return taken })
	if !ok {
		e.reject(OpAddCard, ReasonIDExhausted, boardID)
		return "", false
	}

	card := domain.NewCard(cardID, strings.TrimSpace(title), e.now())
	cards := cloneCards(b.Cards)
	cards[cardID] = card
	b.Cards = cards

	col := b.Columns[ci]
	col.CardIDs = insertAt(col.CardIDs, len(col.CardIDs), cardID)
	b.Columns = replaceColumn(b.Columns, ci, col)

	if !e.commit(ctx, OpAddCard, replaceBoard(e.boards, i, b), domain.Event{
		Type:        domain.EventCardAdded,
		BoardID:     b.ID,
		BoardTitle:  b.Title,
		ColumnTitle: col.Title,
		CardTitle:   card.Title,
	}) {
		return "", false
	}
	return cardID, true
}

// UpdateCard merges the present patch fields into a card
func (e *boardEngine) UpdateCard(ctx context.Context, boardID, cardID string, patch domain.CardPatch) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	i, b, ok := e.lookupBoard(OpUpdateCard, boardID)
	if !ok {
		return false
	}
	card, ok := b.Cards[cardID]
	if !ok {
		e.reject(OpUpdateCard, ReasonCardNotFound, boardID)
		return false
	}
	if !patch.Valid() {
		e.reject(OpUpdateCard, ReasonInvalidPatch, boardID)
		return false
	}
	if patch.Title != nil {
		trimmed := strings.TrimSpace(*patch.Title)
		patch.Title = &trimmed
	}

	updated := patch.Apply(card)
	cards := cloneCards(b.Cards)
	cards[cardID] = updated
	b.Cards = cards

	return e.commit(ctx, OpUpdateCard, replaceBoard(e.boards, i, b), domain.Event{
		Type:       domain.EventCardUpdated,
		BoardID:    b.ID,
		BoardTitle: b.Title,
		CardTitle:  updated.Title,
	})
}

// DeleteCard removes a card from the board and from its column
func (e *boardEngine) DeleteCard(ctx context.Context, boardID, cardID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	i, b, ok := e.lookupBoard(OpDeleteCard, boardID)
	if !ok {
		return false
	}
	card, ok := b.Cards[cardID]
	if !ok {
		e.reject(OpDeleteCard, ReasonCardNotFound, boardID)
		return false
	}

	cards := cloneCards(b.Cards)
	delete(cards, cardID)
	b.Cards = cards

	if ci := b.ColumnContaining(cardID); ci >= 0 {
		col := b.Columns[ci]
		col.CardIDs = removeAt(col.CardIDs, col.CardIndex(cardID))
		b.Columns = replaceColumn(b.Columns, ci, col)
	}

	return e.commit(ctx, OpDeleteCard, replaceBoard(e.boards, i, b), domain.Event{
		Type:       domain.EventCardDeleted,
		BoardID:    b.ID,
		BoardTitle: b.Title,
		CardTitle:  card.Title,
	})
}

// MoveCard takes a card out of fromColumnID and inserts it into toColumnID.
// targetIndex is clamped to [0, len] of the destination after removal; nil appends.
func (e *boardEngine) MoveCard(ctx context.Context, boardID, fromColumnID, toColumnID, cardID string, targetIndex *int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	i, b, ok := e.lookupBoard(OpMoveCard, boardID)
	if !ok {
		return false
	}
	fi, ti := b.ColumnIndex(fromColumnID), b.ColumnIndex(toColumnID)
	if fi < 0 || ti < 0 {
		e.reject(OpMoveCard, ReasonColumnNotFound, boardID)
		return false
	}
	card, ok := b.Cards[cardID]
	if !ok {
		e.reject(OpMoveCard, ReasonCardNotFound, boardID)
		return false
	}
	pos := b.Columns[fi].CardIndex(cardID)
	if pos < 0 {
		e.reject(OpMoveCard, ReasonCardNotInColumn, boardID)
		return false
	}

	columns := make([]domain.Column, len(b.Columns))
	copy(columns, b.Columns)

	from := columns[fi]
	from.CardIDs = removeAt(from.CardIDs, pos)
	columns[fi] = from

	to := columns[ti]
	index := len(to.CardIDs)
	if targetIndex != nil {
		index = clamp(*targetIndex, 0, len(to.CardIDs))
	}
	to.CardIDs = insertAt(to.CardIDs, index, cardID)
	columns[ti] = to
	b.Columns = columns

	return e.commit(ctx, OpMoveCard, replaceBoard(e.boards, i, b), domain.Event{
		Type:            domain.EventCardMoved,
		BoardID:         b.ID,
		BoardTitle:      b.Title,
		CardTitle:       card.Title,
		FromColumnTitle: from.Title,
		ToColumnTitle:   to.Title,
		Reordered:       fi == ti,
	})
}

// MoveColumn relocates the column at fromIndex to toIndex
func (e *boardEngine) MoveColumn(ctx context.Context, boardID string, fromIndex, toIndex int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	i, b, ok := e.lookupBoard(OpMoveColumn, boardID)
	if !ok {
		return false
	}
	n := len(b.Columns)
	if fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n {
		e.reject(OpMoveColumn, ReasonIndexOutOfRange, boardID)
		return false
	}
	return e.spliceColumn(ctx, i, b, fromIndex, toIndex)
}

// MoveColumnTo moves columnID to the position currently held by overColumnID.
// Both positions are read under the same lock as the move.
func (e *boardEngine) MoveColumnTo(ctx context.Context, boardID, columnID, overColumnID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	i, b, ok := e.lookupBoard(OpMoveColumn, boardID)
	if !ok {
		return false
	}
	from, to := b.ColumnIndex(columnID), b.ColumnIndex(overColumnID)
	if from < 0 || to < 0 {
		e.reject(OpMoveColumn, ReasonColumnNotFound, boardID)
		return false
	}
	return e.spliceColumn(ctx, i, b, from, to)
}

// spliceColumn commits b with the column at from reinserted at to. The caller holds e.mu.
func (e *boardEngine) spliceColumn(ctx context.Context, i int, b domain.Board, from, to int) bool {
	moved := b.Columns[from]
	columns := make([]domain.Column, 0, len(b.Columns))
	columns = append(columns, b.Columns[:from]...)
	columns = append(columns, b.Columns[from+1:]...)
	columns = append(columns[:to], append([]domain.Column{moved}, columns[to:]...)...)
	b.Columns = columns

	return e.commit(ctx, OpMoveColumn, replaceBoard(e.boards, i, b), domain.Event{
		Type:        domain.EventColumnMoved,
		BoardID:     b.ID,
		BoardTitle:  b.Title,
		ColumnTitle: moved.Title,
	})
}

// lookupBoard finds a board for a mutation, rejecting unknown ids
func (e *boardEngine) lookupBoard(op, boardID string) (int, domain.Board, bool) {
	i := domain.FindBoard(e.boards, boardID)
	if i < 0 {
		e.reject(op, ReasonBoardNotFound, boardID)
		return -1, domain.Board{}, false
	}
	return i, e.boards[i], true
}

// replaceBoard returns a copy of boards with position i set to b
func replaceBoard(boards []domain.Board, i int, b domain.Board) []domain.Board {
	next := make([]domain.Board, len(boards))
	copy(next, boards)
	next[i] = b
	return next
}

// replaceColumn returns a copy of columns with position i set to col
func replaceColumn(columns []domain.Column, i int, col domain.Column) []domain.Column {
	next := make([]domain.Column, len(columns))
	copy(next, columns)
	next[i] = col
	return next
}

func cloneCards(cards map[string]domain.Card) map[string]domain.Card {
	next := make(map[string]domain.Card, len(cards)+1)
	for id, c := range cards {
		next[id] = c
	}
	return next
}

// insertAt returns a new slice with id inserted at index
func insertAt(ids []string, index int, id string) []string {
	next := make([]string, 0, len(ids)+1)
	next = append(next, ids[:index]...)
	next = append(next, id)
	return append(next, ids[index:]...)
}

// removeAt returns a new slice without the element at index
func removeAt(ids []string, index int) []string {
	next := make([]string, 0, len(ids))
	next = append(next, ids[:index]...)
	return append(next, ids[index+1:]...)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
