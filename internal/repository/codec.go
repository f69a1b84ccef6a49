package repository

import (
	"bytes"
	"encoding/json"
	"fmt"

	"kanban-board-api/internal/domain"
)

// EncodeBoards serializes the whole collection as a JSON array.
// Nil card lists and card maps are written as [] and {}.
func EncodeBoards(boards []domain.Board) ([]byte, error) {
	out := make([]domain.Board, len(boards))
	for i, b := range boards {
		out[i] = normalizeBoard(b)
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to encode boards: %w", err)
	}
	return data, nil
}

// DecodeBoards parses a payload written by EncodeBoards and checks the board invariants.
// Unknown fields are ignored and missing optional fields are tolerated.
func DecodeBoards(data []byte) ([]domain.Board, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []domain.Board{}, nil
	}

	var boards []domain.Board
	if err := json.Unmarshal(data, &boards); err != nil {
		return nil, fmt.Errorf("failed to decode boards: %w", err)
	}

	for i := range boards {
		boards[i] = normalizeBoard(boards[i])
	}
	if boards == nil {
		boards = []domain.Board{}
	}

	if err := domain.ValidateBoards(boards); err != nil {
		return nil, err
	}
	return boards, nil
}

func normalizeBoard(b domain.Board) domain.Board {
	columns := make([]domain.Column, len(b.Columns))
	for i, col := range b.Columns {
		if col.CardIDs == nil {
			col.CardIDs = []string{}
		}
		columns[i] = col
	}
	b.Columns = columns

	cards := make(map[string]domain.Card, len(b.Cards))
	for id, card := range b.Cards {
		if card.Status == "" {
			card.Status = domain.CardStatusPending
		}
		if card.Priority == "" {
			card.Priority = domain.CardPriorityMedium
		}
		cards[id] = card
	}
	b.Cards = cards
	return b
}
