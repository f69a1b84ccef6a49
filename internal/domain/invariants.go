package domain

import (
	"errors"
	"fmt"
)

// ErrInvariantViolation is wrapped by every error ValidateBoards returns
var ErrInvariantViolation = errors.New("board invariant violated")

// ValidateBoards checks the referential integrity rules of a board collection:
// unique board ids, unique column and card ids per board, every referenced card
// listed exactly once across the board's columns, and no orphan card entries.
func ValidateBoards(boards []Board) error {
	boardIDs := make(map[string]struct{}, len(boards))
	for _, b := range boards {
		if b.ID == "" {
			return fmt.Errorf("%w: board with empty id", ErrInvariantViolation)
		}
		if _, dup := boardIDs[b.ID]; dup {
			return fmt.Errorf("%w: duplicate board id %q", ErrInvariantViolation, b.ID)
		}
		boardIDs[b.ID] = struct{}{}

		if err := ValidateBoard(b); err != nil {
			return err
		}
	}
	return nil
}

// ValidateBoard checks the column and card rules of a single board
func ValidateBoard(b Board) error {
	columnIDs := make(map[string]struct{}, len(b.Columns))
	referenced := make(map[string]string, len(b.Cards))

	for _, col := range b.Columns {
		if col.ID == "" {
			return fmt.Errorf("%w: board %q has a column with empty id", ErrInvariantViolation, b.ID)
		}
		if _, dup := columnIDs[col.ID]; dup {
			return fmt.Errorf("%w: board %q has duplicate column id %q", ErrInvariantViolation, b.ID, col.ID)
		}
		columnIDs[col.ID] = struct{}{}

		for _, cardID := range col.CardIDs {
			if owner, seen := referenced[cardID]; seen {
				return fmt.Errorf("%w: board %q card %q referenced by columns %q and %q",
					ErrInvariantViolation, b.ID, cardID, owner, col.ID)
			}
			referenced[cardID] = col.ID

			card, ok := b.Cards[cardID]
			if !ok {
				return fmt.Errorf("%w: board %q column %q references missing card %q",
					ErrInvariantViolation, b.ID, col.ID, cardID)
			}
			if card.ID != cardID {
				return fmt.Errorf("%w: board %q card key %q holds card id %q",
					ErrInvariantViolation, b.ID, cardID, card.ID)
			}
		}
	}

	if len(referenced) != len(b.Cards) {
		for cardID := range b.Cards {
			if _, ok := referenced[cardID]; !ok {
				return fmt.Errorf("%w: board %q has orphan card %q", ErrInvariantViolation, b.ID, cardID)
			}
		}
	}
	return nil
}
