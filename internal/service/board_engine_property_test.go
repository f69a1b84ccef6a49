package service

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/repository"
)

// applyStep runs one pseudo-random operation picked from step against the engine.
// Ids are drawn from the current state so most steps hit real entities.
// It returns an error when an operation on entities that exist was rejected.
func applyStep(ctx context.Context, e BoardEngine, step int) error {
	boards := e.Boards()
	pick := func(n int) int {
		if n == 0 {
			return 0
		}
		return (step / 16) % n
	}

	if len(boards) == 0 || step%16 == 0 {
		if _, ok := e.CreateBoard(ctx, fmt.Sprintf("board %d", step)); !ok {
			return fmt.Errorf("create board rejected")
		}
		return nil
	}
	b := boards[pick(len(boards))]

	var colID, otherColID, cardID string
	if len(b.Columns) > 0 {
		colID = b.Columns[pick(len(b.Columns))].ID
		otherColID = b.Columns[(pick(len(b.Columns))+1)%len(b.Columns)].ID
		if ids := b.Columns[pick(len(b.Columns))].CardIDs; len(ids) > 0 {
			cardID = ids[(step/7)%len(ids)]
		}
	}
	index := step%9 - 2

	switch step % 16 {
	case 1, 2, 3:
		if _, ok := e.AddCard(ctx, b.ID, colID, fmt.Sprintf("card %d", step)); !ok && colID != "" {
			return fmt.Errorf("add card to %s/%s rejected", b.ID, colID)
		}
	case 4:
		e.AddColumn(ctx, b.ID, fmt.Sprintf("column %d", step))
	case 5:
		e.DeleteColumn(ctx, b.ID, colID)
	case 6:
		e.DeleteCard(ctx, b.ID, cardID)
	case 7, 8, 9:
		from := b.ColumnContaining(cardID)
		if from >= 0 {
			if !e.MoveCard(ctx, b.ID, b.Columns[from].ID, otherColID, cardID, &index) {
				return fmt.Errorf("move of card %s from %s to %s rejected", cardID, b.Columns[from].ID, otherColID)
			}
		} else {
			e.MoveCard(ctx, b.ID, colID, otherColID, cardID, nil)
		}
	case 10:
		e.MoveColumn(ctx, b.ID, step%5, (step/5)%5)
	case 11:
		title := fmt.Sprintf("renamed %d", step)
		e.UpdateCard(ctx, b.ID, cardID, domain.CardPatch{Title: &title})
	case 12:
		e.RenameColumn(ctx, b.ID, colID, fmt.Sprintf("lane %d", step))
	case 13:
		e.DeleteBoard(ctx, b.ID)
	case 14:
		target := cardID
		if step%3 == 0 {
			target = otherColID
		}
		NewDragResolver(e, nil, nil, nil).Resolve(ctx, b, cardID, &target)
	default:
		if !e.SelectBoard(b.ID) {
			return fmt.Errorf("select board %s rejected", b.ID)
		}
	}
	return nil
}

func TestProperty_RandomOperationsKeepInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("cards map equals the union of column card ids after any operation sequence", prop.ForAll(
		func(steps []int) bool {
			ctx := context.Background()
			repo := repository.NewMemoryBoardRepository()
			observer := &noOpRecorder{}
			e := NewBoardEngine(ctx, EngineConfig{
				Repository: repo,
				Observer:   observer.Observe,
				NewID:      sequentialIDs("x"),
			})

			for _, step := range steps {
				if err := applyStep(ctx, e, step); err != nil {
					t.Logf("step %d: %v", step, err)
					return false
				}
				if err := domain.ValidateBoards(e.Boards()); err != nil {
					t.Logf("invariant broken after step %d: %v", step, err)
					return false
				}
			}

			// the engine's own guard must never have had to refuse a mutation
			for _, n := range observer.All() {
				if n.Reason == ReasonInvariantViolation {
					t.Logf("%s produced an inconsistent collection", n.Operation)
					return false
				}
			}

			// persisted state always matches memory after a mutation
			if e.Revision() > 0 {
				stored, err := repository.EncodeBoards(repo.Load(ctx))
				if err != nil {
					return false
				}
				current, err := repository.EncodeBoards(e.Boards())
				if err != nil {
					return false
				}
				return bytes.Equal(stored, current)
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 10000)),
	))

	properties.TestingRun(t)
}

func TestProperty_MoveColumnPreservesMultiset(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("moveColumn only reorders columns", prop.ForAll(
		func(count, from, to int) bool {
			from, to = from%count, to%count
			titles := make([]string, count)
			for i := range titles {
				titles[i] = fmt.Sprintf("col-%d", i)
			}

			ctx := context.Background()
			e := NewBoardEngine(ctx, EngineConfig{Repository: repository.NewMemoryBoardRepository()})
			id, ok := e.CreateBoardWithColumns(ctx, "board", titles)
			if !ok {
				return false
			}
			before, _ := e.Board(id)

			if !e.MoveColumn(ctx, id, from, to) {
				return false
			}
			after, _ := e.Board(id)

			if after.Columns[to].ID != before.Columns[from].ID {
				return false
			}
			return fmt.Sprint(sortedColumnIDs(before)) == fmt.Sprint(sortedColumnIDs(after))
		},
		gen.IntRange(1, 8),
		gen.IntRange(0, 100),
		gen.IntRange(0, 100),
	))

	properties.TestingRun(t)
}

func TestProperty_MoveCardKeepsCardCount(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("moveCard lands the card at the clamped index exactly once", prop.ForAll(
		func(fromB bool, card int, index int) bool {
			ctx := context.Background()
			f := newEngineFixture([]domain.Board{twoColumnBoard()})
			before, _ := f.engine.Board("b1")

			from, to := before.Columns[0], before.Columns[1]
			if fromB {
				from, to = to, from
			}
			cardID := from.CardIDs[card%len(from.CardIDs)]

			if !f.engine.MoveCard(ctx, "b1", from.ID, to.ID, cardID, &index) {
				return false
			}
			after, _ := f.engine.Board("b1")
			dest, _ := after.ColumnByID(to.ID)

			want := clamp(index, 0, len(to.CardIDs))
			return dest.CardIndex(cardID) == want &&
				after.CardCount() == before.CardCount() &&
				domain.ValidateBoard(after) == nil
		},
		gen.Bool(),
		gen.IntRange(0, 10),
		gen.IntRange(-3, 6),
	))

	properties.TestingRun(t)
}

func sortedColumnIDs(b domain.Board) []string {
	ids := make([]string, len(b.Columns))
	for i, c := range b.Columns {
		ids[i] = c.ID
	}
	sort.Strings(ids)
	return ids
}
