package service

import (
	"context"

	"go.uber.org/zap"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/metrics"
)

// DropTarget is the classification of a completed drag gesture.
// It is one of ColumnTarget, CardTarget or Unresolved.
type DropTarget interface {
	dropTarget()
}

// ColumnTarget reorders the board's columns: ColumnID takes the place of OverColumnID
type ColumnTarget struct {
	ColumnID     string
	OverColumnID string
	FromIndex    int
	ToIndex      int
}

// CardTarget moves a card to Index in ToColumnID
type CardTarget struct {
	CardID       string
	FromColumnID string
	ToColumnID   string
	Index        int
}

// Unresolved is a gesture that maps to no move
type Unresolved struct {
	Reason NoOpReason
}

func (ColumnTarget) dropTarget() {}
func (CardTarget) dropTarget()   {}
func (Unresolved) dropTarget()   {}

// ClassifyDrop maps (draggedID, dropTargetID) onto a structural move on board.
//
// Column and card ids share one namespace, so ids are classified by membership:
// a pair of column ids is always a column reorder, checked before any card lookup.
func ClassifyDrop(board domain.Board, draggedID string, dropTargetID *string) DropTarget {
	if dropTargetID == nil {
		return Unresolved{Reason: ReasonNoDropTarget}
	}
	overID := *dropTargetID

	from, to := board.ColumnIndex(draggedID), board.ColumnIndex(overID)
	if from >= 0 && to >= 0 {
		if from == to {
			return Unresolved{Reason: ReasonSamePosition}
		}
		return ColumnTarget{ColumnID: draggedID, OverColumnID: overID, FromIndex: from, ToIndex: to}
	}

	fromCol := board.ColumnContaining(draggedID)
	if fromCol < 0 {
		return Unresolved{Reason: ReasonUnknownDragged}
	}

	toCol := board.ColumnContaining(overID)
	if toCol < 0 {
		toCol = board.ColumnIndex(overID)
	}
	if toCol < 0 {
		return Unresolved{Reason: ReasonUnknownDropTarget}
	}

	dest := board.Columns[toCol]
	index := dest.CardIndex(overID)
	if index < 0 {
		index = len(dest.CardIDs)
	}

	return CardTarget{
		CardID:       draggedID,
		FromColumnID: board.Columns[fromCol].ID,
		ToColumnID:   dest.ID,
		Index:        index,
	}
}

// Mover is the part of BoardEngine the drag resolver dispatches into.
// Both moves address entities by id, so a gesture classified against an older
// snapshot either applies to the same column or card or is rejected.
type Mover interface {
	MoveCard(ctx context.Context, boardID, fromColumnID, toColumnID, cardID string, targetIndex *int) bool
	MoveColumnTo(ctx context.Context, boardID, columnID, overColumnID string) bool
}

// DragResolver turns completed gestures into engine moves
type DragResolver struct {
	mover    Mover
	observer NoOpObserver
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewDragResolver creates a resolver. observer, m and logger may be nil.
func NewDragResolver(mover Mover, observer NoOpObserver, m *metrics.Metrics, logger *zap.Logger) *DragResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DragResolver{mover: mover, observer: observer, metrics: m, logger: logger}
}

// Resolve classifies the gesture against the board snapshot and applies the move.
// It returns the classification and whether a mutation was applied.
func (r *DragResolver) Resolve(ctx context.Context, board domain.Board, draggedID string, dropTargetID *string) (DropTarget, bool) {
	target := ClassifyDrop(board, draggedID, dropTargetID)

	switch t := target.(type) {
	case ColumnTarget:
		return target, r.mover.MoveColumnTo(ctx, board.ID, t.ColumnID, t.OverColumnID)
	case CardTarget:
		index := t.Index
		return target, r.mover.MoveCard(ctx, board.ID, t.FromColumnID, t.ToColumnID, t.CardID, &index)
	case Unresolved:
		r.logger.Debug("Drop did not resolve",
			zap.String("board_id", board.ID),
			zap.String("dragged_id", draggedID),
			zap.String("reason", string(t.Reason)),
		)
		if r.metrics != nil {
			r.metrics.RecordNoOp(OpResolveDrop, string(t.Reason))
		}
		if r.observer != nil {
			r.observer(NoOp{Operation: OpResolveDrop, Reason: t.Reason, BoardID: board.ID})
		}
	}
	return target, false
}
