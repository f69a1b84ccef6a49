package service

// Operation names used in no-op diagnostics and mutation metrics
const (
	OpSelectBoard            = "select_board"
	OpCreateBoard            = "create_board"
	OpCreateBoardWithColumns = "create_board_with_columns"
	OpDeleteBoard            = "delete_board"
	OpAddColumn              = "add_column"
	OpRenameColumn           = "rename_column"
	OpDeleteColumn           = "delete_column"
	OpAddCard                = "add_card"
	OpUpdateCard             = "update_card"
	OpDeleteCard             = "delete_card"
	OpMoveCard               = "move_card"
	OpMoveColumn             = "move_column"
	OpResolveDrop            = "resolve_drop"
)

// NoOpReason explains why an operation left the board collection unchanged
type NoOpReason string

const (
	ReasonBoardNotFound      NoOpReason = "board_not_found"
	ReasonColumnNotFound     NoOpReason = "column_not_found"
	ReasonCardNotFound       NoOpReason = "card_not_found"
	ReasonCardNotInColumn    NoOpReason = "card_not_in_column"
	ReasonBlankTitle         NoOpReason = "blank_title"
	ReasonInvalidPatch       NoOpReason = "invalid_patch"
	ReasonIndexOutOfRange    NoOpReason = "index_out_of_range"
	ReasonIDExhausted        NoOpReason = "id_exhausted"
	ReasonInvariantViolation NoOpReason = "invariant_violation"
	ReasonNoDropTarget       NoOpReason = "no_drop_target"
	ReasonSamePosition       NoOpReason = "same_position"
	ReasonUnknownDragged     NoOpReason = "unknown_dragged_card"
	ReasonUnknownDropTarget  NoOpReason = "unknown_drop_target"
)

// NoOp describes a rejected operation. It is diagnostic only and never returned as an error.
type NoOp struct {
	Operation string
	Reason    NoOpReason
	BoardID   string
}

// NoOpObserver is notified of every rejected operation. It runs with the engine lock held,
// so it must return quickly and must not call back into the engine.
type NoOpObserver func(NoOp)
