package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
)

func TestBoardHandler_CreateBoard(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		wantColumns    []string
	}{
		{
			name:           "default columns",
			requestBody:    dto.CreateBoardRequest{Title: "Sprint"},
			expectedStatus: http.StatusCreated,
			wantColumns:    []string{"To Do", "In Progress", "Done"},
		},
		{
			name:           "custom columns",
			requestBody:    dto.CreateBoardRequest{Title: "Release", Columns: []string{"Backlog", "Shipped"}},
			expectedStatus: http.StatusCreated,
			wantColumns:    []string{"Backlog", "Shipped"},
		},
		{
			name:           "titles are trimmed",
			requestBody:    dto.CreateBoardRequest{Title: "  Ops  ", Columns: []string{" Now "}},
			expectedStatus: http.StatusCreated,
			wantColumns:    []string{"Now"},
		},
		{
			name:           "blank title",
			requestBody:    dto.CreateBoardRequest{Title: "   "},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "blank column title",
			requestBody:    dto.CreateBoardRequest{Title: "Ops", Columns: []string{"   "}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid json",
			requestBody:    "invalid json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t, nil)

			w := f.do(t, http.MethodPost, "/boards", tt.requestBody)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus != http.StatusCreated {
				assert.Equal(t, response.ErrCodeValidation, decodeError(t, w).Code)
				assert.Empty(t, f.engine.Boards())
				return
			}

			var created dto.CreatedResponse
			decodeData(t, w, &created)
			board, ok := f.engine.Board(created.ID)
			require.True(t, ok)

			titles := make([]string, len(board.Columns))
			for i, col := range board.Columns {
				titles[i] = col.Title
			}
			assert.Equal(t, tt.wantColumns, titles)

			selected, _ := f.engine.SelectedBoardID()
			assert.Equal(t, created.ID, selected, "a new board becomes selected")
		})
	}
}

func TestBoardHandler_ListAndGet(t *testing.T) {
	f := newAPIFixture(t, nil)
	board := f.seedBoard(t, []string{"one"}, nil)

	w := f.do(t, http.MethodGet, "/boards", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list dto.BoardListResponse
	decodeData(t, w, &list)
	require.Len(t, list.Boards, 1)
	assert.Equal(t, 1, list.Boards[0].CardCount)
	assert.Equal(t, f.engine.Revision(), list.Revision)
	require.NotNil(t, list.SelectedBoardID)
	assert.Equal(t, board.ID, *list.SelectedBoardID)

	w = f.do(t, http.MethodGet, "/boards/"+board.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detail dto.BoardResponse
	decodeData(t, w, &detail)
	assert.Equal(t, "Sprint", detail.Title)
	assert.True(t, detail.Selected)
	require.Len(t, detail.Columns, 2)
	cardID := detail.Columns[0].CardIDs[0]
	assert.Equal(t, "one", detail.Cards[cardID].Title)
	assert.Equal(t, "none", detail.Cards[cardID].Urgency)

	w = f.do(t, http.MethodGet, "/boards/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, response.ErrCodeNotFound, decodeError(t, w).Code)
}

func TestBoardHandler_DeleteBoard(t *testing.T) {
	f := newAPIFixture(t, nil)
	board := f.seedBoard(t, []string{"one"}, []string{"two"})

	w := f.do(t, http.MethodDelete, "/boards/"+board.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, f.engine.Boards())

	_, selected := f.engine.SelectedBoardID()
	assert.False(t, selected, "deleting the selected board clears the selection")

	w = f.do(t, http.MethodDelete, "/boards/"+board.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBoardHandler_Selection(t *testing.T) {
	f := newAPIFixture(t, nil)

	w := f.do(t, http.MethodGet, "/boards/selected", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var none dto.SelectedBoardResponse
	decodeData(t, w, &none)
	assert.Nil(t, none.BoardID)

	first := f.seedBoard(t, nil, nil)
	second := f.seedBoard(t, nil, nil)

	w = f.do(t, http.MethodPut, "/boards/selected", dto.SelectBoardRequest{BoardID: first.ID})
	require.Equal(t, http.StatusOK, w.Code)
	id, _ := f.engine.SelectedBoardID()
	assert.Equal(t, first.ID, id)

	w = f.do(t, http.MethodPut, "/boards/selected", dto.SelectBoardRequest{BoardID: "missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	id, _ = f.engine.SelectedBoardID()
	assert.Equal(t, first.ID, id, "unknown board leaves the selection unchanged")

	w = f.do(t, http.MethodPut, "/boards/selected", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.NotEqual(t, first.ID, second.ID)
}
