package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

// MockDropResolver is a mock implementation of DropResolver
type MockDropResolver struct {
	ResolveFunc func(ctx context.Context, board domain.Board, draggedID string, dropTargetID *string) (service.DropTarget, bool)
}

func (m *MockDropResolver) Resolve(ctx context.Context, board domain.Board, draggedID string, dropTargetID *string) (service.DropTarget, bool) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, board, draggedID, dropTargetID)
	}
	return service.Unresolved{Reason: service.ReasonNoDropTarget}, false
}

type apiFixture struct {
	engine service.BoardEngine
	router *gin.Engine
}

// newAPIFixture wires every board route against a fresh in-memory engine
func newAPIFixture(t *testing.T, resolver DropResolver) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	next := 0
	engine := service.NewBoardEngine(context.Background(), service.EngineConfig{
		Repository: repository.NewMemoryBoardRepository(),
		NewID: func() string {
			next++
			return fmt.Sprintf("id-%d", next)
		},
	})
	if resolver == nil {
		resolver = service.NewDragResolver(engine, nil, nil, nil)
	}

	boards := NewBoardHandler(engine)
	columns := NewColumnHandler(engine)
	cards := NewCardHandler(engine)
	drag := NewDragHandler(engine, resolver)

	r := gin.New()
	r.GET("/boards", boards.ListBoards)
	r.POST("/boards", boards.CreateBoard)
	r.GET("/boards/selected", boards.GetSelectedBoard)
	r.PUT("/boards/selected", boards.SelectBoard)
	r.GET("/boards/:boardId", boards.GetBoard)
	r.DELETE("/boards/:boardId", boards.DeleteBoard)
	r.POST("/boards/:boardId/columns", columns.AddColumn)
	r.POST("/boards/:boardId/columns/move", columns.MoveColumn)
	r.PATCH("/boards/:boardId/columns/:columnId", columns.RenameColumn)
	r.DELETE("/boards/:boardId/columns/:columnId", columns.DeleteColumn)
	r.POST("/boards/:boardId/columns/:columnId/cards", cards.AddCard)
	r.PATCH("/boards/:boardId/cards/:cardId", cards.UpdateCard)
	r.DELETE("/boards/:boardId/cards/:cardId", cards.DeleteCard)
	r.POST("/boards/:boardId/cards/:cardId/move", cards.MoveCard)
	r.POST("/boards/:boardId/drag", drag.Drop)

	return &apiFixture{engine: engine, router: r}
}

func (f *apiFixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

// seedBoard creates a board with columns A and B holding the given card titles
func (f *apiFixture) seedBoard(t *testing.T, a, b []string) domain.Board {
	t.Helper()
	ctx := context.Background()
	id, ok := f.engine.CreateBoardWithColumns(ctx, "Sprint", []string{"A", "B"})
	require.True(t, ok)
	board, _ := f.engine.Board(id)
	for _, title := range a {
		_, ok := f.engine.AddCard(ctx, id, board.Columns[0].ID, title)
		require.True(t, ok)
	}
	for _, title := range b {
		_, ok := f.engine.AddCard(ctx, id, board.Columns[1].ID, title)
		require.True(t, ok)
	}
	board, _ = f.engine.Board(id)
	return board
}

// decodeData unmarshals the data field of a success envelope into out
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.Less(t, w.Code, http.StatusBadRequest, w.Body.String())
	var resp response.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorDetail {
	t.Helper()
	require.GreaterOrEqual(t, w.Code, http.StatusBadRequest, w.Body.String())
	var resp response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	return resp.Error
}
