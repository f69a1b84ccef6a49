package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/middleware"
)

func TestHealthHandler(t *testing.T) {
	f := newAPIFixture(t, nil)
	f.seedBoard(t, []string{"one"}, []string{"two"})

	failing := errors.New("dial tcp: connection refused")
	tests := []struct {
		name       string
		checks     map[string]ReadinessCheck
		wantStatus int
		wantError  string
	}{
		{name: "no checks", wantStatus: http.StatusOK},
		{
			name:       "all healthy",
			checks:     map[string]ReadinessCheck{"database": func(context.Context) error { return nil }},
			wantStatus: http.StatusOK,
		},
		{
			name: "redis down",
			checks: map[string]ReadinessCheck{
				"database": func(context.Context) error { return nil },
				"redis":    func(context.Context) error { return failing },
			},
			wantStatus: http.StatusServiceUnavailable,
			wantError:  "redis not reachable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(f.engine, "memory", tt.checks)
			r := gin.New()
			r.GET("/health", h.Health)
			r.GET("/ready", h.Ready)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
			require.Equal(t, http.StatusOK, w.Code)
			var health map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
			assert.Equal(t, "memory", health["storage"])
			assert.Equal(t, float64(2), health["cards"])

			w = httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantError != "" {
				assert.Contains(t, w.Body.String(), tt.wantError)
			}
		})
	}
}

func TestMeHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	available := []string{"SuperAdmin", "Admin", "Doyanier", "Client"}
	h := NewMeHandler(available)

	t.Run("anonymous", func(t *testing.T) {
		r := gin.New()
		r.GET("/me", h.Me)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var me dto.MeResponse
		decodeData(t, w, &me)
		assert.False(t, me.Authenticated)
		assert.Empty(t, me.UserID)
		assert.Equal(t, []string{}, me.Roles)
		assert.Equal(t, available, me.AvailableRoles)
	})

	t.Run("authenticated", func(t *testing.T) {
		r := gin.New()
		r.GET("/me", func(c *gin.Context) {
			c.Set(middleware.ContextKeyUserID, "user-1")
			c.Set(middleware.ContextKeyRoles, []string{"Admin"})
			c.Next()
		}, h.Me)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		var me dto.MeResponse
		decodeData(t, w, &me)
		assert.True(t, me.Authenticated)
		assert.Equal(t, "user-1", me.UserID)
		assert.Equal(t, []string{"Admin"}, me.Roles)
	})
}

type recordingStream struct {
	boardID string
	called  bool
}

func (s *recordingStream) ServeWS(w http.ResponseWriter, r *http.Request, boardID string) {
	s.called = true
	s.boardID = boardID
	w.WriteHeader(http.StatusSwitchingProtocols)
}

func TestEventsHandler_PassesBoardFilter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stream := &recordingStream{}
	r := gin.New()
	r.GET("/events", NewEventsHandler(stream).Subscribe)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/events?boardId=b7", nil))

	assert.True(t, stream.called)
	assert.Equal(t, "b7", stream.boardID)
}
