package util

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"kanban-board-api/internal/middleware"
)

func TestExtractAuthData(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("anonymous", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		_, ok := ExtractAuthData(c)
		assert.False(t, ok)
	})

	t.Run("authenticated", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(middleware.ContextKeyUserID, "user-1")
		c.Set(middleware.ContextKeyRoles, []string{"Admin"})
		c.Set(middleware.ContextKeyToken, "tok")

		data, ok := ExtractAuthData(c)
		assert.True(t, ok)
		assert.Equal(t, AuthData{UserID: "user-1", Roles: []string{"Admin"}, Token: "tok"}, data)
	})
}
