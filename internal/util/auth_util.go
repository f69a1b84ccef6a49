package util

import (
	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/middleware"
)

// AuthData holds the caller identity stored by middleware.Auth
type AuthData struct {
	UserID string
	Roles  []string
	Token  string
}

// ExtractAuthData reads the caller identity from the Gin context.
// ok is false when the request was not authenticated.
func ExtractAuthData(c *gin.Context) (AuthData, bool) {
	userID := c.GetString(middleware.ContextKeyUserID)
	if userID == "" {
		return AuthData{}, false
	}

	return AuthData{
		UserID: userID,
		Roles:  c.GetStringSlice(middleware.ContextKeyRoles),
		Token:  c.GetString(middleware.ContextKeyToken),
	}, true
}
