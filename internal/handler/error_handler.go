package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/response"
)

// handleServiceError maps errors to the error envelope
func handleServiceError(c *gin.Context, err error) {
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		status := mapErrorCodeToHTTPStatus(appErr.Code)
		if status >= http.StatusInternalServerError {
			zap.L().Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
		} else {
			zap.L().Debug("Request rejected", zap.String("path", c.FullPath()), zap.Error(err))
		}
		response.SendError(c, status, appErr.Code, appErr.Message)
		return
	}

	zap.L().Error("Unhandled error", zap.String("path", c.FullPath()), zap.Error(err))
	response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Internal server error")
}

// mapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(code string) int {
	switch code {
	case response.ErrCodeNotFound:
		return http.StatusNotFound
	case response.ErrCodeAlreadyExists:
		return http.StatusConflict
	case response.ErrCodeValidation:
		return http.StatusBadRequest
	case response.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case response.ErrCodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// bindJSON binds the body into req, answering 400 on failure
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		handleServiceError(c, response.NewValidationError("Invalid request body", err.Error()))
		return false
	}
	return true
}

// requireTitle answers 400 for whitespace-only titles, which binding alone lets through
func requireTitle(c *gin.Context, title string) bool {
	if domain.IsBlank(title) {
		handleServiceError(c, response.NewValidationError("Title must not be blank", ""))
		return false
	}
	return true
}

func notFound(c *gin.Context, what, id string) {
	handleServiceError(c, response.NewNotFoundError(what+" not found", id))
}
