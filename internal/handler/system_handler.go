package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
	"kanban-board-api/internal/util"
)

// ReadinessCheck reports whether a dependency is reachable
type ReadinessCheck func(ctx context.Context) error

type HealthHandler struct {
	engine  service.BoardEngine
	backend string
	checks  map[string]ReadinessCheck
}

func NewHealthHandler(engine service.BoardEngine, backend string, checks map[string]ReadinessCheck) *HealthHandler {
	return &HealthHandler{engine: engine, backend: backend, checks: checks}
}

// Health godoc
// @Summary      Liveness probe
// @Tags         system
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	boards, columns, cards := h.engine.Totals()
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"service":  "kanban-board-api",
		"storage":  h.backend,
		"revision": h.engine.Revision(),
		"boards":   boards,
		"columns":  columns,
		"cards":    cards,
	})
}

// Ready godoc
// @Summary      Readiness probe
// @Description  Runs every configured dependency check
// @Tags         system
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Failure      503 {object} map[string]interface{}
// @Router       /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
				"error":  name + " not reachable",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

type MeHandler struct {
	availableRoles []string
}

func NewMeHandler(availableRoles []string) *MeHandler {
	return &MeHandler{availableRoles: availableRoles}
}

// Me godoc
// @Summary      Current caller
// @Description  Returns the caller identity from the bearer token and the role list known to the deployment. Roles are informational only.
// @Tags         system
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.SuccessResponse{data=dto.MeResponse}
// @Router       /me [get]
func (h *MeHandler) Me(c *gin.Context) {
	resp := dto.MeResponse{
		Roles:          []string{},
		AvailableRoles: h.availableRoles,
	}
	if resp.AvailableRoles == nil {
		resp.AvailableRoles = []string{}
	}

	if auth, ok := util.ExtractAuthData(c); ok {
		resp.UserID = auth.UserID
		resp.Authenticated = true
		if auth.Roles != nil {
			resp.Roles = auth.Roles
		}
	}

	response.SendSuccess(c, http.StatusOK, resp)
}

// EventStream upgrades a request into a board event subscription
type EventStream interface {
	ServeWS(w http.ResponseWriter, r *http.Request, boardID string)
}

type EventsHandler struct {
	stream EventStream
}

func NewEventsHandler(stream EventStream) *EventsHandler {
	return &EventsHandler{stream: stream}
}

// Subscribe godoc
// @Summary      Board event stream
// @Description  Upgrades to a WebSocket that receives one JSON frame per board change. Pass boardId to receive a single board's events.
// @Tags         events
// @Param        boardId query string false "Board ID filter"
// @Success      101
// @Router       /events [get]
func (h *EventsHandler) Subscribe(c *gin.Context) {
	h.stream.ServeWS(c.Writer, c.Request, c.Query("boardId"))
}
