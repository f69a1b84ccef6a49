package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/metrics"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 64
	sinkName       = "websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// EventMessage is the frame pushed to browsers for each board event
type EventMessage struct {
	domain.Event
	Message string `json:"message"`
}

type outbound struct {
	boardID string
	payload []byte
}

// Client is one WebSocket subscriber, optionally scoped to a single board
type Client struct {
	conn    *websocket.Conn
	send    chan []byte
	boardID string
	hub     *Hub
}

// Hub fans board events out to connected WebSocket clients.
// Slow clients whose buffers fill up are disconnected instead of blocking the engine.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan outbound
	done       chan struct{}
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewHub creates a hub. Call Run to start delivering.
func NewHub(logger *zap.Logger, m *metrics.Metrics) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan outbound, 256),
		done:       make(chan struct{}),
		logger:     logger,
		metrics:    m,
	}
}

// Run serves registrations and broadcasts until ctx is cancelled
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		close(h.done)
		for client := range h.clients {
			delete(h.clients, client)
			close(client.send)
		}
		h.reportClients()
	}()

	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.reportClients()
			h.logger.Debug("WebSocket client registered", zap.String("board_id", client.boardID))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.reportClients()
			}

		case msg := <-h.broadcast:
			for client := range h.clients {
				if client.boardID != "" && client.boardID != msg.boardID {
					continue
				}
				select {
				case client.send <- msg.payload:
				default:
					h.logger.Warn("Dropping slow WebSocket client", zap.String("board_id", client.boardID))
					delete(h.clients, client)
					close(client.send)
					h.reportClients()
				}
			}

		case <-ctx.Done():
			return
		}
	}
}

// Notify queues the event for every interested client without blocking
func (h *Hub) Notify(_ context.Context, ev domain.Event) {
	payload, err := json.Marshal(EventMessage{Event: ev, Message: ev.Message()})
	if err != nil {
		h.logger.Error("Failed to marshal board event", zap.Error(err))
		return
	}

	select {
	case h.broadcast <- outbound{boardID: ev.BoardID, payload: payload}:
		if h.metrics != nil {
			h.metrics.RecordEventPublished(sinkName, string(ev.Type))
		}
	default:
		h.logger.Warn("WebSocket broadcast queue full; dropping event", zap.String("type", string(ev.Type)))
	}
}

// ServeWS upgrades the request and subscribes the connection.
// An empty boardID subscribes to events of every board.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, boardID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("Failed to upgrade connection", zap.Error(err))
		return
	}

	client := &Client{
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
		boardID: boardID,
		hub:     h,
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

func (h *Hub) reportClients() {
	if h.metrics != nil {
		h.metrics.SetWebSocketClients(len(h.clients))
	}
}

// readPump only drains control frames; clients never send board commands over the socket
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Debug("WebSocket closed unexpectedly", zap.Error(err))
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
