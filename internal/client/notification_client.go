package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/metrics"
)

const notificationSinkName = "http"

// NotificationEvent is the payload posted to the notification service
type NotificationEvent struct {
	Type         domain.EventType  `json:"type"`
	ResourceType string            `json:"resourceType"`
	ResourceID   string            `json:"resourceId"`
	ResourceName string            `json:"resourceName,omitempty"`
	Message      string            `json:"message"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	Revision     uint64            `json:"revision"`
	OccurredAt   string            `json:"occurredAt"`
}

// NewNotificationEvent converts a board event into the notification service payload
func NewNotificationEvent(ev domain.Event) NotificationEvent {
	occurred := ev.OccurredAt
	if occurred.IsZero() {
		occurred = time.Now()
	}

	metadata := map[string]string{}
	for k, v := range map[string]string{
		"columnTitle":     ev.ColumnTitle,
		"cardTitle":       ev.CardTitle,
		"fromColumnTitle": ev.FromColumnTitle,
		"toColumnTitle":   ev.ToColumnTitle,
	} {
		if v != "" {
			metadata[k] = v
		}
	}
	if len(metadata) == 0 {
		metadata = nil
	}

	return NotificationEvent{
		Type:         ev.Type,
		ResourceType: "BOARD",
		ResourceID:   ev.BoardID,
		ResourceName: ev.BoardTitle,
		Message:      ev.Message(),
		Metadata:     metadata,
		Revision:     ev.Revision,
		OccurredAt:   occurred.UTC().Format(time.RFC3339),
	}
}

// NotificationClient forwards board events to the notification service over HTTP.
// Delivery happens on a background goroutine so Notify never blocks the caller.
type NotificationClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	timeout    time.Duration
	logger     *zap.Logger
	metrics    *metrics.Metrics
	wg         sync.WaitGroup
}

// NewNotificationClient creates a new Notification API client
func NewNotificationClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) *NotificationClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		timeout:    timeout,
		logger:     logger,
		metrics:    m,
	}
}

// Notify schedules delivery of the event and returns immediately
func (c *NotificationClient) Notify(_ context.Context, ev domain.Event) {
	payload := NewNotificationEvent(ev)
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()
		if err := c.SendNotification(ctx, payload); err != nil {
			c.logger.Warn("Failed to deliver board event",
				zap.Error(err),
				zap.String("type", string(ev.Type)),
				zap.String("board_id", ev.BoardID),
			)
		}
	}()
}

// Wait blocks until every scheduled delivery has finished
func (c *NotificationClient) Wait() {
	c.wg.Wait()
}

// SendNotification posts a single notification to the notification service
func (c *NotificationClient) SendNotification(ctx context.Context, event NotificationEvent) error {
	url := fmt.Sprintf("%s/api/internal/notifications", c.baseURL)

	jsonBody, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-API-Key", c.apiKey)

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	if c.metrics != nil {
		c.metrics.RecordExternalAPICall(url, http.MethodPost, statusCode, duration, err)
	}

	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notification service returned status %d", resp.StatusCode)
	}

	if c.metrics != nil {
		c.metrics.RecordEventPublished(notificationSinkName, string(event.Type))
	}
	c.logger.Debug("Notification sent",
		zap.String("type", string(event.Type)),
		zap.String("board_id", event.ResourceID),
		zap.Duration("duration", duration),
	)
	return nil
}
