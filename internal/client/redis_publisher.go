package client

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/metrics"
)

const redisSinkName = "redis"

// RedisEventPublisher publishes board events on a Redis pub/sub channel
type RedisEventPublisher struct {
	redis   *redis.Client
	channel string
	timeout time.Duration
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// redisEventMessage is the JSON published for each event
type redisEventMessage struct {
	domain.Event
	Message string `json:"message"`
}

// NewRedisEventPublisher creates a publisher bound to a channel
func NewRedisEventPublisher(rdb *redis.Client, channel string, logger *zap.Logger, m *metrics.Metrics) *RedisEventPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisEventPublisher{
		redis:   rdb,
		channel: channel,
		timeout: 2 * time.Second,
		logger:  logger,
		metrics: m,
	}
}

// Notify publishes the event. Failures are logged and never returned.
func (p *RedisEventPublisher) Notify(ctx context.Context, ev domain.Event) {
	data, err := json.Marshal(redisEventMessage{Event: ev, Message: ev.Message()})
	if err != nil {
		p.logger.Error("Failed to marshal board event", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.redis.Publish(ctx, p.channel, data).Err(); err != nil {
		p.logger.Warn("Failed to publish board event to Redis",
			zap.Error(err),
			zap.String("channel", p.channel),
			zap.String("type", string(ev.Type)),
		)
		return
	}

	if p.metrics != nil {
		p.metrics.RecordEventPublished(redisSinkName, string(ev.Type))
	}
}
