package service

import (
	"context"

	"kanban-board-api/internal/domain"
)

// NotificationSink receives one event per successful board mutation.
// Implementations must return quickly; the engine calls Notify while holding its write lock.
type NotificationSink interface {
	Notify(ctx context.Context, event domain.Event)
}

// MultiSink fans an event out to every sink in order
type MultiSink []NotificationSink

// Notify forwards the event to each non-nil sink
func (m MultiSink) Notify(ctx context.Context, event domain.Event) {
	for _, sink := range m {
		if sink != nil {
			sink.Notify(ctx, event)
		}
	}
}

// NopSink discards every event
type NopSink struct{}

// Notify does nothing
func (NopSink) Notify(context.Context, domain.Event) {}

// SinkFunc adapts a function to NotificationSink
type SinkFunc func(ctx context.Context, event domain.Event)

// Notify calls f
func (f SinkFunc) Notify(ctx context.Context, event domain.Event) {
	f(ctx, event)
}
