package events

import (
	"context"

	"go.uber.org/zap"
)

// EventCounter receives one call per published event.
type EventCounter interface {
	RecordEvent(eventType string)
}

// RegisterObserver subscribes a handler that counts and logs every event type.
func RegisterObserver(d Dispatcher, counter EventCounter, logger *zap.Logger) {
	handler := func(_ context.Context, e Event) error {
		counter.RecordEvent(string(e.Type))
		logger.Info("domain event",
			zap.String("event_id", e.ID),
			zap.String("event_type", string(e.Type)),
			zap.String("reference", e.Reference),
			zap.String("actor", e.Actor.Name),
			zap.Any("payload", e.Payload),
		)
		return nil
	}
	for _, t := range AllEventTypes {
		d.Subscribe(t, handler)
	}
}
