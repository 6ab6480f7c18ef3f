package events

import (
	"context"

	"go.uber.org/zap"
)

// Emit publishes a v1 event on exchange. Failures are logged and swallowed so
// that a broker outage never fails the write that produced the event. A nil
// publisher is a no-op.
func Emit(ctx context.Context, publisher Publisher, exchange, name string, payload any) {
	if publisher == nil {
		return
	}

	headers := NewHeaders(Source)

	event, err := NewEvent(name, EventVersionV1, payload, headers)
	if err != nil {
		zap.L().Error("Failed to build event", zap.String("event", name), zap.Error(err))
		return
	}

	if err := publisher.Publish(ctx, exchange, event, headers); err != nil {
		zap.L().Error("Failed to publish event",
			zap.String("event", name),
			zap.String("exchange", exchange),
			zap.String("traceId", headers.TraceID),
			zap.Error(err),
		)
	}
}
