package events

import "context"

// Publisher delivers catalog and stock events to a broker. Implementations
// must be safe for concurrent use by request handlers.
type Publisher interface {
	Publish(ctx context.Context, exchange string, event *Event, headers Headers) error
	Close() error
}
