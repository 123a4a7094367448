package messaging

import "context"

// PublisherInterface defines the contract for event publishing
type PublisherInterface interface {
	Publish(ctx context.Context, routingKey string, eventData interface{}) error
	Close() error
}

var (
	_ PublisherInterface = (*Publisher)(nil)
	_ PublisherInterface = NoopPublisher{}
)

// NoopPublisher drops every event. It is used when event publishing is disabled.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, interface{}) error { return nil }

func (NoopPublisher) Close() error { return nil }
