package testutil

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
)

// PublishedEvent is an event captured by MockPublisher.
type PublishedEvent struct {
	RoutingKey string
	EventData  interface{}
	RawJSON    []byte
}

// MockPublisher records published events in memory.
// Setting Err makes every Publish call fail with it after recording.
type MockPublisher struct {
	mu     sync.RWMutex
	events []PublishedEvent
	Err    error
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{events: make([]PublishedEvent, 0)}
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, eventData interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, err := json.Marshal(eventData)
	if err != nil {
		return err
	}

	m.events = append(m.events, PublishedEvent{
		RoutingKey: routingKey,
		EventData:  eventData,
		RawJSON:    raw,
	})
	return m.Err
}

func (m *MockPublisher) Close() error {
	return nil
}

// Events returns a copy of every captured event.
func (m *MockPublisher) Events() []PublishedEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]PublishedEvent, len(m.events))
	copy(out, m.events)
	return out
}

// CountByKey returns the number of events with the routing key.
func (m *MockPublisher) CountByKey(routingKey string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, event := range m.events {
		if event.RoutingKey == routingKey {
			count++
		}
	}
	return count
}

// LastByKey returns the most recent event with the routing key, or nil.
func (m *MockPublisher) LastByKey(routingKey string) *PublishedEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.events) - 1; i >= 0; i-- {
		if m.events[i].RoutingKey == routingKey {
			event := m.events[i]
			return &event
		}
	}
	return nil
}

// AssertEventCount asserts the exact number of events with the routing key.
func (m *MockPublisher) AssertEventCount(t *testing.T, routingKey string, expected int) {
	t.Helper()

	if count := m.CountByKey(routingKey); count != expected {
		t.Errorf("Expected %d events with routing key '%s', got %d", expected, routingKey, count)
	}
}

// AssertNoEvents asserts that nothing was published.
func (m *MockPublisher) AssertNoEvents(t *testing.T) {
	t.Helper()

	if events := m.Events(); len(events) > 0 {
		t.Errorf("Expected no events, got %d (first: %s)", len(events), events[0].RoutingKey)
	}
}
