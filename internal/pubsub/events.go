// Package pubsub carries file change notifications from the watcher to the
// Bubble Tea update loop.
package pubsub

import (
	"context"
	"time"
)

// EventType says what happened to the watched file.
type EventType string

const (
	// ChangedEvent means the file was written or replaced.
	ChangedEvent EventType = "changed"
	// RemovedEvent means the file was removed or renamed away.
	RemovedEvent EventType = "removed"
)

// Event is a published notification with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber hands out subscription channels.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher sends events to every subscriber.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}
