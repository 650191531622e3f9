package service

import (
	"context"

	"pos/internal/domain/entity"
)

// EventHandler receives events synchronously on the publisher's goroutine.
// Handlers must not block on work that itself waits for a publish to return.
type EventHandler func(ctx context.Context, event entity.Event)

// EventBus is the session-level publish/subscribe channel between components
type EventBus interface {
	// Publish delivers event to every handler subscribed to its kind, in subscription order
	Publish(ctx context.Context, event entity.Event)

	// Subscribe registers handler for the given kinds and returns a function that removes it
	Subscribe(handler EventHandler, kinds ...entity.EventKind) (unsubscribe func())

	// Close drops every subscription; later publishes are no-ops
	Close() error
}
