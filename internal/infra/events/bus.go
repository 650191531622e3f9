// Package events implements the in-process session event bus.
package events

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"pos/internal/domain/entity"
	"pos/internal/domain/service"

	"go.uber.org/fx"
)

type subscription struct {
	id      uint64
	kinds   []entity.EventKind
	handler service.EventHandler
}

type bus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   []subscription
	closed bool
	logger *slog.Logger
	now    func() time.Time
}

// BusParams holds dependencies for the event bus, injected by Fx
type BusParams struct {
	fx.In

	Lc     fx.Lifecycle
	Logger *slog.Logger
}

// NewBus creates the event bus and closes it on shutdown
func NewBus(params BusParams) service.EventBus {
	b := New(params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return b.Close()
		},
	})

	return b
}

// New creates an event bus without lifecycle wiring
func New(logger *slog.Logger) service.EventBus {
	return &bus{logger: logger, now: time.Now}
}

func (b *bus) Publish(ctx context.Context, event entity.Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = b.now()
	}

	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()

		return
	}
	handlers := make([]service.EventHandler, 0, len(b.subs))
	for _, sub := range b.subs {
		if slices.Contains(sub.kinds, event.Kind) {
			handlers = append(handlers, sub.handler)
		}
	}
	b.mu.RUnlock()

	b.logger.Debug("Publishing session event",
		slog.String("kind", string(event.Kind)),
		slog.String("reason", event.Reason),
		slog.Int("handlers", len(handlers)),
	)

	// handlers run outside the lock so they may subscribe, unsubscribe or publish
	for _, handler := range handlers {
		handler(ctx, event)
	}
}

func (b *bus) Subscribe(handler service.EventHandler, kinds ...entity.EventKind) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, kinds: kinds, handler: handler})

	var once sync.Once

	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			b.subs = slices.DeleteFunc(b.subs, func(s subscription) bool { return s.id == id })
		})
	}
}

func (b *bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	b.subs = nil

	return nil
}
