package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"pos/config"
	"pos/internal/domain/entity"
	"pos/internal/domain/service"
	"pos/internal/infra/events"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Session.RefreshInterval = time.Hour
	cfg.Order = config.OrderConfig{TaxRate: "0.13", CurrencySymbol: "₡", DefaultLanguage: "es"}

	return cfg
}

type eventRecorder struct {
	mu     sync.Mutex
	events []entity.Event
}

func newBus() service.EventBus {
	return events.New(discardLogger())
}

func recordEvents(bus service.EventBus, kinds ...entity.EventKind) *eventRecorder {
	r := &eventRecorder{}
	bus.Subscribe(func(_ context.Context, event entity.Event) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.events = append(r.events, event)
	}, kinds...)

	return r
}

func (r *eventRecorder) Kinds() []entity.EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()

	kinds := make([]entity.EventKind, 0, len(r.events))
	for _, event := range r.events {
		kinds = append(kinds, event.Kind)
	}

	return kinds
}

func (r *eventRecorder) Events() []entity.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]entity.Event(nil), r.events...)
}
