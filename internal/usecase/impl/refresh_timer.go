package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pos/internal/util"
)

// refreshTimer runs the proactive refresh loop. At most one loop runs at a time.
type refreshTimer struct {
	interval time.Duration
	refresh  func(ctx context.Context) error
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func newRefreshTimer(interval time.Duration, refresh func(ctx context.Context) error, logger *slog.Logger) *refreshTimer {
	return &refreshTimer{
		interval: interval,
		refresh:  refresh,
		logger:   logger,
	}
}

// Start launches the loop unless it is already running
func (t *refreshTimer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	t.cancel = cancel
	t.done = done

	go t.loop(ctx, done)
	t.logger.Debug("Proactive refresh scheduled", slog.String("interval", util.FormatDuration(t.interval)))
}

func (t *refreshTimer) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// a tick may race with cancellation
			if ctx.Err() != nil {
				return
			}
			if err := t.refresh(ctx); err != nil {
				t.logger.Warn("Proactive refresh failed", slog.Any("error", err))
			}
		}
	}
}

// Cancel stops the loop without waiting. Safe to call from the loop goroutine itself.
func (t *refreshTimer) Cancel() <-chan struct{} {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	return done
}

// Stop cancels the loop and waits until it has exited, so no tick fires afterwards
func (t *refreshTimer) Stop() {
	if done := t.Cancel(); done != nil {
		<-done
	}
}

// Running reports whether a loop is scheduled
func (t *refreshTimer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.cancel != nil
}
