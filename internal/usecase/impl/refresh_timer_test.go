package impl

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshTimer_StartIsIdempotent(t *testing.T) {
	var calls atomic.Int32
	timer := newRefreshTimer(10*time.Millisecond, func(context.Context) error {
		calls.Add(1)

		return nil
	}, discardLogger())

	timer.Start()
	timer.Start()
	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	timer.Stop()
	assert.False(t, timer.Running())

	stopped := calls.Load()
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, stopped, calls.Load())
}

func TestRefreshTimer_CancelFromInsideTick(t *testing.T) {
	var timer *refreshTimer
	var calls atomic.Int32
	timer = newRefreshTimer(5*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		timer.Cancel()

		return errors.New("refresh failed")
	}, discardLogger())

	timer.Start()
	require.Eventually(t, func() bool { return !timer.Running() }, time.Second, 5*time.Millisecond)

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	// Stop after Cancel is a no-op
	timer.Stop()
}

func TestRefreshTimer_TickContextIsCancelledOnStop(t *testing.T) {
	entered := make(chan struct{})
	var sawCancel atomic.Bool
	timer := newRefreshTimer(5*time.Millisecond, func(ctx context.Context) error {
		select {
		case entered <- struct{}{}:
		default:
		}
		<-ctx.Done()
		sawCancel.Store(true)

		return ctx.Err()
	}, discardLogger())

	timer.Start()
	<-entered
	timer.Stop()

	assert.True(t, sawCancel.Load())
}
