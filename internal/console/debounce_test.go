package console

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncerFiresOnceWithLastValue(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	var calls int32
	var last atomic.Value
	for _, v := range []string{"B", "Bo", "Bon"} {
		value := v
		d.Trigger(func() {
			atomic.AddInt32(&calls, 1)
			last.Store(value)
		})
		time.Sleep(5 * time.Millisecond)
	}
	assert.True(t, d.Pending())

	require.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, "Bon", last.Load())
	assert.False(t, d.Pending())
}

func TestDebouncerStopDropsPending(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var calls int32
	d.Trigger(func() { atomic.AddInt32(&calls, 1) })
	d.Stop()
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestDebouncerDefaultDelay(t *testing.T) {
	assert.Equal(t, 500*time.Millisecond, NewDebouncer(0).Delay())
}

func TestGenerationCancelsSuperseded(t *testing.T) {
	var g generation
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	first, t1 := g.begin(ctx)
	second, t2 := g.begin(ctx)

	assert.ErrorIs(t, first.Err(), context.Canceled)
	assert.NoError(t, second.Err())
	assert.False(t, g.current(t1))
	assert.True(t, g.current(t2))

	g.finish(t2)
	assert.Error(t, second.Err())
	g.stop()
	assert.False(t, g.current(t2))
}
