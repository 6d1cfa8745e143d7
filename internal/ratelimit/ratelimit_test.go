package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitWithoutDelayReturnsImmediately(t *testing.T) {
	l := NewSimpleLimiter(0, 0)

	start := time.Now()
	require.NoError(t, l.Wait(context.Background()))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestWaitEnforcesMinimumGap(t *testing.T) {
	l := NewSimpleLimiter(50*time.Millisecond, 50*time.Millisecond)

	require.NoError(t, l.Wait(context.Background()))
	start := time.Now()
	require.NoError(t, l.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestWaitRespectsCancellation(t *testing.T) {
	l := NewSimpleLimiter(time.Hour, time.Hour)
	require.NoError(t, l.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, l.Wait(ctx), context.Canceled)
}

func TestMaxDelayClampedToMin(t *testing.T) {
	l := NewSimpleLimiter(20*time.Millisecond, 5*time.Millisecond)
	assert.Equal(t, 20*time.Millisecond, l.calculateDelay())
}
