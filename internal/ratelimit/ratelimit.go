package ratelimit

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Limiter paces navigations against the target site.
type Limiter interface {
	Wait(ctx context.Context) error
}

// SimpleLimiter enforces a minimum gap between actions, with optional
// jitter up to the maximum gap so requests do not land on a fixed beat.
type SimpleLimiter struct {
	minDelay   time.Duration
	maxDelay   time.Duration
	lastAction time.Time
	mu         sync.Mutex
}

func NewSimpleLimiter(minDelay, maxDelay time.Duration) *SimpleLimiter {
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	return &SimpleLimiter{
		minDelay: minDelay,
		maxDelay: maxDelay,
	}
}

func (l *SimpleLimiter) Wait(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	elapsed := time.Since(l.lastAction)
	delay := l.calculateDelay()

	if elapsed < delay {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay - elapsed):
		}
	}

	l.lastAction = time.Now()
	return nil
}

func (l *SimpleLimiter) calculateDelay() time.Duration {
	if l.maxDelay <= l.minDelay {
		return l.minDelay
	}
	jitter := time.Duration(rand.Int63n(int64(l.maxDelay - l.minDelay)))
	return l.minDelay + jitter
}
