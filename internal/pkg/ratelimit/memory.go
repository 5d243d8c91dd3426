package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter 进程内实现，单实例部署和测试用。
// 计数只在窗口过期时惰性清理。
type MemoryLimiter struct {
	mu          sync.Mutex
	records     map[string]*record
	maxAttempts int
	window      time.Duration
}

type record struct {
	count   int
	startAt time.Time
}

func NewMemoryLimiter(maxAttempts int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		records:     make(map[string]*record),
		maxAttempts: maxAttempts,
		window:      window,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, identifier string) (Result, error) {
	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()
	r, ok := l.records[identifier]
	if !ok || now.Sub(r.startAt) > l.window {
		l.records[identifier] = &record{count: 1, startAt: now}
		return Result{
			Allowed:   true,
			Remaining: l.maxAttempts - 1,
			ResetAt:   now.Add(l.window),
		}, nil
	}
	resetAt := r.startAt.Add(l.window)
	if r.count >= l.maxAttempts {
		return Result{Allowed: false, Remaining: 0, ResetAt: resetAt}, nil
	}
	r.count++
	return Result{
		Allowed:   true,
		Remaining: l.maxAttempts - r.count,
		ResetAt:   resetAt,
	}, nil
}

func (l *MemoryLimiter) Clear(_ context.Context, identifier string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.records, identifier)
	return nil
}
