package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_Allow(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name          string
		maxAttempts   int
		attempts      int
		wantAllowed   bool
		wantRemaining int
	}{
		{
			name:          "第一次尝试",
			maxAttempts:   5,
			attempts:      1,
			wantAllowed:   true,
			wantRemaining: 4,
		},
		{
			name:          "用完最后一次",
			maxAttempts:   5,
			attempts:      5,
			wantAllowed:   true,
			wantRemaining: 0,
		},
		{
			name:          "超出限制",
			maxAttempts:   5,
			attempts:      6,
			wantAllowed:   false,
			wantRemaining: 0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewMemoryLimiter(tc.maxAttempts, time.Minute)
			var res Result
			var err error
			for i := 0; i < tc.attempts; i++ {
				res, err = l.Allow(context.Background(), "student@example.com")
				require.NoError(t, err)
			}
			assert.Equal(t, tc.wantAllowed, res.Allowed)
			assert.Equal(t, tc.wantRemaining, res.Remaining)
			assert.False(t, res.ResetAt.IsZero())
		})
	}
}

func TestMemoryLimiter_WindowExpiry(t *testing.T) {
	t.Parallel()
	l := NewMemoryLimiter(1, 10*time.Millisecond)
	res, err := l.Allow(context.Background(), "id")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	res, err = l.Allow(context.Background(), "id")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	time.Sleep(20 * time.Millisecond)
	// 窗口过期之后重新计数
	res, err = l.Allow(context.Background(), "id")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}

func TestMemoryLimiter_Clear(t *testing.T) {
	t.Parallel()
	l := NewMemoryLimiter(1, time.Minute)
	_, err := l.Allow(context.Background(), "id")
	require.NoError(t, err)
	require.NoError(t, l.Clear(context.Background(), "id"))
	res, err := l.Allow(context.Background(), "id")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}
