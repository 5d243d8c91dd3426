package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisLimiter struct {
	cmd         redis.Cmdable
	prefix      string
	maxAttempts int
	window      time.Duration
}

func NewRedisLimiter(cmd redis.Cmdable, prefix string, maxAttempts int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		cmd:         cmd,
		prefix:      prefix,
		maxAttempts: maxAttempts,
		window:      window,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, identifier string) (Result, error) {
	key := l.key(identifier)
	cnt, err := l.cmd.Incr(ctx, key).Result()
	if err != nil {
		return Result{}, err
	}
	if cnt == 1 {
		// 新窗口，设置过期时间。失败了也不影响计数本身
		if err = l.cmd.PExpire(ctx, key, l.window).Err(); err != nil {
			return Result{}, err
		}
	}
	ttl, err := l.cmd.PTTL(ctx, key).Result()
	if err != nil {
		return Result{}, err
	}
	resetAt := time.Now().Add(ttl)
	if cnt > int64(l.maxAttempts) {
		return Result{Allowed: false, Remaining: 0, ResetAt: resetAt}, nil
	}
	return Result{
		Allowed:   true,
		Remaining: l.maxAttempts - int(cnt),
		ResetAt:   resetAt,
	}, nil
}

func (l *RedisLimiter) Clear(ctx context.Context, identifier string) error {
	return l.cmd.Del(ctx, l.key(identifier)).Err()
}

func (l *RedisLimiter) key(identifier string) string {
	return fmt.Sprintf("%s:ratelimit:%s", l.prefix, identifier)
}
