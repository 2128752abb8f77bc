package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter 滑动窗口限流：每个 key 在 window 内最多 limit 次
type RateLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	hits   map[string][]time.Time
	now    func() time.Time
}

// NewRateLimiter 创建限流器
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:  limit,
		window: window,
		hits:   make(map[string][]time.Time),
		now:    time.Now,
	}
}

// prune 移除窗口外的记录，调用方持有锁
func (l *RateLimiter) prune(key string, now time.Time) []time.Time {
	cutoff := now.Add(-l.window)
	ts := l.hits[key][:0]
	for _, t := range l.hits[key] {
		if t.After(cutoff) {
			ts = append(ts, t)
		}
	}
	if len(ts) == 0 {
		delete(l.hits, key)
		return nil
	}
	l.hits[key] = ts
	return ts
}

// Allow 记录一次请求，超过限额返回 false
func (l *RateLimiter) Allow(key string) bool {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()

	ts := l.prune(key, now)
	if len(ts) >= l.limit {
		return false
	}
	l.hits[key] = append(ts, now)
	return true
}

// Sweep 清理所有过期数据
func (l *RateLimiter) Sweep() {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()
	for key := range l.hits {
		l.prune(key, now)
	}
}

// Len 当前跟踪的 key 数量
func (l *RateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.hits)
}

// Run 定期清理过期数据，直到 ctx 结束
func (l *RateLimiter) Run(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Sweep()
		}
	}
}

// Middleware 按客户端 IP 限制写请求，GET/HEAD/OPTIONS 不受限制
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}
		if !l.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": "Too many requests, please try again later",
			})
			return
		}
		c.Next()
	}
}
