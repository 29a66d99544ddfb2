package ratelimit

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Limiter enforces a daily request budget per API key using a redis
// counter. When redis is unconfigured or unreachable the limiter fails
// open: lineup generation keeps working, only enforcement is lost.
type Limiter struct {
	client *redis.Client
}

// NewFromEnv builds a limiter from REDIS_URL. Returns a disabled limiter
// when the variable is unset or unparseable.
func NewFromEnv() *Limiter {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		return &Limiter{}
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		logrus.WithError(err).Warn("Invalid REDIS_URL, rate limiting disabled")
		return &Limiter{}
	}

	return &Limiter{client: redis.NewClient(opts)}
}

// Enabled reports whether enforcement is active.
func (l *Limiter) Enabled() bool {
	return l.client != nil
}

// Allow increments today's counter for the key and reports whether the
// request stays within limit. The counter expires at the end of the day.
func (l *Limiter) Allow(ctx context.Context, keyID uint, limit int) bool {
	if l.client == nil {
		return true
	}

	now := time.Now()
	counterKey := fmt.Sprintf("ratelimit:%d:%s", keyID, now.Format("2006-01-02"))

	count, err := l.client.Incr(ctx, counterKey).Result()
	if err != nil {
		logrus.WithError(err).Warn("Rate limit check failed, allowing request")
		return true
	}

	if count == 1 {
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Add(24 * time.Hour)
		l.client.ExpireAt(ctx, counterKey, midnight)
	}

	return count <= int64(limit)
}
