package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/educraft-backend/internal/logger"
	"github.com/yungbote/educraft-backend/internal/utils"
)

// RateLimiter counts hits per key inside a fixed window. Used to keep the
// generation endpoint from hammering the model provider.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	Close() error
}

type rateLimiter struct {
	log *logger.Logger
	rdb *goredis.Client
}

func NewRateLimiter(log *logger.Logger) (RateLimiter, error) {
	addr := strings.TrimSpace(utils.GetEnv("REDIS_ADDR", "localhost:6379", log))

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &rateLimiter{
		log: log.With("service", "RedisRateLimiter"),
		rdb: rdb,
	}, nil
}

func (r *rateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	if limit <= 0 {
		return true, nil
	}

	redisKey := "ratelimit:" + key
	count, err := r.rdb.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("redis incr: %w", err)
	}
	if count == 1 {
		if err := r.rdb.Expire(ctx, redisKey, window).Err(); err != nil {
			return false, fmt.Errorf("redis expire: %w", err)
		}
	}

	return count <= int64(limit), nil
}

func (r *rateLimiter) Close() error {
	return r.rdb.Close()
}
