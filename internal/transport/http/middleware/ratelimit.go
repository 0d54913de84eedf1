package middleware

import (
	"context"
	"time"

	"github.com/josefahaz/bucksportbaseball/config"
	"github.com/josefahaz/bucksportbaseball/internal/api"

	"github.com/gofiber/fiber/v2"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimiter counts requests per client IP in Redis. A nil limiter allows everything.
type RateLimiter struct {
	client *redis.Client
	log    *zap.SugaredLogger
	prefix string
	limit  int
	window time.Duration
}

// NewRateLimiter connects to Redis, or returns nil when no address is configured.
func NewRateLimiter(log *zap.SugaredLogger, cfg config.RedisConfig) (*RateLimiter, error) {
	if cfg.Addr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &RateLimiter{
		client: client,
		log:    log.Named("ratelimit"),
		prefix: "bucksport:ratelimit:",
		limit:  cfg.LoginLimit,
		window: cfg.LoginWindow,
	}, nil
}

// Close releases the Redis connection.
func (rl *RateLimiter) Close() {
	if rl != nil && rl.client != nil {
		_ = rl.client.Close()
	}
}

// allow increments the counter for key and reports whether it is within the limit.
// Redis failures allow the request rather than blocking logins.
func (rl *RateLimiter) allow(key string) bool {
	if rl.limit <= 0 {
		return true
	}
	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()

	redisKey := rl.prefix + key
	counter, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		rl.log.Errorw("redis incr failed", "error", err)
		return true
	}
	if counter == 1 {
		if err := rl.client.Expire(ctx, redisKey, rl.window).Err(); err != nil {
			rl.log.Errorw("redis expire failed", "error", err)
		}
	}
	return int(counter) <= rl.limit
}

// LoginRateLimit throttles login attempts per client IP.
func LoginRateLimit(rl *RateLimiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rl == nil {
			return c.Next()
		}
		if !rl.allow(c.IP()) {
			return c.Status(fiber.StatusTooManyRequests).JSON(api.ErrorResponse{
				Error: api.ErrorBody{Code: api.CodeRateLimited, Message: "too many login attempts"},
			})
		}
		return c.Next()
	}
}
