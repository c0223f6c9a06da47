package middleware

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/docshare/internal/pkg/constants"
	"github.com/piresc/docshare/internal/pkg/logger"
	"github.com/piresc/docshare/internal/utils"
	"golang.org/x/time/rate"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	Name        string // bucket name, part of the Redis key
	RedisClient *redis.Client
	Limit       int
	Period      time.Duration
	Message     string
	// KeyFunc identifies the caller; defaults to the client IP
	KeyFunc func(c echo.Context) string
}

type limitResult struct {
	allowed   bool
	remaining int
	reset     time.Time
}

type limiter interface {
	allow(ctx context.Context, key string) (limitResult, error)
}

// RateLimiterMiddleware enforces Limit requests per Period per caller. With a Redis
// client the window is shared across instances; without one each process keeps its own.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	if config.Limit <= 0 || config.Period <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	if config.KeyFunc == nil {
		config.KeyFunc = func(c echo.Context) string { return c.RealIP() }
	}
	if config.Message == "" {
		config.Message = "Too many requests, please try again later."
	}

	var l limiter
	if config.RedisClient != nil {
		l = &redisLimiter{client: config.RedisClient, limit: config.Limit, period: config.Period}
	} else {
		l = newLocalLimiter(config.Limit, config.Period)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := constants.RateLimitKey(config.Name, config.KeyFunc(c))

			res, err := l.allow(c.Request().Context(), key)
			if err != nil {
				// fail open; the limiter must not take the API down with it
				logger.Warn("Rate limiter unavailable",
					logger.String("bucket", config.Name),
					logger.Err(err))
				return next(c)
			}

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(res.remaining))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.reset.Unix(), 10))

			if !res.allowed {
				retryAfter := int(time.Until(res.reset).Seconds() + 0.999)
				if retryAfter < 1 {
					retryAfter = 1
				}
				return utils.TooManyRequestsResponse(c, config.Message, retryAfter)
			}
			return next(c)
		}
	}
}

// redisLimiter is a fixed window counter
type redisLimiter struct {
	client *redis.Client
	limit  int
	period time.Duration
}

func (l *redisLimiter) allow(ctx context.Context, key string) (limitResult, error) {
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return limitResult{}, err
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.period).Err(); err != nil {
			return limitResult{}, err
		}
	}

	ttl, err := l.client.TTL(ctx, key).Result()
	if err != nil {
		return limitResult{}, err
	}
	if ttl < 0 {
		// lost expiry; restart the window
		if err := l.client.Expire(ctx, key, l.period).Err(); err != nil {
			logger.Warn("Rate limiter failed to restore expiry",
				logger.String("key", key),
				logger.Err(err))
		}
		ttl = l.period
	}

	remaining := l.limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return limitResult{
		allowed:   int(count) <= l.limit,
		remaining: remaining,
		reset:     time.Now().Add(ttl),
	}, nil
}

type localEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// localLimiter is a per-process token bucket with the same budget
type localLimiter struct {
	mu       sync.Mutex
	entries  map[string]*localEntry
	limit    int
	period   time.Duration
	every    rate.Limit
	lastScan time.Time
	now      func() time.Time
}

func newLocalLimiter(limit int, period time.Duration) *localLimiter {
	return &localLimiter{
		entries: make(map[string]*localEntry),
		limit:   limit,
		period:  period,
		every:   rate.Every(period / time.Duration(limit)),
		now:     time.Now,
	}
}

func (l *localLimiter) allow(ctx context.Context, key string) (limitResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.evict(now)

	e, ok := l.entries[key]
	if !ok {
		e = &localEntry{limiter: rate.NewLimiter(l.every, l.limit)}
		l.entries[key] = e
	}
	e.lastSeen = now

	if e.limiter.AllowN(now, 1) {
		remaining := int(e.limiter.TokensAt(now))
		missing := float64(l.limit) - e.limiter.TokensAt(now)
		return limitResult{
			allowed:   true,
			remaining: remaining,
			reset:     now.Add(time.Duration(missing * float64(l.period) / float64(l.limit))),
		}, nil
	}

	r := e.limiter.ReserveN(now, 1)
	delay := r.DelayFrom(now)
	r.CancelAt(now)
	return limitResult{allowed: false, remaining: 0, reset: now.Add(delay)}, nil
}

// evict drops idle callers at most once per period
func (l *localLimiter) evict(now time.Time) {
	if now.Sub(l.lastScan) < l.period {
		return
	}
	l.lastScan = now
	for key, e := range l.entries {
		if now.Sub(e.lastSeen) >= l.period {
			delete(l.entries, key)
		}
	}
}
