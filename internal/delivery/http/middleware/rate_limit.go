package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-resume-tracker/internal/delivery/http/response"
	"go-resume-tracker/pkg/redis"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	Limit     int
	Window    time.Duration
	KeyPrefix string
	// FailClosed rejects requests when Redis is unavailable instead of
	// falling back to the in-memory counter
	FailClosed bool
}

// GlobalRateLimitConfig returns defaults for general API traffic
func GlobalRateLimitConfig(limit, windowSeconds int) RateLimitConfig {
	return RateLimitConfig{
		Limit:      limit,
		Window:     time.Duration(windowSeconds) * time.Second,
		KeyPrefix:  "rl:ip:",
		FailClosed: false,
	}
}

// AuthRateLimitConfig returns a strict config for authentication endpoints
func AuthRateLimitConfig(limit, windowSeconds int) RateLimitConfig {
	return RateLimitConfig{
		Limit:      limit,
		Window:     time.Duration(windowSeconds) * time.Second,
		KeyPrefix:  "rl:auth:",
		FailClosed: true,
	}
}

// Lua script for atomic increment with TTL set on first increment.
// KEYS[1] = counter key, ARGV[1] = TTL in seconds.
// Returns the current count.
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

var (
	rateLimitStore sync.Map
	cleanupOnce    sync.Once
)

func startCleanup() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		for range ticker.C {
			now := time.Now()
			rateLimitStore.Range(func(key, value interface{}) bool {
				entry := value.(*rateLimitEntry)
				entry.mu.Lock()
				if now.After(entry.resetAt) {
					rateLimitStore.Delete(key)
				}
				entry.mu.Unlock()
				return true
			})
		}
	}()
}

// RateLimit limits requests per client IP over a fixed window. The counter
// lives in Redis when available so the limit holds across replicas; the
// in-memory fallback keeps single-instance deployments protected.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	cleanupOnce.Do(startCleanup)

	return func(c *gin.Context) {
		key := cfg.KeyPrefix + c.ClientIP()

		if client := redis.Client(); client != nil {
			count, err := countRedis(c, client, key, cfg)
			if err != nil {
				if cfg.FailClosed {
					response.Error(c, http.StatusServiceUnavailable, "Rate limiter unavailable", nil)
					c.Abort()
					return
				}
				count = countInMemory(key, cfg)
			}
			if count > cfg.Limit {
				tooManyRequests(c, cfg)
				return
			}
			c.Next()
			return
		}

		if countInMemory(key, cfg) > cfg.Limit {
			tooManyRequests(c, cfg)
			return
		}
		c.Next()
	}
}

func countRedis(c *gin.Context, client *goredis.Client, key string, cfg RateLimitConfig) (int, error) {
	result, err := client.Eval(c.Request.Context(), rateLimitLuaScript,
		[]string{key}, int(cfg.Window.Seconds())).Int()
	if err != nil {
		return 0, err
	}
	return result, nil
}

func countInMemory(key string, cfg RateLimitConfig) int {
	now := time.Now()
	value, _ := rateLimitStore.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(cfg.Window)})
	entry := value.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(cfg.Window)
	}
	entry.count++
	return entry.count
}

func tooManyRequests(c *gin.Context, cfg RateLimitConfig) {
	c.Header("Retry-After", strconv.Itoa(int(cfg.Window.Seconds())))
	response.Error(c, http.StatusTooManyRequests, "Too many requests. Please try again later.", nil)
	c.Abort()
}
