package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// NewRedisClient connects to the configured redis instance. Returns nil
// when no address is configured or the server is unreachable; callers
// treat a nil client as "rate limiting disabled".
func NewRedisClient(addr string) *redis.Client {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unreachable at %s, rate limiting disabled: %v", addr, err)
		return nil
	}
	return client
}

// RateLimitMiddleware enforces a fixed window of rpm requests per client
// IP per minute, counted in redis so the limit holds across replicas.
// Redis errors fail open: the request proceeds.
func RateLimitMiddleware(rdb *redis.Client, rpm int) gin.HandlerFunc {
	if rdb == nil || rpm <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		window := time.Now().Unix() / 60
		key := fmt.Sprintf("ratelimit:%s:%d", c.ClientIP(), window)

		pipe := rdb.TxPipeline()
		count := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, time.Minute)
		if _, err := pipe.Exec(ctx); err != nil {
			c.Next()
			return
		}

		if count.Val() > int64(rpm) {
			retry := 60 - time.Now().Unix()%60
			c.Header("Retry-After", fmt.Sprintf("%d", retry))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate_limit_exceeded",
			})
			return
		}

		c.Next()
	}
}
