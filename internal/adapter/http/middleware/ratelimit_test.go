package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vending-machine/internal/adapter/http/middleware"
	redisStore "vending-machine/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitRouter(store middleware.Limiter, before ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(before...)

	rule := middleware.RateLimitRule{Limit: 3, Window: time.Minute}
	r.GET("/test", middleware.RateLimiter(store, "panel", rule, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	return r
}

func newRedisStore(t *testing.T) *redisStore.RateLimitStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisStore.NewRateLimitStore(client)
}

func get(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "/test", nil)
	req.RemoteAddr = remoteAddr
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	router := setupRateLimitRouter(newRedisStore(t))

	for i := 0; i < 3; i++ {
		w := get(router, "10.0.0.1:1234")
		assert.Equal(t, 200, w.Code, "request %d should succeed", i+1)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	router := setupRateLimitRouter(newRedisStore(t))

	for i := 0; i < 3; i++ {
		get(router, "10.0.0.1:1234")
	}

	w := get(router, "10.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "RATE_001")

	// Another client is unaffected.
	assert.Equal(t, http.StatusOK, get(router, "10.0.0.2:1234").Code)
}

func TestRateLimiter_KeysOperatorsByName(t *testing.T) {
	asOperator := func(name string) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set(middleware.CtxOperator, name)
			c.Next()
		}
	}
	store := newRedisStore(t)
	tech := setupRateLimitRouter(store, asOperator("tech"))
	other := setupRateLimitRouter(store, asOperator("other"))

	for i := 0; i < 3; i++ {
		get(tech, "10.0.0.1:1234")
	}
	assert.Equal(t, http.StatusTooManyRequests, get(tech, "10.0.0.9:1234").Code)
	assert.Equal(t, http.StatusOK, get(other, "10.0.0.1:1234").Code)
}

type brokenLimiter struct{}

func (brokenLimiter) Allow(context.Context, string, int64, time.Duration) (*redisStore.RateLimitResult, error) {
	return nil, errors.New("connection refused")
}

func TestRateLimiter_DegradedMode(t *testing.T) {
	router := setupRateLimitRouter(brokenLimiter{})

	w := get(router, "10.0.0.1:1234")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimitRules(t *testing.T) {
	rules := middleware.RateLimitRules(120, 10, 60)

	assert.Len(t, rules, 3)
	assert.Equal(t, middleware.RateLimitRule{Limit: 120, Window: time.Minute}, rules["panel"])
	assert.Equal(t, int64(10), rules["operator_login"].Limit)
	assert.Equal(t, int64(60), rules["operator"].Limit)
}
