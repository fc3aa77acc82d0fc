package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"beltstock/internal/pkg/logger"
	"beltstock/internal/pkg/middleware"
)

// MockCache é uma implementação mock de cache.Client.
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return m.Called(ctx, key, value, expiration).Error(0)
}

func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}

func (m *MockCache) GetInt(ctx context.Context, key string) (int, error) {
	args := m.Called(ctx, key)
	return args.Int(0), args.Error(1)
}

func (m *MockCache) Incr(ctx context.Context, key string, expiration time.Duration) (int, error) {
	args := m.Called(ctx, key, expiration)
	return args.Int(0), args.Error(1)
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func serve(h http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/v1/stocks", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_UnderLimit(t *testing.T) {
	mockCache := new(MockCache)
	mockCache.On("Incr", mock.Anything, "rate-limit:10.0.0.1", time.Minute).Return(3, nil)

	rec := serve(middleware.RateLimiter(mockCache, 5, time.Minute, logger.Nop())(okHandler))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Remaining"))
	mockCache.AssertExpectations(t)
}

func TestRateLimiter_OverLimit(t *testing.T) {
	mockCache := new(MockCache)
	mockCache.On("Incr", mock.Anything, "rate-limit:10.0.0.1", time.Minute).Return(6, nil)

	rec := serve(middleware.RateLimiter(mockCache, 5, time.Minute, logger.Nop())(okHandler))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
}

func TestRateLimiter_CacheDownLetsRequestThrough(t *testing.T) {
	mockCache := new(MockCache)
	mockCache.On("Incr", mock.Anything, mock.Anything, mock.Anything).Return(0, errors.New("connection refused"))

	rec := serve(middleware.RateLimiter(mockCache, 5, time.Minute, logger.Nop())(okHandler))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestObserve_PassesStatusThrough(t *testing.T) {
	teapot := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := serve(middleware.Observe(logger.Nop())(teapot))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestChain_OrderIsOutermostFirst(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	serve(middleware.Chain(okHandler, mark("a"), mark("b")))

	assert.Equal(t, []string{"a", "b"}, order)
}
