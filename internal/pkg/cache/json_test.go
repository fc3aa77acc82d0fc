package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beltstock/internal/pkg/cache"
)

// memCache é um cache.Client em memória para os testes.
type memCache struct {
	data map[string]string
	fail error
}

func newMem() *memCache { return &memCache{data: map[string]string{}} }

func (m *memCache) Get(_ context.Context, key string) (string, error) {
	if m.fail != nil {
		return "", m.fail
	}
	v, ok := m.data[key]
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return v, nil
}

func (m *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	switch v := value.(type) {
	case []byte:
		m.data[key] = string(v)
	case string:
		m.data[key] = v
	}
	return nil
}

func (m *memCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memCache) GetInt(context.Context, string) (int, error) { return 0, cache.ErrCacheMiss }

func (m *memCache) Incr(context.Context, string, time.Duration) (int, error) { return 1, nil }

type stock struct {
	ID    string   `json:"_id"`
	Sizes []string `json:"sizes"`
}

func TestJSON_RoundTripThroughCache(t *testing.T) {
	c := newMem()
	ctx := context.Background()

	require.NoError(t, cache.SetJSON(ctx, c, "stock:1", stock{ID: "1", Sizes: []string{"40"}}, time.Minute))

	var got stock
	hit, err := cache.GetJSON(ctx, c, "stock:1", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []string{"40"}, got.Sizes)
}

func TestGetJSON_MissIsNotAnError(t *testing.T) {
	var got stock
	hit, err := cache.GetJSON(context.Background(), newMem(), "stock:2", &got)

	assert.NoError(t, err)
	assert.False(t, hit)
}

func TestGetJSON_PropagatesFailures(t *testing.T) {
	c := newMem()
	c.fail = errors.New("connection refused")

	var got stock
	hit, err := cache.GetJSON(context.Background(), c, "stock:3", &got)
	assert.Error(t, err)
	assert.False(t, hit)

	c.fail = nil
	c.data["stock:4"] = "{not json"
	hit, err = cache.GetJSON(context.Background(), c, "stock:4", &got)
	assert.Error(t, err)
	assert.False(t, hit)
}
