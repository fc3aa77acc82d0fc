package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// GetJSON lê a chave e decodifica o JSON em dest.
// Devolve (false, nil) num miss e (false, err) quando o Redis ou o JSON falham.
func GetJSON(ctx context.Context, c Client, key string, dest interface{}) (bool, error) {
	raw, err := c.Get(ctx, key)
	if errors.Is(err, ErrCacheMiss) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON serializa value e grava com expiração.
func SetJSON(ctx context.Context, c Client, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, data, ttl)
}
