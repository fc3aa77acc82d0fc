package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beltstock/config"
)

func TestFromMap_Defaults(t *testing.T) {
	cfg, err := config.FromMap(map[string]interface{}{"DATABASE_URL": "postgres://localhost/stock"})

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.DBTimeout)
	assert.Equal(t, 300*time.Second, cfg.CacheTTL)
	assert.Equal(t, 100, cfg.RateLimitMaxRequests)
	assert.Equal(t, time.Minute, cfg.RateLimitPeriod)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "stock.movement", cfg.KafkaTopic)
}

func TestFromMap_Overrides(t *testing.T) {
	cfg, err := config.FromMap(map[string]interface{}{
		"DATABASE_URL":   "postgres://db/stock",
		"PORT":           "9090",
		"DB_TIMEOUT_SEC": "12",
		"KAFKA_BROKERS":  "k1:9092, k2:9092,",
	})

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 12*time.Second, cfg.DBTimeout)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
}

func TestFromMap_InvalidNumberFallsBackToDefault(t *testing.T) {
	cfg, err := config.FromMap(map[string]interface{}{
		"DATABASE_URL":            "postgres://db/stock",
		"RATE_LIMIT_MAX_REQUESTS": "muitos",
	})

	require.NoError(t, err)
	assert.Equal(t, 100, cfg.RateLimitMaxRequests)
}

func TestFromMap_RequiresDatabaseURL(t *testing.T) {
	_, err := config.FromMap(map[string]interface{}{})

	assert.ErrorContains(t, err, "DATABASE_URL")
}
