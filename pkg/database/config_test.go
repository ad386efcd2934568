package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv_PoolSizedFromWorkers(t *testing.T) {
	t.Setenv("WORKER_COUNT", "8")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)

	// 8 workers plus headroom for the API and the sweeper.
	assert.Equal(t, 14, cfg.MaxOpenConns)
	assert.Equal(t, 8, cfg.MaxIdleConns)
}

func TestLoadConfigFromEnv_ExplicitPoolSizeWins(t *testing.T) {
	t.Setenv("WORKER_COUNT", "8")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("DB_MAX_IDLE_CONNS", "3")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.MaxOpenConns)
	assert.Equal(t, 3, cfg.MaxIdleConns)
}

func TestLoadConfigFromEnv_RejectsBadPort(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-port")

	_, err := LoadConfigFromEnv()
	assert.Error(t, err)
}
