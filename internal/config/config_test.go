package config_test

import (
	"os"
	"testing"

	"github.com/aretw0/dfasim/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"SOURCE", "LOG_LEVEL", "LOG_FORMAT", "TRACE", "HTTP_ADDR", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "REDIS_PREFIX"} {
		key := config.Prefix + k
		if old, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, old) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Source)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.False(t, cfg.Trace)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "dfasim:definition:", cfg.Redis.Prefix)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load("testdata/.env.test")
	require.NoError(t, err)

	assert.Equal(t, "testdata/binary.csv", cfg.Source)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Trace)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.Prefix+"SOURCE", "from-env.yaml")

	cfg, err := config.Load("testdata/.env.test")
	require.NoError(t, err)
	assert.Equal(t, "from-env.yaml", cfg.Source)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := config.Load("testdata/missing.env")
	assert.Error(t, err)

	_, err = config.Load("testdata/.env.broken")
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}
