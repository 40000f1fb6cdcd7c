package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-service/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the yaml file", func(t *testing.T) {
		path := writeConfig(t, `
log-level: debug
http-port: "8080"
game-storage: memory
shutdown-timeout: 3s
redis:
  host: redis
  port: "6380"
sqlite-storage-path: /tmp/users.db
`)

		conf, err := config.Load(path)

		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, config.GameStorageMemory, conf.GameStorage)
		assert.Equal(t, 3*time.Second, conf.ShutdownTimeout)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, "/tmp/users.db", conf.SQLiteStoragePath)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "http-port: \"8080\"\n")
		t.Setenv("HTTP_PORT", "7070")
		t.Setenv("REDIS_HOST", "cache")

		conf, err := config.Load(path)

		require.NoError(t, err)
		assert.Equal(t, "7070", conf.HTTPPort)
		assert.Equal(t, "cache", conf.Redis.Host)
	})

	t.Run("Missing file falls back to the environment", func(t *testing.T) {
		t.Setenv("GAME_STORAGE", "memory")
		t.Setenv("LOG_LEVEL", "warn")

		conf, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))

		require.NoError(t, err)
		assert.Equal(t, config.GameStorageMemory, conf.GameStorage)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, 10*time.Second, conf.ShutdownTimeout)
	})

	t.Run("Rejects an unknown game storage", func(t *testing.T) {
		path := writeConfig(t, "game-storage: postgres\n")

		conf, err := config.Load(path)

		require.ErrorIs(t, err, config.ErrUnknownGameStorage)
		assert.Nil(t, conf)
	})
}

func TestMustLoad_Panics(t *testing.T) {
	path := writeConfig(t, "game-storage: postgres\n")

	assert.Panics(t, func() {
		config.MustLoad(path)
	})
}

func TestRedis_GetRedisAddr(t *testing.T) {
	assert.Equal(t, "localhost:6379", (&config.Redis{Host: "localhost", Port: "6379"}).GetRedisAddr())
	assert.Empty(t, (&config.Redis{Port: "6379"}).GetRedisAddr())
}
