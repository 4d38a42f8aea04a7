package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("Applies defaults for missing keys", func(t *testing.T) {
		// Given: a config file that only sets the log level
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: debug\n"), 0o600))

		// When: loading the config
		conf := MustLoad(path)

		// Then: the defaults should be filled in
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 24*time.Hour, conf.GameTTL)
		assert.Equal(t, 7, conf.Rules.HolesPerSide)
		assert.Equal(t, 7, conf.Rules.InitialSeeds)
		assert.Equal(t, 3, conf.Rules.MaxExtraTurns)
		assert.Equal(t, "first-non-empty", conf.BotStrategy)
	})

	t.Run("Reads a variant rule set", func(t *testing.T) {
		// Given: a config file with a smaller board
		path := filepath.Join(t.TempDir(), "config.yml")
		body := "rules:\n  holes-per-side: 5\n  initial-seeds: 4\n  max-extra-turns: 1\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		// When: loading the config
		conf := MustLoad(path)

		// Then: the rules should reflect the file
		assert.Equal(t, 5, conf.Rules.HolesPerSide)
		assert.Equal(t, 4, conf.Rules.InitialSeeds)
		assert.Equal(t, 1, conf.Rules.MaxExtraTurns)
	})

	t.Run("Panics on invalid rules", func(t *testing.T) {
		// Given: a config file with a negative seed count
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("rules:\n  initial-seeds: -1\n"), 0o600))

		// Then: loading should panic
		assert.Panics(t, func() { MustLoad(path) })
	})

	t.Run("Panics on a board without seeds", func(t *testing.T) {
		// Given: rules that would start every game on an empty board
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("rules:\n  initial-seeds: 0\n"), 0o600))

		// Then: loading should panic
		assert.Panics(t, func() { MustLoad(path) })
	})

	t.Run("Panics on unknown bot strategy", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("bot-strategy: minimax\n"), 0o600))

		assert.Panics(t, func() { MustLoad(path) })
	})

	t.Run("Panics on missing file", func(t *testing.T) {
		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "absent.yml")) })
	})
}
