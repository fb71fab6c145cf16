package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a config file with every field set
		path := writeConfig(t, `
log-level: debug
board-size: 4
no-color: true
players:
  first: Julia
  second: Juno
`)

		// When: the config is loaded
		conf, err := Load(path)

		// Then: the file values are used
		require.NoError(t, err)
		assert.Equal(t, &Config{
			LogLevel:  "debug",
			BoardSize: 4,
			NoColor:   true,
			Players:   Players{First: "Julia", Second: "Juno"},
		}, conf)
	})

	t.Run("Missing fields fall back to defaults", func(t *testing.T) {
		path := writeConfig(t, "players:\n  first: Julia\n")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, 3, conf.BoardSize)
		assert.False(t, conf.NoColor)
		assert.Equal(t, "Julia", conf.Players.First)
		assert.Empty(t, conf.Players.Second)
	})

	t.Run("Missing file reads the environment", func(t *testing.T) {
		// Given: no config file and a board size in the environment
		t.Setenv("BOARD_SIZE", "5")
		t.Setenv("PLAYER_TWO", "Juno")

		// When: the config is loaded
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the environment values are used
		require.NoError(t, err)
		assert.Equal(t, 5, conf.BoardSize)
		assert.Equal(t, "Juno", conf.Players.Second)
	})

	t.Run("Invalid board size", func(t *testing.T) {
		path := writeConfig(t, "board-size: -1\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidBoardSize)
	})

	t.Run("Invalid log level", func(t *testing.T) {
		path := writeConfig(t, "log-level: verbose\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidLogLevel)
	})
}

func TestMustLoad(t *testing.T) {
	path := writeConfig(t, "board-size: -1\n")

	assert.Panics(t, func() {
		MustLoad(path)
	})
}
