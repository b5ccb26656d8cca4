package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/minaorangina/klondike/game"
	utils "github.com/minaorangina/klondike/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		utils.AssertNoError(t, err)

		utils.AssertEqual(t, cfg.LogLevel, "info")
		assert.Equal(t, game.Rules{FoundationMoves: true}, cfg.Rules())
		assert.False(t, cfg.CheckInvariants)
	})

	t.Run("from the environment", func(t *testing.T) {
		t.Setenv("KLONDIKE_LOG_LEVEL", "debug")
		t.Setenv("KLONDIKE_KING_ONLY_ON_EMPTY", "true")
		t.Setenv("KLONDIKE_FOUNDATION_MOVES", "false")

		cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		utils.AssertNoError(t, err)

		utils.AssertEqual(t, cfg.LogLevel, "debug")
		assert.Equal(t, game.Rules{KingOnlyOnEmpty: true}, cfg.Rules())
	})

	t.Run("from a .env file", func(t *testing.T) {
		// godotenv never overrides variables that are already set
		if _, set := os.LookupEnv("KLONDIKE_CHECK_INVARIANTS"); set {
			t.Skip("KLONDIKE_CHECK_INVARIANTS is set in the environment")
		}
		t.Cleanup(func() { os.Unsetenv("KLONDIKE_CHECK_INVARIANTS") })

		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("KLONDIKE_CHECK_INVARIANTS=true\n"), 0o600))

		cfg, err := Load(envFile)
		utils.AssertNoError(t, err)
		assert.True(t, cfg.CheckInvariants)
	})

	t.Run("rejects an unknown log level", func(t *testing.T) {
		t.Setenv("KLONDIKE_LOG_LEVEL", "chatty")

		_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		utils.AssertErrored(t, err)
	})
}

func TestLogger(t *testing.T) {
	for _, cfg := range []Config{{LogLevel: "warn"}, {LogLevel: "debug", LogJSON: true}} {
		logger, err := cfg.Logger()
		require.NoError(t, err)
		assert.NotNil(t, logger)
	}

	_, err := Config{LogLevel: "nope"}.Logger()
	assert.Error(t, err)
}
