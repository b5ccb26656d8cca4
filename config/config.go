package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/minaorangina/klondike/game"
	"go.uber.org/zap"
)

// Config is read from the environment, and from a .env file if one exists
type Config struct {
	LogLevel        string `env:"KLONDIKE_LOG_LEVEL,default=info"`
	LogJSON         bool   `env:"KLONDIKE_LOG_JSON,default=false"`
	KingOnlyOnEmpty bool   `env:"KLONDIKE_KING_ONLY_ON_EMPTY,default=false"`
	FoundationMoves bool   `env:"KLONDIKE_FOUNDATION_MOVES,default=true"`
	CheckInvariants bool   `env:"KLONDIKE_CHECK_INVARIANTS,default=false"`
}

// Load reads the configuration. Missing .env files are ignored.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}

	if _, err := zap.ParseAtomicLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("invalid KLONDIKE_LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	return cfg, nil
}

// Rules returns the game rules selected by the configuration
func (c Config) Rules() game.Rules {
	return game.Rules{
		KingOnlyOnEmpty: c.KingOnlyOnEmpty,
		FoundationMoves: c.FoundationMoves,
	}
}

// Logger builds a logger writing to stderr, so it never mixes with the board
func (c Config) Logger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	zc := zap.NewDevelopmentConfig()
	if c.LogJSON {
		zc = zap.NewProductionConfig()
	}
	zc.Level = level
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}
