// Package config holds the runtime defaults for the engine and its
// front ends, loaded from an optional config file and IAGO_-prefixed
// environment variables.
package config

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	// DefaultDepth is the alpha-beta search depth used when a depth
	// is not given explicitly.
	DefaultDepth int
	// NodeBudget bounds nodes per search; 0 keeps the solver default.
	NodeBudget uint64
	// DefaultSeed seeds random controllers created without a seed.
	DefaultSeed uint64

	LogLevel string

	// Self-play batch settings.
	SelfplayGames   int
	SelfplayThreads int
	SelfplayLogFile string
}

// Load reads the configuration. A missing config file is not an
// error; defaults and the environment fill the gaps.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("iago")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetConfigName("iago")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/iago")

	v.SetDefault("depth", 5)
	v.SetDefault("node-budget", 0)
	v.SetDefault("seed", 42)
	v.SetDefault("log-level", "info")
	v.SetDefault("selfplay-games", 200)
	v.SetDefault("selfplay-threads", 4)
	v.SetDefault("selfplay-log-file", "/tmp/iago-games.csv")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	} else {
		log.Debug().Str("file", v.ConfigFileUsed()).Msg("read-config-file")
	}

	return &Config{
		DefaultDepth:    v.GetInt("depth"),
		NodeBudget:      v.GetUint64("node-budget"),
		DefaultSeed:     v.GetUint64("seed"),
		LogLevel:        v.GetString("log-level"),
		SelfplayGames:   v.GetInt("selfplay-games"),
		SelfplayThreads: v.GetInt("selfplay-threads"),
		SelfplayLogFile: v.GetString("selfplay-log-file"),
	}, nil
}

// Default returns the built-in configuration without touching the
// environment; mostly for tests.
func Default() *Config {
	return &Config{
		DefaultDepth:    5,
		DefaultSeed:     42,
		LogLevel:        "info",
		SelfplayGames:   200,
		SelfplayThreads: 4,
		SelfplayLogFile: "/tmp/iago-games.csv",
	}
}

// AdjustLogLevel applies the configured zerolog global level.
func (c *Config) AdjustLogLevel() {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		log.Warn().Str("level", c.LogLevel).Msg("unknown-log-level")
		return
	}
	zerolog.SetGlobalLevel(level)
}
