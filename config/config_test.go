package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestDefault(t *testing.T) {
	is := is.New(t)

	cfg := Default()
	is.Equal(cfg.DefaultDepth, 5)
	is.Equal(cfg.DefaultSeed, uint64(42))
	is.Equal(cfg.SelfplayThreads, 4)
}

func TestLoadEnvOverride(t *testing.T) {
	is := is.New(t)

	t.Setenv("IAGO_DEPTH", "9")
	t.Setenv("IAGO_LOG_LEVEL", "debug")
	cfg, err := Load()
	is.NoErr(err)
	is.Equal(cfg.DefaultDepth, 9)
	is.Equal(cfg.LogLevel, "debug")
}
