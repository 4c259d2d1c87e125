package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/jonathan/outreach-tracker/internal/config"
)

// resolveConfig layers configuration sources: file (if given), then
// environment, then any non-zero flag values.
func resolveConfig(path string, flags *config.Config) (*config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	if path != "" {
		fileCfg, err := config.LoadFile(path)
		if err != nil {
			return nil, err
		}
		// Environment overrides the file, so merge env on top.
		base := fileCfg
		base.Merge(overrides(cfg))
		cfg = base
	}

	cfg.Merge(flags)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// overrides strips defaulted values so they do not clobber file settings.
func overrides(cfg *config.Config) *config.Config {
	out := &config.Config{
		SeedFile: cfg.SeedFile,
		Verbose:  cfg.Verbose,
	}
	if os.Getenv("OUTREACH_PORT") != "" {
		out.Port = cfg.Port
	}
	if os.Getenv("OUTREACH_LOG_LEVEL") != "" {
		out.LogLevel = cfg.LogLevel
	}
	return out
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}

	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
