// Package config loads runtime settings from MAUMAU_* environment
// variables, with an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/luizforgas/mau-mau-forgas/engine"
)

// Config holds everything tunable from the environment.
type Config struct {
	LogLevel    string
	TurnTimeout time.Duration

	StartingScore       int
	IncludeWildcards    bool
	EnableBluffing      bool
	EnforceLastCard     bool
	AutoDeclareLastCard bool
}

// Load reads the environment, falling back to a .env file if one is
// present and to the engine defaults otherwise.
func Load() (Config, error) {
	_ = godotenv.Load()

	defaults := engine.DefaultSettings()
	cfg := Config{
		LogLevel:            envStr("MAUMAU_LOG_LEVEL", "info"),
		StartingScore:       defaults.StartingScore,
		IncludeWildcards:    defaults.IncludeWildcards,
		EnableBluffing:      defaults.EnableBluffing,
		EnforceLastCard:     defaults.EnforceLastCard,
		AutoDeclareLastCard: defaults.AutoDeclareLastCard,
	}

	var err error
	if cfg.TurnTimeout, err = envDuration("MAUMAU_TURN_TIMEOUT", 15*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.StartingScore, err = envInt("MAUMAU_STARTING_SCORE", cfg.StartingScore); err != nil {
		return Config{}, err
	}
	if cfg.IncludeWildcards, err = envBool("MAUMAU_WILDCARDS", cfg.IncludeWildcards); err != nil {
		return Config{}, err
	}
	if cfg.EnableBluffing, err = envBool("MAUMAU_BLUFFING", cfg.EnableBluffing); err != nil {
		return Config{}, err
	}
	if cfg.EnforceLastCard, err = envBool("MAUMAU_ENFORCE_LAST_CARD", cfg.EnforceLastCard); err != nil {
		return Config{}, err
	}
	if cfg.AutoDeclareLastCard, err = envBool("MAUMAU_AUTO_DECLARE", cfg.AutoDeclareLastCard); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Settings converts the loaded values into engine settings.
func (c Config) Settings() engine.Settings {
	return engine.Settings{
		StartingScore:       c.StartingScore,
		IncludeWildcards:    c.IncludeWildcards,
		EnableBluffing:      c.EnableBluffing,
		EnforceLastCard:     c.EnforceLastCard,
		AutoDeclareLastCard: c.AutoDeclareLastCard,
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return b, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}
