package config

import (
	"fmt"
	"os"
	"time"

	"github.com/aretw0/flux/internal/app"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when none is given.
const DefaultPath = "flux.yaml"

// Config represents the structure of flux.yaml.
type Config struct {
	Env          string        `yaml:"env"`
	FetchDelay   time.Duration `yaml:"fetch_delay"`
	LogLevel     string        `yaml:"log_level"`
	InitialState *InitialState `yaml:"initial_state"`
}

// InitialState seeds the demo store.
type InitialState struct {
	UserInfo app.UserInfo `yaml:"user_info"`
	Count    int          `yaml:"count"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Env:        "development",
		FetchDelay: app.DefaultFetchDelay,
		LogLevel:   "info",
	}
}

// Load reads the YAML file at path on top of Default.
// A missing file is not an error and yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.FetchDelay < 0 {
		return cfg, fmt.Errorf("fetch_delay must not be negative, got %s", cfg.FetchDelay)
	}
	return cfg, nil
}

// AppEnv returns the thunk extra argument described by cfg.
func (c Config) AppEnv() app.Env {
	return app.Env{Name: c.Env, FetchDelay: c.FetchDelay}
}

// State returns the preloaded state, or nil to use the reducer default.
func (c Config) State() *app.State {
	if c.InitialState == nil {
		return nil
	}
	return &app.State{
		UserInfo: c.InitialState.UserInfo,
		Count:    c.InitialState.Count,
	}
}
