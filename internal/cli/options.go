package cli

import (
	"time"

	"github.com/aretw0/flux/internal/config"
)

// DemoOptions contains all the configuration for the demo command.
type DemoOptions struct {
	ConfigPath string
	Env        string        // overrides config when set
	FetchDelay time.Duration // overrides config when > 0
	Debug      bool
	Plain      bool // disable markdown rendering and colors
	Metrics    bool // dump collected metrics on exit
}

// resolveConfig loads the config file and applies flag overrides.
func resolveConfig(opts DemoOptions) (config.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if opts.Env != "" {
		cfg.Env = opts.Env
	}
	if opts.FetchDelay > 0 {
		cfg.FetchDelay = opts.FetchDelay
	}
	return cfg, nil
}
