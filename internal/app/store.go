package app

import (
	"log/slog"

	"github.com/aretw0/flux"
	"github.com/aretw0/flux/pkg/domain"
	"github.com/aretw0/flux/pkg/middleware"
	"github.com/aretw0/flux/pkg/store"
)

// Options collects what NewStore needs besides the environment.
type Options struct {
	Initial *State
	Logger  *slog.Logger
	Hooks   domain.LifecycleHooks
	Metrics *middleware.Metrics
}

// NewStore builds the application store with the thunk middleware bound to env.
func NewStore(env Env, opts Options) (*store.Store[State], error) {
	fluxOpts := []flux.Option{
		flux.WithExtraArgument(env),
		flux.WithLifecycleHooks(opts.Hooks),
	}
	if opts.Logger != nil {
		fluxOpts = append(fluxOpts, flux.WithLogger(opts.Logger.With("env", env.Name)), flux.WithActionLogging())
	}
	if opts.Metrics != nil {
		fluxOpts = append(fluxOpts, flux.WithMetrics(opts.Metrics))
	}

	if opts.Initial != nil {
		return flux.NewWithState(Reducer(), *opts.Initial, fluxOpts...)
	}
	return flux.New(Reducer(), fluxOpts...)
}
