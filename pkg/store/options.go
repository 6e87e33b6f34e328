package store

import (
	"log/slog"

	"github.com/aretw0/flux/pkg/domain"
)

// Option configures a Store.
type Option[S any] func(*options[S])

type options[S any] struct {
	preloaded *S
	enhancers []Enhancer[S]
	logger    *slog.Logger
	hooks     domain.LifecycleHooks
}

// WithPreloadedState seeds the initial state instead of the reducer default.
func WithPreloadedState[S any](state S) Option[S] {
	return func(o *options[S]) {
		o.preloaded = &state
	}
}

// WithEnhancer wraps store creation. Enhancers listed first are outermost.
func WithEnhancer[S any](e Enhancer[S]) Option[S] {
	return func(o *options[S]) {
		if e != nil {
			o.enhancers = append(o.enhancers, e)
		}
	}
}

// WithMiddleware installs mws. It is shorthand for WithEnhancer(ApplyMiddleware(mws...)).
func WithMiddleware[S any](mws ...Middleware[S]) Option[S] {
	return WithEnhancer(ApplyMiddleware(mws...))
}

// WithLogger sets the structured logger for store internals.
func WithLogger[S any](logger *slog.Logger) Option[S] {
	return func(o *options[S]) {
		o.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks[S any](hooks domain.LifecycleHooks) Option[S] {
	return func(o *options[S]) {
		o.hooks = hooks
	}
}
