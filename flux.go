package flux

import (
	_ "embed"
	"log/slog"

	"github.com/aretw0/flux/internal/logging"
	"github.com/aretw0/flux/pkg/domain"
	"github.com/aretw0/flux/pkg/middleware"
	"github.com/aretw0/flux/pkg/observability"
	"github.com/aretw0/flux/pkg/reducer"
	"github.com/aretw0/flux/pkg/store"
)

// Version is the library version.
//
//go:embed VERSION
var Version string

type config struct {
	logger  *slog.Logger
	hooks   []domain.LifecycleHooks
	extra   any
	metrics *middleware.Metrics
	logAll  bool
}

// Option defines a functional option for New.
type Option func(*config)

// WithLogger sets the structured logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithActionLogging installs the logging middleware, using the configured logger.
func WithActionLogging() Option {
	return func(c *config) {
		c.logAll = true
	}
}

// WithLifecycleHooks registers observability hooks.
// It may be given several times; hooks run in registration order.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *config) {
		c.hooks = append(c.hooks, hooks)
	}
}

// WithExtraArgument binds the value passed to every thunk.
func WithExtraArgument(extra any) Option {
	return func(c *config) {
		c.extra = extra
	}
}

// WithMetrics installs the metrics middleware recording on m.
func WithMetrics(m *middleware.Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// New builds a store with the thunk middleware installed.
// The pipeline is: logging (optional) -> metrics (optional) -> thunk -> reducer.
func New[S any](r reducer.Reducer[S], opts ...Option) (*store.Store[S], error) {
	return build(r, nil, opts)
}

// NewWithState is like New but seeds the store with state instead of the reducer default.
func NewWithState[S any](r reducer.Reducer[S], state S, opts ...Option) (*store.Store[S], error) {
	return build(r, &state, opts)
}

func build[S any](r reducer.Reducer[S], preloaded *S, opts []Option) (*store.Store[S], error) {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.NewNop()
	}

	var mws []store.Middleware[S]
	if c.logAll {
		mws = append(mws, middleware.Logging[S](c.logger))
	}
	if c.metrics != nil {
		mws = append(mws, middleware.MetricsMiddleware[S](c.metrics))
	}
	mws = append(mws, middleware.WithExtraArgument[S](c.extra))

	storeOpts := []store.Option[S]{
		store.WithLogger[S](c.logger),
		store.WithLifecycleHooks[S](observability.Combine(c.hooks...)),
		store.WithMiddleware(mws...),
	}
	if preloaded != nil {
		storeOpts = append(storeOpts, store.WithPreloadedState(*preloaded))
	}

	return store.New(r, storeOpts...)
}

// Middleware stage names reported by Stages.
const (
	StageLogging = "logging"
	StageMetrics = "metrics"
	StageThunk   = "thunk"
)

// Stages lists the middlewares New installs for opts, outermost first.
func Stages(opts ...Option) []string {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}

	var stages []string
	if c.logAll {
		stages = append(stages, StageLogging)
	}
	if c.metrics != nil {
		stages = append(stages, StageMetrics)
	}
	return append(stages, StageThunk)
}
