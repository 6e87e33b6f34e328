package middleware

import (
	"fmt"
	"time"

	"github.com/aretw0/flux/pkg/domain"
	"github.com/aretw0/flux/pkg/store"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the dispatch collectors shared by metrics middlewares.
type Metrics struct {
	Dispatched *prometheus.CounterVec
	Errors     *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
}

// NewMetrics creates and registers the dispatch collectors on reg.
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	m := &Metrics{
		Dispatched: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "actions_dispatched_total",
				Help:      "Total number of dispatched actions",
			},
			[]string{"kind", "type"},
		),
		Errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dispatch_errors_total",
				Help:      "Total number of dispatches that returned an error",
			},
			[]string{"kind"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "dispatch_duration_seconds",
				Help:      "Duration of dispatch calls through the rest of the chain",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"kind"},
		),
	}

	collectors := []prometheus.Collector{m.Dispatched, m.Errors, m.Duration}
	for i, c := range collectors {
		if err := reg.Register(c); err != nil {
			// Leave reg as it was.
			for _, registered := range collectors[:i] {
				reg.Unregister(registered)
			}
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}
	return m, nil
}

// MetricsMiddleware records every action passing through it on m.
func MetricsMiddleware[S any](m *Metrics) store.MiddlewareFunc[S] {
	return func(api store.API[S], action domain.Action, next store.Next) (any, error) {
		kind := action.Kind().String()
		m.Dispatched.WithLabelValues(kind, domain.TypeOf(action)).Inc()

		start := time.Now()
		res, err := next(action)
		m.Duration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
		if err != nil {
			m.Errors.WithLabelValues(kind).Inc()
		}
		return res, err
	}
}
