package flux_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/aretw0/flux"
	"github.com/aretw0/flux/pkg/domain"
	"github.com/aretw0/flux/pkg/middleware"
	"github.com/aretw0/flux/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ThunkInstalled(t *testing.T) {
	s, err := flux.New(counterReducer())
	require.NoError(t, err)

	res, err := s.Dispatch(domain.Thunk[counter](func(dispatch domain.Dispatch, getState domain.GetState[counter], _ any) (any, error) {
		if _, err := dispatch(domain.Command{Type: "ADD", Payload: 3}); err != nil {
			return nil, err
		}
		return getState().Count, nil
	}))
	require.NoError(t, err)
	assert.Equal(t, 3, res)
}

func TestNewWithState(t *testing.T) {
	s, err := flux.NewWithState(counterReducer(), counter{Count: 10})
	require.NoError(t, err)

	_, err = s.Dispatch(domain.Command{Type: "INCREMENT"})
	require.NoError(t, err)
	assert.Equal(t, 11, s.GetState().Count)
}

func TestNew_Options(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	reg := prometheus.NewRegistry()
	m, err := middleware.NewMetrics(reg, "flux_test")
	require.NoError(t, err)

	var reduced []string
	rec := observability.NewRecorder(0)
	s, err := flux.New(counterReducer(),
		flux.WithLogger(logger),
		flux.WithActionLogging(),
		flux.WithMetrics(m),
		flux.WithLifecycleHooks(domain.LifecycleHooks{
			OnReduce: func(e *domain.ReduceEvent) { reduced = append(reduced, e.Type) },
		}),
		flux.WithLifecycleHooks(rec.Hooks()),
	)
	require.NoError(t, err)

	_, err = s.Dispatch(domain.Command{Type: "INCREMENT"})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "type=INCREMENT")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Dispatched.WithLabelValues("command", "INCREMENT")))
	assert.Equal(t, []string{"INCREMENT"}, reduced)
	assert.Equal(t, []string{"INCREMENT"}, rec.Types(), "hooks accumulate")
}

func TestStages(t *testing.T) {
	assert.Equal(t, []string{flux.StageThunk}, flux.Stages())
	assert.Equal(t,
		[]string{flux.StageLogging, flux.StageMetrics, flux.StageThunk},
		flux.Stages(flux.WithActionLogging(), flux.WithMetrics(&middleware.Metrics{})),
	)
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, flux.Version)
}
