package cli

import (
	"io"

	"github.com/aretw0/flux"
	"github.com/aretw0/flux/internal/presentation/graph"
	"github.com/aretw0/flux/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// GraphOptions selects which optional middlewares the diagram shows.
type GraphOptions struct {
	Logging bool
	Metrics bool
}

// WriteGraph writes the Mermaid diagram of the demo dispatch pipeline.
func WriteGraph(w io.Writer, opts GraphOptions) error {
	var fluxOpts []flux.Option
	if opts.Logging {
		fluxOpts = append(fluxOpts, flux.WithActionLogging())
	}
	if opts.Metrics {
		m, err := middleware.NewMetrics(prometheus.NewRegistry(), MetricsNamespace)
		if err != nil {
			return err
		}
		fluxOpts = append(fluxOpts, flux.WithMetrics(m))
	}

	stages := []graph.Stage{{Name: "dispatch", Kind: graph.StageEntry}}
	for _, name := range flux.Stages(fluxOpts...) {
		kind := graph.StageMiddleware
		if name == flux.StageThunk {
			kind = graph.StageThunk
		}
		stages = append(stages, graph.Stage{Name: name, Kind: kind})
	}
	stages = append(stages, graph.Stage{Name: "reducer", Kind: graph.StageReducer})

	_, err := io.WriteString(w, graph.GenerateMermaid(stages))
	return err
}
